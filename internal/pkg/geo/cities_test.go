package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCityCoordinate(t *testing.T) {
	tests := []struct {
		name    string
		city    string
		wantLat float64
		wantOK  bool
	}{
		{name: "exact match", city: "chicago", wantLat: 41.8781, wantOK: true},
		{name: "capitalized", city: "Chicago", wantLat: 41.8781, wantOK: true},
		{name: "surrounding whitespace", city: "  New York ", wantLat: 40.7128, wantOK: true},
		{name: "unknown city", city: "Springfield", wantOK: false},
		{name: "empty", city: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			coord, ok := CityCoordinate(tt.city)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.InDelta(t, tt.wantLat, coord.Latitude, 0.0001)
			}
		})
	}
}
