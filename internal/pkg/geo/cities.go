package geo

import (
	"strings"

	"github.com/fleetops/shipsight/internal/pkg/models"
)

// cityCoordinates is the static destination lookup used to place shipment
// destinations on the map. Keys are lowercase city names.
var cityCoordinates = map[string]models.Coordinate{
	"atlanta":       {Latitude: 33.7490, Longitude: -84.3880},
	"austin":        {Latitude: 30.2672, Longitude: -97.7431},
	"boston":        {Latitude: 42.3601, Longitude: -71.0589},
	"chicago":       {Latitude: 41.8781, Longitude: -87.6298},
	"columbus":      {Latitude: 39.9612, Longitude: -82.9988},
	"dallas":        {Latitude: 32.7767, Longitude: -96.7970},
	"denver":        {Latitude: 39.7392, Longitude: -104.9903},
	"detroit":       {Latitude: 42.3314, Longitude: -83.0458},
	"houston":       {Latitude: 29.7604, Longitude: -95.3698},
	"indianapolis":  {Latitude: 39.7684, Longitude: -86.1581},
	"los angeles":   {Latitude: 34.0522, Longitude: -118.2437},
	"miami":         {Latitude: 25.7617, Longitude: -80.1918},
	"minneapolis":   {Latitude: 44.9778, Longitude: -93.2650},
	"nashville":     {Latitude: 36.1627, Longitude: -86.7816},
	"new york":      {Latitude: 40.7128, Longitude: -74.0060},
	"philadelphia":  {Latitude: 39.9526, Longitude: -75.1652},
	"phoenix":       {Latitude: 33.4484, Longitude: -112.0740},
	"portland":      {Latitude: 45.5152, Longitude: -122.6784},
	"san antonio":   {Latitude: 29.4241, Longitude: -98.4936},
	"san diego":     {Latitude: 32.7157, Longitude: -117.1611},
	"san francisco": {Latitude: 37.7749, Longitude: -122.4194},
	"seattle":       {Latitude: 47.6062, Longitude: -122.3321},
}

// CityCoordinate returns the coordinates for a city name. The lookup is
// case-insensitive and ignores surrounding whitespace.
func CityCoordinate(city string) (models.Coordinate, bool) {
	coord, ok := cityCoordinates[strings.ToLower(strings.TrimSpace(city))]
	return coord, ok
}
