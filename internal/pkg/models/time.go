package models

import (
	"fmt"
	"strings"
	"time"
)

// timestampLayouts are the accepted formats for the CSV timestamp columns.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Timestamp is a nullable timestamp parsed from a CSV cell.
// An empty cell unmarshals to the zero value.
type Timestamp struct {
	time.Time
}

// UnmarshalCSV implements gocsv.TypeUnmarshaller
func (t *Timestamp) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		t.Time = time.Time{}
		return nil
	}

	for _, layout := range timestampLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}

// MarshalCSV implements gocsv.TypeMarshaller
func (t Timestamp) MarshalCSV() (string, error) {
	if t.Time.IsZero() {
		return "", nil
	}
	return t.Time.Format(time.RFC3339), nil
}

// MarshalJSON renders null for the zero value so API clients see missing
// timestamps as null rather than year-one dates
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.Time.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Time.Format(time.RFC3339) + `"`), nil
}

// Valid reports whether the timestamp holds a real value
func (t Timestamp) Valid() bool {
	return !t.Time.IsZero()
}

// DateString returns the calendar date portion (YYYY-MM-DD), or "" for the
// zero value
func (t Timestamp) DateString() string {
	if t.Time.IsZero() {
		return ""
	}
	return t.Time.Format("2006-01-02")
}
