// Package geo holds the coordinate value type and the low-level number and
// pair parsing shared by every provider parser.
package geo

import (
	"math"
	"strconv"
)

// Coordinate is a WGS84 position in decimal degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// New returns a Coordinate for the given latitude and longitude.
func New(lat, lng float64) Coordinate {
	return Coordinate{Lat: lat, Lng: lng}
}

// String formats the coordinate as "lat, lng", the same shape MatchRaw accepts.
func (c Coordinate) String() string {
	return FormatNumber(c.Lat) + ", " + FormatNumber(c.Lng)
}

// IsFinite reports whether neither component is NaN or infinite.
func (c Coordinate) IsFinite() bool {
	return isFinite(c.Lat) && isFinite(c.Lng)
}

// InRange reports whether the coordinate lies within the WGS84 bounds.
// Extraction never rejects out-of-range values; callers may use this to warn.
func (c Coordinate) InRange() bool {
	return c.IsFinite() && math.Abs(c.Lat) <= 90 && math.Abs(c.Lng) <= 180
}

// FormatNumber renders f with the fewest digits that parse back to f.
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
