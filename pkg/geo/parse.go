package geo

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	// rawPattern requires a literal decimal point on both numbers.
	rawPattern = regexp.MustCompile(`^(-?\d+\.\d+),\s*(-?\d+\.\d+)$`)

	leadingNumber = regexp.MustCompile(`^[+-]?(?:\d+\.?\d*|\.\d+)(?:[eE][+-]?\d+)?`)
)

// MatchRaw matches a bare "lat, lng" pair such as "22.7009146, 88.3412271".
// The input is expected to be trimmed already.
func MatchRaw(text string) (Coordinate, bool) {
	m := rawPattern.FindStringSubmatch(text)
	if m == nil {
		return Coordinate{}, false
	}

	return ParsePair(m[1], m[2])
}

// IsRaw reports whether text is a bare decimal coordinate pair.
func IsRaw(text string) bool {
	return rawPattern.MatchString(text)
}

// ParseNumber reads the leading decimal number of s, ignoring any trailing
// text ("12.5abc" reads 12.5). Leading whitespace is skipped. Strings without
// a leading number and non-finite results report false.
func ParseNumber(s string) (float64, bool) {
	m := leadingNumber.FindString(strings.TrimLeft(s, " \t\r\n"))
	if m == "" {
		return 0, false
	}

	f, err := strconv.ParseFloat(m, 64)
	if err != nil || !isFinite(f) {
		return 0, false
	}

	return f, true
}

// ParsePair reads latitude and longitude tokens with ParseNumber.
func ParsePair(lat, lng string) (Coordinate, bool) {
	la, ok := ParseNumber(lat)
	if !ok {
		return Coordinate{}, false
	}

	lo, ok := ParseNumber(lng)
	if !ok {
		return Coordinate{}, false
	}

	return Coordinate{Lat: la, Lng: lo}, true
}

// SplitPair splits value on sep and reads the first two fields as a pair.
// A value with fewer than two fields does not match.
func SplitPair(value, sep string) (Coordinate, bool) {
	if value == "" {
		return Coordinate{}, false
	}

	parts := strings.Split(value, sep)
	if len(parts) < 2 {
		return Coordinate{}, false
	}

	return ParsePair(parts[0], parts[1])
}
