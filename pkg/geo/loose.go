package geo

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrNotCoordinate is returned by ParseLoose for text it cannot read as a position.
var ErrNotCoordinate = errors.New("not a recognizable coordinate")

var (
	looseAllowed = regexp.MustCompile(`^[0-9NSEW\s.,;:°º'′’"″”+\-]+$`)
	looseToken   = regexp.MustCompile(`[NSEW]|[+-]?\d+(?:\.\d+)?|[+-]?\.\d+`)
)

// ParseLoose is a best-effort decoder for loosely written positions:
//
//	"22.5, 88.5"
//	"22.5 88.5"
//	"40°42'46\"N 74°0'21\"W"
//	"N 40 42 46, W 74 0 21"
//	"40:42:46N;74:00:21W"
//
// Each half is degrees with optional minutes and seconds. Hemisphere letters
// may lead or trail a half, and an E/W half written first is swapped into
// place. Results outside the WGS84 range are rejected. Any failure, including
// an internal panic, yields ErrNotCoordinate.
func ParseLoose(s string) (c Coordinate, err error) {
	defer func() {
		if recover() != nil {
			c, err = Coordinate{}, ErrNotCoordinate
		}
	}()

	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" || !looseAllowed.MatchString(s) {
		return Coordinate{}, ErrNotCoordinate
	}

	first, second, err := splitLoose(s)
	if err != nil {
		return Coordinate{}, err
	}

	lat, latHemi, err := parseComponent(first)
	if err != nil {
		return Coordinate{}, err
	}

	lng, lngHemi, err := parseComponent(second)
	if err != nil {
		return Coordinate{}, err
	}

	if isEastWest(latHemi) || isNorthSouth(lngHemi) {
		if isNorthSouth(latHemi) || isEastWest(lngHemi) {
			return Coordinate{}, fmt.Errorf("%w: conflicting hemispheres", ErrNotCoordinate)
		}

		lat, lng = lng, lat
	}

	if math.Abs(lat) > 90 || math.Abs(lng) > 180 {
		return Coordinate{}, fmt.Errorf("%w: out of range", ErrNotCoordinate)
	}

	return Coordinate{Lat: lat, Lng: lng}, nil
}

// splitLoose divides s into its latitude and longitude halves.
func splitLoose(s string) (string, string, error) {
	if i := strings.IndexAny(s, ",;"); i >= 0 {
		if strings.ContainsAny(s[i+1:], ",;") {
			return "", "", fmt.Errorf("%w: too many separators", ErrNotCoordinate)
		}

		return s[:i], s[i+1:], nil
	}

	spans := looseToken.FindAllStringIndex(s, -1)

	var letters []int

	for i, sp := range spans {
		if isHemisphere(s[sp[0]]) {
			letters = append(letters, i)
		}
	}

	switch len(letters) {
	case 0:
		if len(spans) == 0 || len(spans)%2 != 0 {
			return "", "", fmt.Errorf("%w: cannot split %d numbers", ErrNotCoordinate, len(spans))
		}

		mid := spans[len(spans)/2][0]

		return s[:mid], s[mid:], nil
	case 2:
		// Leading letters: "N 40 42, W 74 0". Trailing letters: "40 42 N 74 0 W".
		if letters[0] == 0 {
			mid := spans[letters[1]][0]
			return s[:mid], s[mid:], nil
		}

		mid := spans[letters[0]][1]

		return s[:mid], s[mid:], nil
	default:
		return "", "", fmt.Errorf("%w: expected two hemisphere letters, got %d", ErrNotCoordinate, len(letters))
	}
}

// parseComponent reads degrees[, minutes[, seconds]] with an optional hemisphere.
func parseComponent(part string) (float64, byte, error) {
	var (
		hemi byte
		nums []string
	)

	for _, tok := range looseToken.FindAllString(part, -1) {
		if isHemisphere(tok[0]) {
			if hemi != 0 {
				return 0, 0, fmt.Errorf("%w: repeated hemisphere", ErrNotCoordinate)
			}

			hemi = tok[0]

			continue
		}

		nums = append(nums, tok)
	}

	if len(nums) == 0 || len(nums) > 3 {
		return 0, 0, fmt.Errorf("%w: %q", ErrNotCoordinate, part)
	}

	deg, err := strconv.ParseFloat(nums[0], 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrNotCoordinate, err)
	}

	negative := strings.HasPrefix(nums[0], "-")
	value := math.Abs(deg)

	for i, n := range nums[1:] {
		// Only the last written unit may carry a fraction.
		if strings.ContainsAny(n, "+-") || strings.Contains(nums[i], ".") {
			return 0, 0, fmt.Errorf("%w: %q", ErrNotCoordinate, part)
		}

		f, err := strconv.ParseFloat(n, 64)
		if err != nil || f >= 60 {
			return 0, 0, fmt.Errorf("%w: %q", ErrNotCoordinate, part)
		}

		value += f / math.Pow(60, float64(i+1))
	}

	if negative || hemi == 'S' || hemi == 'W' {
		value = -value
	}

	return value, hemi, nil
}

func isHemisphere(b byte) bool {
	return isNorthSouth(b) || isEastWest(b)
}

func isNorthSouth(b byte) bool {
	return b == 'N' || b == 'S'
}

func isEastWest(b byte) bool {
	return b == 'E' || b == 'W'
}
