package parsers

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/btraven00/geobridge/pkg/geo"
)

var (
	// atPattern is the "@lat,lng" path token used by Google Maps and Earth.
	atPattern = regexp.MustCompile(`@(-?\d+\.\d+),(-?\d+\.\d+)`)

	// searchPattern is "/search/lat,lng" with a comma, encoded comma, space or plus separator.
	searchPattern = regexp.MustCompile(`/search/(-?\d+\.\d+)(?:,|%2[cC]|\s|\+)+(-?\d+\.\d+)`)

	latDataPattern = regexp.MustCompile(`!3d(-?\d+\.\d+)`)
	lngDataPattern = regexp.MustCompile(`!4d(-?\d+\.\d+)`)
)

// queryOf returns the query parameters of raw. Parsing is lenient: a bad
// escape in one parameter does not hide the others, and a missing scheme
// or host is irrelevant.
func queryOf(raw string) url.Values {
	raw, _, _ = strings.Cut(raw, "#")

	_, rawQuery, found := strings.Cut(raw, "?")
	if !found {
		return url.Values{}
	}

	values, _ := url.ParseQuery(rawQuery)

	return values
}

// fragmentOf returns everything after the first '#', if any.
func fragmentOf(raw string) string {
	_, frag, _ := strings.Cut(raw, "#")
	return frag
}

// matchPair applies a two-group pattern to s.
func matchPair(re *regexp.Regexp, s string) (geo.Coordinate, bool) {
	m := re.FindStringSubmatch(s)
	if m == nil {
		return geo.Coordinate{}, false
	}

	return geo.ParsePair(m[1], m[2])
}

// matchDataTokens reads the paired "!3d<lat>" and "!4d<lng>" tokens.
func matchDataTokens(s string) (geo.Coordinate, bool) {
	lat := latDataPattern.FindStringSubmatch(s)
	lng := lngDataPattern.FindStringSubmatch(s)

	if lat == nil || lng == nil {
		return geo.Coordinate{}, false
	}

	return geo.ParsePair(lat[1], lng[1])
}

// MatchGeneric is the provider-independent "@lat,lng" search.
func MatchGeneric(s string) (geo.Coordinate, bool) {
	return matchPair(atPattern, s)
}
