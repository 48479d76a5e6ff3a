package parsers

import (
	"github.com/btraven00/geobridge/pkg/geo"
)

// parseGoogleMaps handles www.google.com/maps, maps.google.* and goo.gl links.
func parseGoogleMaps(raw string) (geo.Coordinate, bool) {
	if c, ok := matchPair(searchPattern, raw); ok {
		return c, true
	}

	query := queryOf(raw)

	if c, ok := geo.SplitPair(query.Get("center"), ","); ok {
		return c, true
	}

	// q and query are only trusted here when they are plain decimal pairs;
	// anything looser is left for the permissive pass below.
	if c, ok := geo.MatchRaw(query.Get("q")); ok {
		return c, true
	}

	if c, ok := geo.MatchRaw(query.Get("query")); ok {
		return c, true
	}

	if c, ok := matchPair(atPattern, raw); ok {
		return c, true
	}

	if c, ok := matchDataTokens(raw); ok {
		return c, true
	}

	if q := query.Get("q"); q != "" {
		if c, err := geo.ParseLoose(q); err == nil {
			return c, true
		}
	}

	return geo.Coordinate{}, false
}

// parseGoogleEarth handles earth.google.com/web links.
func parseGoogleEarth(raw string) (geo.Coordinate, bool) {
	if c, ok := matchPair(atPattern, raw); ok {
		return c, true
	}

	return matchPair(searchPattern, raw)
}
