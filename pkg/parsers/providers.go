package parsers

import (
	"strings"

	"github.com/btraven00/geobridge/pkg/geo"
)

// parseAppleMaps handles maps.apple.com links: ll=lat,lng, then a loosely
// written position in q.
func parseAppleMaps(raw string) (geo.Coordinate, bool) {
	query := queryOf(raw)

	if c, ok := geo.SplitPair(query.Get("ll"), ","); ok {
		return c, true
	}

	if q := query.Get("q"); q != "" {
		if c, err := geo.ParseLoose(q); err == nil {
			return c, true
		}
	}

	return geo.Coordinate{}, false
}

// parseBingMaps handles cp=lat~lng and sp=point.lat_lng_label.
func parseBingMaps(raw string) (geo.Coordinate, bool) {
	query := queryOf(raw)

	if c, ok := geo.SplitPair(query.Get("cp"), "~"); ok {
		return c, true
	}

	if sp := query.Get("sp"); sp != "" {
		parts := strings.Split(sp, "_")
		if len(parts) >= 2 {
			return geo.ParsePair(strings.Replace(parts[0], "point.", "", 1), parts[1])
		}
	}

	return geo.Coordinate{}, false
}

func parseWaze(raw string) (geo.Coordinate, bool) {
	return geo.SplitPair(queryOf(raw).Get("ll"), ",")
}

// parseOpenStreetMap handles mlat/mlon markers and the #map=zoom/lat/lng view.
func parseOpenStreetMap(raw string) (geo.Coordinate, bool) {
	query := queryOf(raw)

	if mlat, mlon := query.Get("mlat"), query.Get("mlon"); mlat != "" && mlon != "" {
		if c, ok := geo.ParsePair(mlat, mlon); ok {
			return c, true
		}
	}

	if view, ok := strings.CutPrefix(fragmentOf(raw), "map="); ok {
		parts := strings.Split(view, "/")
		if len(parts) >= 3 {
			return geo.ParsePair(parts[1], parts[2])
		}
	}

	return geo.Coordinate{}, false
}

// parseGeoURI handles RFC 5870 geo:lat,lng[,alt][;params][?query].
func parseGeoURI(raw string) (geo.Coordinate, bool) {
	if len(raw) < len(geoScheme) {
		return geo.Coordinate{}, false
	}

	body, _, _ := strings.Cut(raw[len(geoScheme):], "?")
	body, _, _ = strings.Cut(body, ";")

	return geo.SplitPair(body, ",")
}

// parseYandexMaps handles pt=lng,lat and ll=lng,lat. Yandex writes
// longitude first.
func parseYandexMaps(raw string) (geo.Coordinate, bool) {
	query := queryOf(raw)

	// pt may hold several "~"-separated points; the first one wins.
	pt, _, _ := strings.Cut(query.Get("pt"), "~")

	for _, value := range []string{pt, query.Get("ll")} {
		if c, ok := geo.SplitPair(value, ","); ok {
			return geo.Coordinate{Lat: c.Lng, Lng: c.Lat}, true
		}
	}

	return geo.Coordinate{}, false
}

// parseHereWeGo handles /search/lat,lng and map=lat,lng,zoom,style.
func parseHereWeGo(raw string) (geo.Coordinate, bool) {
	if c, ok := matchPair(searchPattern, raw); ok {
		return c, true
	}

	return geo.SplitPair(queryOf(raw).Get("map"), ",")
}
