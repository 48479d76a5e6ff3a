// Package parsers recognizes map-provider URLs and decodes the coordinate
// they point at.
//
// The provider set is closed: each Source value is one provider, and the
// registry order below is the order in which recognition is attempted. Only
// the first Source that recognizes a URL gets to decode it.
package parsers

import (
	"slices"
	"strings"

	"github.com/btraven00/geobridge/pkg/geo"
)

// Source identifies a map provider's link syntax.
type Source int

const (
	GoogleMaps Source = iota + 1
	AppleMaps
	BingMaps
	Waze
	GoogleEarth
	OpenStreetMap
	GeoURI
	YandexMaps
	HereWeGo
)

// registry is the fixed recognition order.
var registry = []Source{
	GoogleMaps,
	AppleMaps,
	BingMaps,
	Waze,
	GoogleEarth,
	OpenStreetMap,
	GeoURI,
	YandexMaps,
	HereWeGo,
}

var (
	googleMapsMarkers  = []string{"google.com/maps", "maps.google.", "goo.gl", "maps.app.goo.gl"}
	appleMapsMarkers   = []string{"maps.apple.com", "maps.apple"}
	bingMapsMarkers    = []string{"bing.com/maps"}
	wazeMarkers        = []string{"waze.com"}
	googleEarthMarkers = []string{"earth.google.com"}
	osmMarkers         = []string{"openstreetmap.org"}
	yandexMarkers      = []string{"yandex."}
	hereMarkers        = []string{"wego.here.com", "share.here.com"}
)

const geoScheme = "geo:"

// Registry returns the sources in recognition order.
func Registry() []Source {
	return slices.Clone(registry)
}

// Find returns the first source in registry order that recognizes raw.
func Find(raw string) (Source, bool) {
	for _, s := range registry {
		if s.CanParse(raw) {
			return s, true
		}
	}

	return 0, false
}

// ByName looks a source up by its display name, ignoring case.
func ByName(name string) (Source, bool) {
	for _, s := range registry {
		if strings.EqualFold(s.Name(), name) {
			return s, true
		}
	}

	return 0, false
}

// Name returns the provider's display name.
func (s Source) Name() string {
	switch s {
	case GoogleMaps:
		return "Google Maps"
	case AppleMaps:
		return "Apple Maps"
	case BingMaps:
		return "Bing Maps"
	case Waze:
		return "Waze"
	case GoogleEarth:
		return "Google Earth"
	case OpenStreetMap:
		return "OpenStreetMap"
	case GeoURI:
		return "Geo URI"
	case YandexMaps:
		return "Yandex Maps"
	case HereWeGo:
		return "Here WeGo"
	default:
		return ""
	}
}

func (s Source) String() string {
	return s.Name()
}

// MarshalText encodes the source as its display name.
func (s Source) MarshalText() ([]byte, error) {
	return []byte(s.Name()), nil
}

// CanParse is a cheap, case-insensitive check of whether raw looks like this
// provider's link. It does not decode anything.
func (s Source) CanParse(raw string) bool {
	lower := strings.ToLower(raw)

	switch s {
	case GoogleMaps:
		return containsAny(lower, googleMapsMarkers)
	case AppleMaps:
		return containsAny(lower, appleMapsMarkers)
	case BingMaps:
		return containsAny(lower, bingMapsMarkers)
	case Waze:
		return containsAny(lower, wazeMarkers)
	case GoogleEarth:
		return containsAny(lower, googleEarthMarkers)
	case OpenStreetMap:
		return containsAny(lower, osmMarkers)
	case GeoURI:
		return strings.HasPrefix(lower, geoScheme)
	case YandexMaps:
		return containsAny(lower, yandexMarkers) && strings.Contains(lower, "/maps")
	case HereWeGo:
		return containsAny(lower, hereMarkers)
	default:
		return false
	}
}

// Parse decodes the coordinate from raw using this provider's strategies.
// Malformed tokens and internal failures report false, never an error.
func (s Source) Parse(raw string) (c geo.Coordinate, ok bool) {
	defer func() {
		if recover() != nil {
			c, ok = geo.Coordinate{}, false
		}
	}()

	switch s {
	case GoogleMaps:
		return parseGoogleMaps(raw)
	case AppleMaps:
		return parseAppleMaps(raw)
	case BingMaps:
		return parseBingMaps(raw)
	case Waze:
		return parseWaze(raw)
	case GoogleEarth:
		return parseGoogleEarth(raw)
	case OpenStreetMap:
		return parseOpenStreetMap(raw)
	case GeoURI:
		return parseGeoURI(raw)
	case YandexMaps:
		return parseYandexMaps(raw)
	case HereWeGo:
		return parseHereWeGo(raw)
	default:
		return geo.Coordinate{}, false
	}
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}

	return false
}
