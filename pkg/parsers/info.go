package parsers

// Info describes a source for listings and debugging output.
type Info struct {
	Name       string   `json:"name"`
	Markers    []string `json:"markers"`
	Strategies []string `json:"strategies"`
	Examples   []string `json:"examples"`
	Order      int      `json:"order"`
}

// Describe returns the recognition markers, decoding strategies and example
// links of every source, in registry order.
func Describe() []Info {
	infos := make([]Info, 0, len(registry))

	for i, s := range registry {
		info := s.Info()
		info.Order = i + 1
		infos = append(infos, info)
	}

	return infos
}

// Info describes this source. Order is only set by Describe.
func (s Source) Info() Info {
	info := Info{Name: s.Name()}

	switch s {
	case GoogleMaps:
		info.Markers = googleMapsMarkers
		info.Strategies = []string{"/search/lat,lng", "center=lat,lng", "q=lat,lng", "query=lat,lng", "@lat,lng", "!3d<lat>!4d<lng>", "q (loose)"}
		info.Examples = []string{
			"https://www.google.com/maps/place/Bengaluru/@12.971599,77.594566,15z",
			"https://www.google.com/maps/place/data=!3m1!4b1!4m5!3m4!1s0x0:0x0!8m2!3d12.971599!4d77.594566",
		}
	case AppleMaps:
		info.Markers = appleMapsMarkers
		info.Strategies = []string{"ll=lat,lng", "q (loose)"}
		info.Examples = []string{"https://maps.apple.com/?ll=37.334606,-122.009102&q=Apple%20Park"}
	case BingMaps:
		info.Markers = bingMapsMarkers
		info.Strategies = []string{"cp=lat~lng", "sp=point.lat_lng_label"}
		info.Examples = []string{"https://www.bing.com/maps?cp=47.6062~-122.3321&lvl=16"}
	case Waze:
		info.Markers = wazeMarkers
		info.Strategies = []string{"ll=lat,lng"}
		info.Examples = []string{"https://waze.com/ul?ll=40.758896,-73.985130&navigate=yes"}
	case GoogleEarth:
		info.Markers = googleEarthMarkers
		info.Strategies = []string{"@lat,lng", "/search/lat,lng"}
		info.Examples = []string{"https://earth.google.com/web/@27.988056,86.925278,8848a,35y,0h,0t,0r"}
	case OpenStreetMap:
		info.Markers = osmMarkers
		info.Strategies = []string{"mlat=lat&mlon=lng", "#map=zoom/lat/lng"}
		info.Examples = []string{"https://www.openstreetmap.org/#map=16/51.5074/-0.1278"}
	case GeoURI:
		info.Markers = []string{geoScheme}
		info.Strategies = []string{"geo:lat,lng"}
		info.Examples = []string{"geo:37.786971,-122.399677?z=17"}
	case YandexMaps:
		info.Markers = []string{"yandex.*/maps"}
		info.Strategies = []string{"pt=lng,lat", "ll=lng,lat"}
		info.Examples = []string{"https://yandex.com/maps/?pt=37.617635,55.755814&z=16&l=map"}
	case HereWeGo:
		info.Markers = hereMarkers
		info.Strategies = []string{"/search/lat,lng", "map=lat,lng,zoom,style"}
		info.Examples = []string{"https://wego.here.com/search/52.5308,13.3847"}
	}

	return info
}
