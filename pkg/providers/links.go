// Package providers builds outbound links that open a coordinate in each
// supported map application.
package providers

import (
	"slices"
	"strings"

	"github.com/btraven00/geobridge/pkg/geo"
)

// Link is one outbound map link for a coordinate.
type Link struct {
	Name  string `json:"name"`
	URL   string `json:"url"`
	Color string `json:"color"`
}

// Provider is a row of the link table. Template receives latitude and
// longitude already formatted.
type Provider struct {
	Name     string
	Color    string
	Template func(lat, lng string) string
}

var table = []Provider{
	{
		Name:  "Apple Maps",
		Color: "#000000",
		Template: func(lat, lng string) string {
			return "http://maps.apple.com/?ll=" + lat + "," + lng + "&q=" + lat + "," + lng + "&z=16"
		},
	},
	{
		Name:  "Google Earth",
		Color: "#1a73e8",
		Template: func(lat, lng string) string {
			return "https://earth.google.com/web/search/" + lat + "," + lng
		},
	},
	{
		Name:  "Google Maps",
		Color: "#34a853",
		Template: func(lat, lng string) string {
			return "https://www.google.com/maps/search/?api=1&query=" + lat + "," + lng
		},
	},
	{
		Name:  "Waze",
		Color: "#33ccff",
		Template: func(lat, lng string) string {
			return "https://waze.com/ul?ll=" + lat + "," + lng + "&navigate=yes"
		},
	},
	{
		Name:  "OpenStreetMap",
		Color: "#7ad07a",
		Template: func(lat, lng string) string {
			return "https://www.openstreetmap.org/?mlat=" + lat + "&mlon=" + lng + "#map=16/" + lat + "/" + lng
		},
	},
	{
		Name:  "Bing Maps",
		Color: "#008374",
		Template: func(lat, lng string) string {
			return "https://www.bing.com/maps?cp=" + lat + "~" + lng + "&lvl=16&sp=point." + lat + "_" + lng + "_Pin"
		},
	},
	{
		// Yandex takes longitude first.
		Name:  "Yandex Maps",
		Color: "#fc3f1d",
		Template: func(lat, lng string) string {
			return "https://yandex.com/maps/?pt=" + lng + "," + lat + "&z=16&l=map"
		},
	},
	{
		Name:  "Here WeGo",
		Color: "#00afaa",
		Template: func(lat, lng string) string {
			return "https://wego.here.com/search/" + lat + "," + lng
		},
	},
}

// Links returns one link per provider, in table order. A nil coordinate
// yields no links.
func Links(c *geo.Coordinate) []Link {
	if c == nil {
		return nil
	}

	links := make([]Link, 0, len(table))
	for _, p := range table {
		links = append(links, p.Link(*c))
	}

	return links
}

// Link renders this provider's link for c.
func (p Provider) Link(c geo.Coordinate) Link {
	return Link{
		Name:  p.Name,
		URL:   p.Template(geo.FormatNumber(c.Lat), geo.FormatNumber(c.Lng)),
		Color: p.Color,
	}
}

// All returns a copy of the provider table.
func All() []Provider {
	return slices.Clone(table)
}

// Lookup finds a provider by name, ignoring case.
func Lookup(name string) (Provider, bool) {
	for _, p := range table {
		if strings.EqualFold(p.Name, name) {
			return p, true
		}
	}

	return Provider{}, false
}
