package parsers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectSource(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"22.7009146, 88.3412271", LabelRawCoordinates},
		{" 22.7009146,88.3412271 ", LabelRawCoordinates},
		{"https://www.google.com/maps/@12.9,77.5,15z", "Google Maps"},
		{"https://maps.app.goo.gl/YLmUSY8R8X5rN6ee8", "Google Maps"},
		{"https://maps.apple.com/?ll=1.5,2.5", "Apple Maps"},
		{"https://www.bing.com/maps?cp=1.5~2.5", "Bing Maps"},
		{"https://waze.com/ul?ll=1.5,2.5", "Waze"},
		{"https://earth.google.com/web/@1.5,2.5", "Google Earth"},
		{"https://www.openstreetmap.org/#map=16/1.5/2.5", "OpenStreetMap"},
		{"geo:1.5,2.5", "Geo URI"},
		{"https://yandex.com/maps/?pt=2.5,1.5", "Yandex Maps"},
		{"https://wego.here.com/search/1.5,2.5", "Here WeGo"},
		{"https://example.com/somewhere", LabelUnknownSource},
		{"mailto:someone@example.com", LabelUnknownSource},
		{"not a url at all", ""},
		{"40, -70", ""},
		{"", ""},
		{"   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, DetectSource(tt.input))
		})
	}
}

func TestDetectSource_AgreesWithRecognition(t *testing.T) {
	inputs := []string{
		"https://www.google.com/maps/place/Eiffel+Tower",
		"https://goo.gl/maps/abc",
		"https://maps.apple/p/xyz",
		"https://www.bing.com/maps/place/@12.5,13.5",
		"https://www.waze.com/live-map",
		"https://earth.google.com/web/",
		"https://www.openstreetmap.org/way/123",
		"geo:nowhere",
		"https://yandex.ru/maps/213/moscow/",
		"https://share.here.com/l/abc",
		"https://www.google.com/maps/dir/?ll=1.5,2.5&from=waze.com",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			label := DetectSource(input)

			src, ok := ByName(label)
			require.True(t, ok, "label %q is not a provider", label)
			assert.True(t, src.CanParse(input))

			first, _ := Find(input)
			assert.Equal(t, first, src)
		})
	}
}
