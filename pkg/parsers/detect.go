package parsers

import (
	"net/url"
	"strings"

	"github.com/btraven00/geobridge/pkg/geo"
)

// Labels returned by DetectSource besides provider names.
const (
	LabelRawCoordinates = "Raw Coordinates"
	LabelUnknownSource  = "Unknown Source"
)

// DetectSource labels where text came from, for display only. It uses the
// same recognition checks as Find, so a provider label always names a source
// whose CanParse accepts text. Any other absolute URL is "Unknown Source";
// everything else is the empty string.
func DetectSource(text string) string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return ""
	}

	if geo.IsRaw(trimmed) {
		return LabelRawCoordinates
	}

	if src, ok := Find(trimmed); ok {
		return src.Name()
	}

	if u, err := url.Parse(trimmed); err == nil && u.Scheme != "" {
		return LabelUnknownSource
	}

	return ""
}
