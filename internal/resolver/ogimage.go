package resolver

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	ogImageContentFirst  = regexp.MustCompile(`content="([^"]+)"\s+property="og:image"`)
	ogImagePropertyFirst = regexp.MustCompile(`property="og:image"\s+content="([^"]+)"`)

	// centerPattern reads a static-map center, comma plain or percent-encoded.
	centerPattern = regexp.MustCompile(`[?&]center=(-?\d+\.\d+)(?:%2[cC]|,)(-?\d+\.\d+)`)
)

// ogImage returns the og:image content of an HTML page. Pages that goquery
// cannot read, or where it finds no tag, are scanned with plain patterns.
func ogImage(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err == nil {
		content, ok := doc.Find(`meta[property="og:image"]`).First().Attr("content")
		if ok && strings.TrimSpace(content) != "" {
			return strings.TrimSpace(content)
		}
	}

	for _, re := range []*regexp.Regexp{ogImageContentFirst, ogImagePropertyFirst} {
		if m := re.FindSubmatch(body); m != nil {
			return strings.ReplaceAll(string(m[1]), "&amp;", "&")
		}
	}

	return ""
}

// centerOf extracts the latitude and longitude text of a static-map center.
func centerOf(image string) (lat, lng string, ok bool) {
	m := centerPattern.FindStringSubmatch(image)
	if m == nil {
		return "", "", false
	}

	return m[1], m[2], true
}
