package resolver

import "testing"

func TestOgImage(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		expected string
	}{
		{
			name:     "property before content",
			body:     `<html><head><meta property="og:image" content="https://example.com/a.png?center=1.5,2.5"></head></html>`,
			expected: "https://example.com/a.png?center=1.5,2.5",
		},
		{
			name:     "content before property",
			body:     `<meta content="https://example.com/b.png?x=1&amp;center=1.5%2C2.5" property="og:image">`,
			expected: "https://example.com/b.png?x=1&center=1.5%2C2.5",
		},
		{
			name:     "first tag wins",
			body:     `<meta property="og:image" content="first"><meta property="og:image" content="second">`,
			expected: "first",
		},
		{
			name:     "no tag",
			body:     `<html><head><meta property="og:title" content="x"></head></html>`,
			expected: "",
		},
		{
			name:     "empty body",
			body:     "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ogImage([]byte(tt.body)); got != tt.expected {
				t.Errorf("ogImage() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestCenterOf(t *testing.T) {
	tests := []struct {
		image string
		lat   string
		lng   string
		ok    bool
	}{
		{"https://maps.google.com/maps/api/staticmap?center=22.55115335%2C88.4146176&zoom=15", "22.55115335", "88.4146176", true},
		{"https://maps.google.com/maps/api/staticmap?zoom=15&center=-33.5,151.25", "-33.5", "151.25", true},
		{"https://maps.google.com/maps/api/staticmap?center=22.5%2c88.4", "22.5", "88.4", true},
		{"https://maps.google.com/maps/api/staticmap?center=Kolkata", "", "", false},
		{"https://maps.google.com/maps/api/staticmap?center=22,88", "", "", false},
		{"", "", "", false},
	}

	for _, tt := range tests {
		lat, lng, ok := centerOf(tt.image)
		if ok != tt.ok || lat != tt.lat || lng != tt.lng {
			t.Errorf("centerOf(%q) = %q, %q, %v; want %q, %q, %v", tt.image, lat, lng, ok, tt.lat, tt.lng, tt.ok)
		}
	}
}
