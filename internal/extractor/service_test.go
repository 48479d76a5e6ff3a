package extractor

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btraven00/geobridge/internal/resolver"
	"github.com/btraven00/geobridge/pkg/geo"
	"github.com/btraven00/geobridge/pkg/parsers"
)

type stubExpander struct {
	result *resolver.ExpansionResult
	calls  int
}

func (s *stubExpander) Expand(_ context.Context, _ string) *resolver.ExpansionResult {
	s.calls++
	return s.result
}

type failingTransport struct{}

func (failingTransport) RoundTrip(*http.Request) (*http.Response, error) {
	return nil, errors.New("dial tcp: no route to host")
}

func TestService_PreviewImageFallback(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/g/abc", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/place/salt-lake", http.StatusFound)
	})
	mux.HandleFunc("/place/salt-lake", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			_, _ = w.Write([]byte(`<html><head><meta property="og:image" content="https://maps.google.com/maps/api/staticmap?center=22.5511%2C88.4146&amp;zoom=15"></head></html>`))
		}
	})

	server := httptest.NewServer(mux)
	defer server.Close()

	svc := New(resolver.New(5*time.Second), WithShortLinkHosts([]string{"127.0.0.1"}))

	res := svc.Extract(context.Background(), server.URL+"/g/abc")

	require.True(t, res.Found(), "status %s: %s", res.Status, res.Error)
	assert.Equal(t, geo.Coordinate{Lat: 22.5511, Lng: 88.4146}, *res.Coordinate)
	assert.Equal(t, "https://www.google.com/maps?q=22.5511,88.4146", res.ExpandedURL)
	assert.Equal(t, "Google Maps", res.Stage)
}

func TestService_NetworkFailureFallsBack(t *testing.T) {
	client := &http.Client{Transport: failingTransport{}}
	svc := New(resolver.New(time.Second, resolver.WithHTTPClient(client)))

	res := svc.Extract(context.Background(), "https://goo.gl/maps/@12.971599,77.594566")

	require.True(t, res.Found())
	assert.Equal(t, geo.Coordinate{Lat: 12.971599, Lng: 77.594566}, *res.Coordinate)
	assert.Empty(t, res.ExpandedURL)
}

func TestService_NetworkFailureWithoutCoordinate(t *testing.T) {
	client := &http.Client{Transport: failingTransport{}}
	svc := New(resolver.New(time.Second, resolver.WithHTTPClient(client)))

	res := svc.Extract(context.Background(), "https://maps.app.goo.gl/YLmUSY8R8X5rN6ee8?g_st=iw")

	assert.Equal(t, parsers.StatusUnrecognized, res.Status)
	assert.Equal(t, parsers.MessageUnrecognized, res.Error)
}

func TestService_Substitution(t *testing.T) {
	const short = "https://maps.app.goo.gl/abc"

	tests := []struct {
		name        string
		result      *resolver.ExpansionResult
		found       bool
		expandedURL string
	}{
		{
			name:        "usable expansion",
			result:      &resolver.ExpansionResult{Success: true, ExpandedURL: "https://www.google.com/maps/@1.5,2.5,15z"},
			found:       true,
			expandedURL: "https://www.google.com/maps/@1.5,2.5,15z",
		},
		{
			name:   "failed expansion",
			result: &resolver.ExpansionResult{Error: resolver.MessageFailed, ExpandedURL: "https://www.google.com/maps/@1.5,2.5"},
		},
		{
			name:   "expansion is an error page",
			result: &resolver.ExpansionResult{Success: true, ExpandedURL: "https://www.google.com/sorry/ERROR?continue=@1.5,2.5"},
		},
		{
			name:   "expansion unchanged",
			result: &resolver.ExpansionResult{Success: true, ExpandedURL: short},
		},
		{
			name:   "expansion empty",
			result: &resolver.ExpansionResult{Success: true},
		},
		{
			name: "nil expansion",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stub := &stubExpander{result: tt.result}
			res := New(stub).Extract(context.Background(), "  "+short+"  ")

			assert.Equal(t, 1, stub.calls)
			assert.Equal(t, tt.found, res.Found())
			assert.Equal(t, tt.expandedURL, res.ExpandedURL)
		})
	}
}

func TestService_SkipsExpansion(t *testing.T) {
	stub := &stubExpander{result: &resolver.ExpansionResult{Success: true, ExpandedURL: "https://www.google.com/maps/@9.5,9.5"}}
	svc := New(stub)

	tests := []struct {
		input  string
		status parsers.Status
	}{
		{"", parsers.StatusEmpty},
		{"   ", parsers.StatusEmpty},
		{"22.7009146, 88.3412271", parsers.StatusFound},
		{"https://maps.apple.com/?ll=37.334606,-122.009102", parsers.StatusFound},
		{"https://www.openstreetmap.org/#map=16/51.5074/-0.1278", parsers.StatusFound},
		{"not a url at all", parsers.StatusUnrecognized},
	}

	for _, tt := range tests {
		res := svc.Extract(context.Background(), tt.input)
		assert.Equal(t, tt.status, res.Status, tt.input)
		assert.Empty(t, res.ExpandedURL, tt.input)
	}

	assert.Zero(t, stub.calls)
}

func TestService_NilExpander(t *testing.T) {
	res := New(nil).Extract(context.Background(), "https://goo.gl/maps/@1.5,2.5")

	require.True(t, res.Found())
	assert.Equal(t, geo.Coordinate{Lat: 1.5, Lng: 2.5}, *res.Coordinate)
}

func TestService_IsShortLink(t *testing.T) {
	svc := New(nil)

	assert.True(t, svc.IsShortLink("https://MAPS.APP.GOO.GL/x"))
	assert.True(t, svc.IsShortLink("https://bit.ly/3abc"))
	assert.True(t, svc.IsShortLink("https://maps.apple/p/xyz"))
	assert.False(t, svc.IsShortLink("https://maps.apple.com/?ll=1.5,2.5"))
	assert.False(t, svc.IsShortLink("https://www.google.com/maps/@1.5,2.5"))

	disabled := New(nil, WithShortLinkHosts(nil))
	assert.False(t, disabled.IsShortLink("https://goo.gl/maps/x"))
}
