// Package resolver expands short map links into URLs that carry a coordinate.
package resolver

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

const (
	DefaultTimeout      = 15 * time.Second
	DefaultMaxBodyBytes = 2 << 20
	DefaultUserAgent    = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

	maxRedirects = 10
)

// Messages reported in ExpansionResult.Error.
const (
	MessageURLRequired = "URL is required"
	MessageFailed      = "Failed to expand URL"
)

// Method records how an expansion arrived at its URL.
type Method string

const (
	MethodRedirect    Method = "redirect"
	MethodOGImage     Method = "og_image"
	MethodPassthrough Method = "passthrough"
)

// ErrEmptyURL is the cause recorded for blank input.
var ErrEmptyURL = errors.New("url is required")

// coordinateTokens spots URLs that already carry a position.
var coordinateTokens = regexp.MustCompile(`!3d|!4d|@[-\d.]+,[-\d.]+|[?&]q=[-\d.]+,[-\d.]+|[?&]center=[-\d.]+,[-\d.]+`)

// ExpansionResult is the outcome of one Expand call.
type ExpansionResult struct {
	Err         error  `json:"-"`
	OriginalURL string `json:"original_url,omitempty"`
	ExpandedURL string `json:"expanded_url,omitempty"`
	Error       string `json:"error,omitempty"`
	Method      Method `json:"method,omitempty"`
	Success     bool   `json:"success"`
}

// Resolver follows redirects and scrapes link previews. It is safe for
// concurrent use.
type Resolver struct {
	client       *http.Client
	logger       *slog.Logger
	userAgent    string
	maxBodyBytes int64
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithHTTPClient replaces the pooled client. The client's redirect policy is
// left untouched.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Resolver) {
		r.client = c
	}
}

func WithUserAgent(ua string) Option {
	return func(r *Resolver) {
		if ua != "" {
			r.userAgent = ua
		}
	}
}

// WithMaxBodyBytes caps how much of a page is read when looking for a preview.
func WithMaxBodyBytes(n int64) Option {
	return func(r *Resolver) {
		if n > 0 {
			r.maxBodyBytes = n
		}
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(r *Resolver) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a Resolver whose requests are bounded by timeout.
func New(timeout time.Duration, opts ...Option) *Resolver {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	client := cleanhttp.DefaultPooledClient()
	client.Timeout = timeout
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if len(via) >= maxRedirects {
			return fmt.Errorf("stopped after %d redirects", len(via))
		}
		// Keep the browser headers on every hop.
		if len(via) > 0 {
			req.Header = via[0].Header.Clone()
		}

		return nil
	}

	r := &Resolver{
		client:       client,
		logger:       slog.New(slog.DiscardHandler),
		userAgent:    DefaultUserAgent,
		maxBodyBytes: DefaultMaxBodyBytes,
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Expand resolves raw to the URL it redirects to. When that URL carries no
// coordinate, the page's og:image preview is checked for a static-map center
// and a Google Maps query URL is built from it. Transport failures are
// reported in the result; Expand never returns an error or panics.
func (r *Resolver) Expand(ctx context.Context, raw string) (res *ExpansionResult) {
	defer func() {
		if p := recover(); p != nil {
			res = failure(raw, fmt.Errorf("expand %s: panic: %v", raw, p))
		}
	}()

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return &ExpansionResult{Error: MessageURLRequired, Err: ErrEmptyURL}
	}

	target := raw
	if !strings.HasPrefix(target, "http") {
		target = "https://" + target
	}

	final, err := r.follow(ctx, target)
	if err != nil {
		r.logger.Warn("short link expansion failed", "url", target, "error", err)
		return failure(target, err)
	}

	r.logger.Debug("followed redirects", "url", target, "final", final)

	if coordinateTokens.MatchString(final) {
		return success(target, final, MethodRedirect)
	}

	image, err := r.previewImage(ctx, final)
	if err != nil {
		r.logger.Warn("preview fetch failed", "url", final, "error", err)
		return failure(target, err)
	}

	if lat, lng, ok := centerOf(image); ok {
		return success(target, "https://www.google.com/maps?q="+lat+","+lng, MethodOGImage)
	}

	return success(target, final, MethodPassthrough)
}

// follow issues a HEAD request and returns the URL of the last hop.
func (r *Resolver) follow(ctx context.Context, target string) (string, error) {
	resp, err := r.do(ctx, http.MethodHead, target)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	return resp.Request.URL.String(), nil
}

// previewImage fetches page and returns its og:image URL, or "" if it has none.
func (r *Resolver) previewImage(ctx context.Context, page string) (string, error) {
	resp, err := r.do(ctx, http.MethodGet, page)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, r.maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", page, err)
	}

	return ogImage(body), nil
}

func (r *Resolver) do(ctx context.Context, method, target string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, method, target, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", method, err)
	}

	r.addBrowserHeaders(req)

	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, target, err)
	}

	return resp, nil
}

// addBrowserHeaders makes requests look like a desktop browser. Accept-Encoding
// is left to the transport so responses are decompressed transparently.
func (r *Resolver) addBrowserHeaders(req *http.Request) {
	req.Header.Set("User-Agent", r.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,image/avif,image/webp,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("Upgrade-Insecure-Requests", "1")
}

func success(original, expanded string, method Method) *ExpansionResult {
	return &ExpansionResult{
		Success:     true,
		OriginalURL: original,
		ExpandedURL: expanded,
		Method:      method,
	}
}

func failure(original string, err error) *ExpansionResult {
	return &ExpansionResult{
		OriginalURL: original,
		Error:       MessageFailed,
		Err:         err,
	}
}
