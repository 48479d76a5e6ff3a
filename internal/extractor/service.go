// Package extractor orchestrates coordinate extraction: bare coordinate
// pairs, short-link expansion, then provider parsing.
package extractor

import (
	"context"
	"log/slog"
	"slices"
	"strings"

	"github.com/btraven00/geobridge/internal/resolver"
	"github.com/btraven00/geobridge/pkg/geo"
	"github.com/btraven00/geobridge/pkg/parsers"
)

// DefaultShortLinkHosts are the markers that trigger expansion. Plain
// maps.apple.com links carry their coordinate, so only Apple's short form is
// listed.
var DefaultShortLinkHosts = []string{"goo.gl", "maps.app.goo.gl", "bit.ly", "maps.apple/"}

// Expander resolves a short link. *resolver.Resolver implements it.
type Expander interface {
	Expand(ctx context.Context, raw string) *resolver.ExpansionResult
}

// Service runs the full extraction pipeline. It is safe for concurrent use.
type Service struct {
	expander   Expander
	logger     *slog.Logger
	shortHosts []string
}

// Option configures a Service.
type Option func(*Service)

// WithShortLinkHosts replaces the markers that trigger expansion. An empty
// list disables expansion.
func WithShortLinkHosts(hosts []string) Option {
	return func(s *Service) {
		s.shortHosts = normalizeHosts(hosts)
	}
}

func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.logger = l
		}
	}
}

// New creates a Service. A nil expander disables short-link expansion.
func New(expander Expander, opts ...Option) *Service {
	s := &Service{
		expander:   expander,
		logger:     slog.New(slog.DiscardHandler),
		shortHosts: normalizeHosts(DefaultShortLinkHosts),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// IsShortLink reports whether text contains one of the configured markers.
func (s *Service) IsShortLink(text string) bool {
	lower := strings.ToLower(text)

	return slices.ContainsFunc(s.shortHosts, func(h string) bool {
		return strings.Contains(lower, h)
	})
}

// Extract finds the coordinate text points at. Expansion failures are logged
// and extraction continues with the original text. Extract never panics.
func (s *Service) Extract(ctx context.Context, text string) (res parsers.Result) {
	defer func() {
		if p := recover(); p != nil {
			s.logger.Error("extraction panicked", "input", text, "panic", p)
			res = parsers.MalformedURL()
		}
	}()

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return parsers.Empty()
	}

	if c, ok := geo.MatchRaw(trimmed); ok {
		return parsers.FoundAt(c, parsers.StageRaw)
	}

	target := trimmed
	expanded := ""

	if s.expander != nil && s.IsShortLink(trimmed) {
		if u, ok := s.expand(ctx, trimmed); ok {
			target, expanded = u, u
		}
	}

	res = parsers.ExtractCoordinates(target)
	res.ExpandedURL = expanded

	s.logger.Debug("extracted", "input", trimmed, "status", res.Status, "source", res.Stage)

	return res
}

// expand returns the expanded URL when it is usable in place of text.
func (s *Service) expand(ctx context.Context, text string) (string, bool) {
	result := s.expander.Expand(ctx, text)
	if result == nil {
		return "", false
	}

	if !result.Success {
		s.logger.Warn("could not expand short link, using it as given",
			"input", text, "error", result.Err)

		return "", false
	}

	u := result.ExpandedURL
	if u == "" || u == text || strings.Contains(strings.ToLower(u), "error") {
		s.logger.Debug("ignoring expansion", "input", text, "expanded", u)
		return "", false
	}

	s.logger.Debug("expanded short link", "input", text, "expanded", u, "method", result.Method)

	return u, true
}

func normalizeHosts(hosts []string) []string {
	out := make([]string, 0, len(hosts))

	for _, h := range hosts {
		h = strings.ToLower(strings.TrimSpace(h))
		if h != "" {
			out = append(out, h)
		}
	}

	return out
}
