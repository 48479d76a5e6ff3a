package parsers

import (
	"errors"
	"net/url"
	"strings"

	"github.com/btraven00/geobridge/pkg/geo"
)

// Status classifies an extraction outcome.
type Status string

const (
	StatusFound        Status = "found"
	StatusEmpty        Status = "empty"
	StatusUnrecognized Status = "unrecognized"
	StatusMalformedURL Status = "malformed_url"
)

// User-facing messages for the failure statuses.
const (
	MessageUnrecognized = "Could not extract coordinates. Please ensure it is a valid map URL or Coordinate pair."
	MessageMalformedURL = "Invalid URL format."
)

// Stages reported in Result.Stage besides provider names.
const (
	StageRaw     = "raw"
	StageGeneric = "generic"
)

var (
	ErrUnrecognized = errors.New("could not extract coordinates")
	ErrMalformedURL = errors.New("invalid URL format")
)

// Result is the outcome of one extraction call. Exactly one of Coordinate or
// Error is set, except for empty input where neither is.
type Result struct {
	Coordinate  *geo.Coordinate `json:"coordinate,omitempty"`
	Status      Status          `json:"status"`
	Error       string          `json:"error,omitempty"`
	Stage       string          `json:"source,omitempty"`
	ExpandedURL string          `json:"expanded_url,omitempty"`
}

// Found reports whether a coordinate was extracted.
func (r Result) Found() bool {
	return r.Status == StatusFound && r.Coordinate != nil
}

// Err returns the sentinel error matching a failure status, or nil.
func (r Result) Err() error {
	switch r.Status {
	case StatusUnrecognized:
		return ErrUnrecognized
	case StatusMalformedURL:
		return ErrMalformedURL
	default:
		return nil
	}
}

// FoundAt builds a successful result produced by the named stage.
func FoundAt(c geo.Coordinate, stage string) Result {
	return Result{Coordinate: &c, Status: StatusFound, Stage: stage}
}

// Empty is the result for blank input: no coordinate and no message.
func Empty() Result {
	return Result{Status: StatusEmpty}
}

// Unrecognized is the result when nothing matched.
func Unrecognized() Result {
	return Result{Status: StatusUnrecognized, Error: MessageUnrecognized}
}

// MalformedURL is the result when the input could not be read as a URL.
func MalformedURL() Result {
	return Result{Status: StatusMalformedURL, Error: MessageMalformedURL}
}

// ExtractCoordinates runs the offline pipeline: a bare "lat, lng" pair, then
// the first recognizing provider parser, then the generic "@lat,lng" search.
// It performs no network access and never panics.
func ExtractCoordinates(text string) (res Result) {
	defer func() {
		if recover() != nil {
			res = MalformedURL()
		}
	}()

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return Empty()
	}

	if c, ok := geo.MatchRaw(trimmed); ok {
		return FoundAt(c, StageRaw)
	}

	// Only the first recognizing provider is tried; if it cannot decode the
	// link, the generic search gets the next chance.
	if src, ok := Find(trimmed); ok {
		if c, ok := src.Parse(trimmed); ok {
			return FoundAt(c, src.Name())
		}
	}

	if c, ok := MatchGeneric(trimmed); ok {
		return FoundAt(c, StageGeneric)
	}

	if looksMalformed(trimmed) {
		return MalformedURL()
	}

	return Unrecognized()
}

// looksMalformed reports whether s claims to be a URL but does not parse as one.
func looksMalformed(s string) bool {
	if !strings.Contains(s, "://") {
		return false
	}

	_, err := url.Parse(s)

	return err != nil
}
