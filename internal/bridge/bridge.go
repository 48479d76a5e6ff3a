// Package bridge turns an input into a report: the extracted coordinate, where
// it came from, and links that open it in every supported map application.
package bridge

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/btraven00/geobridge/pkg/geo"
	"github.com/btraven00/geobridge/pkg/parsers"
	"github.com/btraven00/geobridge/pkg/providers"
)

// DefaultWorkers bounds BridgeAll when no worker count is given.
const DefaultWorkers = 4

// WarnOutOfRange is attached to reports whose coordinate is outside WGS84 bounds.
const WarnOutOfRange = "coordinate is outside the valid latitude/longitude range"

// Extractor finds the coordinate in a piece of text. *extractor.Service
// implements it.
type Extractor interface {
	Extract(ctx context.Context, text string) parsers.Result
}

// ExtractorFunc adapts a plain function, such as parsers.ExtractCoordinates
// wrapped for a context, to Extractor.
type ExtractorFunc func(ctx context.Context, text string) parsers.Result

func (f ExtractorFunc) Extract(ctx context.Context, text string) parsers.Result {
	return f(ctx, text)
}

// Offline extracts without any network access.
var Offline = ExtractorFunc(func(_ context.Context, text string) parsers.Result {
	return parsers.ExtractCoordinates(text)
})

// Report is everything known about one input.
type Report struct {
	Input    string           `json:"input"`
	Source   string           `json:"detected_source,omitempty"`
	Result   parsers.Result   `json:"result"`
	Links    []providers.Link `json:"links,omitempty"`
	Warnings []string         `json:"warnings,omitempty"`
	Elapsed  time.Duration    `json:"elapsed_ns"`
}

// Bridger builds reports. It is safe for concurrent use.
type Bridger struct {
	extractor Extractor
	logger    *slog.Logger
}

// New creates a Bridger. A nil logger discards output.
func New(ext Extractor, logger *slog.Logger) *Bridger {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Bridger{extractor: ext, logger: logger}
}

// Bridge extracts the coordinate of input and attaches provider links.
func (b *Bridger) Bridge(ctx context.Context, input string) *Report {
	start := time.Now()

	report := &Report{
		Input:  input,
		Source: parsers.DetectSource(input),
		Result: b.extractor.Extract(ctx, input),
	}

	report.Links = providers.Links(report.Result.Coordinate)
	report.check()
	report.Elapsed = time.Since(start)

	b.logger.Debug("bridged input",
		"input", input,
		"status", report.Result.Status,
		"source", report.Result.Stage,
		"elapsed", report.Elapsed)

	return report
}

// BridgeAll bridges inputs concurrently with at most workers in flight and
// returns the reports in input order. It stops early only when ctx is done.
func (b *Bridger) BridgeAll(ctx context.Context, inputs []string, workers int) ([]*Report, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}

	reports := make([]*Report, len(inputs))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, input := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			reports[i] = b.Bridge(ctx, input)

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return reports, fmt.Errorf("batch interrupted: %w", err)
	}

	return reports, nil
}

// ForCoordinate reports a coordinate that is already known, for example one
// typed on the command line.
func ForCoordinate(input string, c geo.Coordinate) *Report {
	report := &Report{
		Input:  input,
		Source: parsers.LabelRawCoordinates,
		Result: parsers.FoundAt(c, parsers.StageRaw),
		Links:  providers.Links(&c),
	}
	report.check()

	return report
}

func (r *Report) check() {
	if c := r.Result.Coordinate; c != nil && !c.InRange() {
		r.Warnings = append(r.Warnings, WarnOutOfRange)
	}
}
