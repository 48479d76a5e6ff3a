package bridge

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/btraven00/geobridge/internal/resolver"
	"github.com/btraven00/geobridge/pkg/geo"
)

// Output formats.
const (
	FormatHuman = "human"
	FormatJSON  = "json"
	FormatCSV   = "csv"
)

// Color modes.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

var csvHeader = []string{"input", "status", "source", "lat", "lng", "error"}

type styles struct {
	heading *color.Color
	label   *color.Color
	ok      *color.Color
	fail    *color.Color
	warn    *color.Color
	coord   *color.Color
	link    *color.Color
	dim     *color.Color
}

func newStyles(enabled bool) *styles {
	s := &styles{
		heading: color.New(color.Bold, color.FgHiWhite),
		label:   color.New(color.Bold),
		ok:      color.New(color.FgHiGreen),
		fail:    color.New(color.FgHiRed),
		warn:    color.New(color.FgYellow),
		coord:   color.New(color.Bold, color.FgHiGreen),
		link:    color.New(color.FgHiBlue),
		dim:     color.New(color.Faint),
	}

	for _, c := range []*color.Color{s.heading, s.label, s.ok, s.fail, s.warn, s.coord, s.link, s.dim} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	return s
}

// ColorEnabled resolves a color mode for out. Auto enables color only for a
// terminal when NO_COLOR is unset.
func ColorEnabled(mode string, out io.Writer) bool {
	switch mode {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}

	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	f, ok := out.(*os.File)

	return ok && term.IsTerminal(int(f.Fd()))
}

// Printer writes reports in one output format.
type Printer struct {
	out    io.Writer
	format string
	styles *styles
}

// NewPrinter creates a Printer. An empty format means human.
func NewPrinter(out io.Writer, format string, colorEnabled bool) *Printer {
	format = strings.ToLower(format)
	if format == "" {
		format = FormatHuman
	}

	return &Printer{
		out:    out,
		format: format,
		styles: newStyles(colorEnabled && format == FormatHuman),
	}
}

// PrintReport writes a single report.
func (p *Printer) PrintReport(r *Report) error {
	switch p.format {
	case FormatJSON:
		return p.encodeJSON(r)
	case FormatCSV:
		return p.writeCSV([]*Report{r})
	case FormatHuman:
		p.printHuman(r)
		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", p.format)
	}
}

// PrintReports writes a batch. Nil entries, left by an interrupted batch,
// are skipped.
func (p *Printer) PrintReports(reports []*Report) error {
	present := make([]*Report, 0, len(reports))

	for _, r := range reports {
		if r != nil {
			present = append(present, r)
		}
	}

	switch p.format {
	case FormatJSON:
		return p.encodeJSON(present)
	case FormatCSV:
		return p.writeCSV(present)
	case FormatHuman:
		found := 0

		for i, r := range present {
			if i > 0 {
				fmt.Fprintln(p.out)
			}

			p.printHuman(r)

			if r.Result.Found() {
				found++
			}
		}

		fmt.Fprintln(p.out)
		p.styles.heading.Fprintf(p.out, "%d of %d inputs resolved to a coordinate\n", found, len(present))

		return nil
	default:
		return fmt.Errorf("unsupported output format: %s", p.format)
	}
}

// PrintExpansion writes the outcome of a short-link expansion.
func (p *Printer) PrintExpansion(res *resolver.ExpansionResult) error {
	switch p.format {
	case FormatJSON:
		return p.encodeJSON(res)
	case FormatHuman:
		s := p.styles

		if !res.Success {
			s.fail.Fprintf(p.out, "❌ %s\n", res.Error)

			if res.Err != nil {
				s.dim.Fprintf(p.out, "   %v\n", res.Err)
			}

			return nil
		}

		p.field("Original", res.OriginalURL)
		p.field("Expanded", s.link.Sprint(res.ExpandedURL))
		p.field("Method", string(res.Method))

		return nil
	default:
		return fmt.Errorf("unsupported output format for expansion: %s", p.format)
	}
}

func (p *Printer) printHuman(r *Report) {
	s := p.styles

	p.field("Input", r.Input)

	if r.Source != "" {
		p.field("Source", s.ok.Sprint(r.Source))
	}

	if r.Result.ExpandedURL != "" {
		p.field("Expanded", s.link.Sprint(r.Result.ExpandedURL))
	}

	if !r.Result.Found() {
		if r.Result.Error != "" {
			s.fail.Fprintf(p.out, "❌ %s\n", r.Result.Error)
		} else {
			s.dim.Fprintln(p.out, "(empty input)")
		}

		return
	}

	c := r.Result.Coordinate
	p.field("Coordinate", s.coord.Sprint(c.String())+s.dim.Sprintf("  via %s", r.Result.Stage))

	for _, w := range r.Warnings {
		s.warn.Fprintf(p.out, "⚠️  %s\n", w)
	}

	if len(r.Links) == 0 {
		return
	}

	width := 0
	for _, l := range r.Links {
		width = max(width, len(l.Name))
	}

	s.label.Fprintln(p.out, "Links:")

	for _, l := range r.Links {
		fmt.Fprintf(p.out, "  %-*s  %s\n", width, l.Name, s.link.Sprint(l.URL))
	}
}

func (p *Printer) field(name, value string) {
	p.styles.label.Fprintf(p.out, "%-11s ", name+":")
	fmt.Fprintln(p.out, value)
}

func (p *Printer) encodeJSON(v any) error {
	encoder := json.NewEncoder(p.out)
	encoder.SetIndent("", "  ")

	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

func (p *Printer) writeCSV(reports []*Report) error {
	w := csv.NewWriter(p.out)

	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}

	for _, r := range reports {
		lat, lng := "", ""
		if c := r.Result.Coordinate; c != nil {
			lat, lng = geo.FormatNumber(c.Lat), geo.FormatNumber(c.Lng)
		}

		row := []string{r.Input, string(r.Result.Status), r.Result.Stage, lat, lng, r.Result.Error}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write csv row: %w", err)
		}
	}

	w.Flush()

	return w.Error()
}
