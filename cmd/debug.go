package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/btraven00/geobridge/internal/extractor"
	"github.com/btraven00/geobridge/pkg/geo"
	"github.com/btraven00/geobridge/pkg/parsers"
)

var debugCmd = &cobra.Command{
	Use:   "debug",
	Short: "Debug information about parsers and settings",
	Long:  `Display debug information about provider recognition, decoding and the active settings.`,
	Args:  cobra.NoArgs,
	RunE:  runDebug,
}

var debugTestInput string

func init() {
	rootCmd.AddCommand(debugCmd)
	debugCmd.Flags().StringVarP(&debugTestInput, "test", "t", "", "trace recognition and decoding for an input without network access")
}

func runDebug(cmd *cobra.Command, args []string) error {
	if debugTestInput != "" {
		traceInput(cmd, debugTestInput)
		return nil
	}

	showGeneralDebug(cmd)

	return nil
}

func traceInput(cmd *cobra.Command, input string) {
	out := cmd.OutOrStdout()
	trimmed := strings.TrimSpace(input)

	fmt.Fprintf(out, "=== Tracing: %q ===\n\n", input)

	if c, ok := geo.MatchRaw(trimmed); ok {
		fmt.Fprintf(out, "✅ Raw coordinate pair: %s\n", c)
	} else {
		fmt.Fprintln(out, "❌ Not a raw coordinate pair")
	}

	svc := extractor.New(nil, extractor.WithShortLinkHosts(cfg.ShortLinkHosts))
	if svc.IsShortLink(trimmed) {
		fmt.Fprintln(out, "🔗 Short link: would be expanded before parsing")
	} else {
		fmt.Fprintln(out, "   Short link: no")
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Recognition (registry order):")

	first, found := parsers.Find(trimmed)

	for i, src := range parsers.Registry() {
		mark := "  "
		if src.CanParse(trimmed) {
			mark = "✅"
		}

		note := ""
		if found && src == first {
			note = "  <- selected"
		}

		fmt.Fprintf(out, "  %d. %s %s%s\n", i+1, mark, src, note)
	}

	fmt.Fprintln(out)

	if found {
		if c, ok := first.Parse(trimmed); ok {
			fmt.Fprintf(out, "%s decodes: %s\n", first, c)
		} else {
			fmt.Fprintf(out, "%s recognizes the input but finds no coordinate\n", first)
		}
	}

	if c, ok := parsers.MatchGeneric(trimmed); ok {
		fmt.Fprintf(out, "Generic @lat,lng search: %s\n", c)
	} else {
		fmt.Fprintln(out, "Generic @lat,lng search: no match")
	}

	fmt.Fprintf(out, "Detected source: %q\n", parsers.DetectSource(input))
	fmt.Fprintf(out, "Offline result: %s\n", extractionStatus(parsers.ExtractCoordinates(input)))
}

func showGeneralDebug(cmd *cobra.Command) {
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "=== Geobridge Debug Information ===")
	fmt.Fprintln(out)

	names := make([]string, 0, len(parsers.Registry()))
	for _, src := range parsers.Registry() {
		names = append(names, src.Name())
	}

	fmt.Fprintf(out, "Parsers: %d (%s)\n", len(names), strings.Join(names, ", "))
	fmt.Fprintf(out, "Short-link hosts: %s\n", strings.Join(cfg.ShortLinkHosts, ", "))
	fmt.Fprintf(out, "Timeout: %s\n", cfg.Timeout)
	fmt.Fprintf(out, "Max body bytes: %d\n", cfg.MaxBodyBytes)
	fmt.Fprintf(out, "User-Agent: %s\n", cfg.UserAgent)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "Use --test <input> to trace how an input is recognized")
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Example commands:")
	fmt.Fprintln(out, "  geobridge debug --test 'https://www.google.com/maps/@12.971599,77.594566,15z'")
	fmt.Fprintln(out, "  geobridge debug --test 'geo:37.786971,-122.399677'")
}
