package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/btraven00/geobridge/internal/bridge"
	"github.com/btraven00/geobridge/pkg/parsers"
)

var (
	extractNoExpand bool
	extractFail     bool
)

// errNoCoordinate is returned with --fail when nothing was extracted.
var errNoCoordinate = errors.New("no coordinate extracted")

// extractCmd represents the extract command
var extractCmd = &cobra.Command{
	Use:   "extract <map-link-or-coordinates>",
	Short: "Extract the coordinate from a map link and print links for every map app",
	Long: `Extract reads a map link or a "lat, lng" pair and prints the coordinate,
the detected source and links that open the same spot in every supported
map application.

Short links are expanded over the network first; use --no-expand to stay
offline. Several arguments are joined with spaces, so unquoted coordinate
pairs work too.

Examples:
  geobridge extract "https://www.google.com/maps/place/@12.971599,77.594566,15z"
  geobridge extract https://maps.app.goo.gl/YLmUSY8R8X5rN6ee8
  geobridge extract 22.7009146, 88.3412271
  geobridge extract --output json "geo:37.786971,-122.399677"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	input := strings.Join(args, " ")

	b := bridge.New(newService(!extractNoExpand), logger)
	report := b.Bridge(commandContext(cmd), input)

	for _, w := range report.Warnings {
		logger.Warn(w, "input", input)
	}

	if err := newPrinter(cmd).PrintReport(report); err != nil {
		return fmt.Errorf("failed to output result: %w", err)
	}

	if extractFail && !report.Result.Found() {
		if err := report.Result.Err(); err != nil {
			return fmt.Errorf("%w: %w", errNoCoordinate, err)
		}

		return errNoCoordinate
	}

	return nil
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().BoolVar(&extractNoExpand, "no-expand", false, "do not expand short links over the network")
	extractCmd.Flags().BoolVar(&extractFail, "fail", false, "exit non-zero when no coordinate is found")
}

// extractionStatus is a short label for logs and debug output.
func extractionStatus(res parsers.Result) string {
	if res.Found() {
		return fmt.Sprintf("%s via %s", res.Coordinate, res.Stage)
	}

	if res.Error != "" {
		return string(res.Status) + ": " + res.Error
	}

	return string(res.Status)
}
