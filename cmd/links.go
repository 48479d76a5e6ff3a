package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/btraven00/geobridge/internal/bridge"
	"github.com/btraven00/geobridge/pkg/geo"
)

var linksCmd = &cobra.Command{
	Use:   "links <lat> <lng> | links \"<lat>, <lng>\"",
	Short: "Print links for a known coordinate",
	Long: `Links skips extraction and prints links for every supported map
application. Decimal degrees and degrees/minutes/seconds are accepted.

Examples:
  geobridge links 12.971599 77.594566
  geobridge links "22.7009146, 88.3412271"
  geobridge links "40°42'46\"N 74°0'21\"W"
  geobridge links -- -33.8688 151.2093`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runLinks,
}

func init() {
	rootCmd.AddCommand(linksCmd)
}

func runLinks(cmd *cobra.Command, args []string) error {
	input := strings.Join(args, " ")

	c, err := parseCoordinateArg(input)
	if err != nil {
		return err
	}

	report := bridge.ForCoordinate(input, c)

	for _, w := range report.Warnings {
		logger.Warn(w, "input", input)
	}

	if err := newPrinter(cmd).PrintReport(report); err != nil {
		return fmt.Errorf("failed to output result: %w", err)
	}

	return nil
}

// parseCoordinateArg accepts an exact "lat, lng" pair first and falls back to
// the loose reader for integers, spaces and DMS notation.
func parseCoordinateArg(input string) (geo.Coordinate, error) {
	trimmed := strings.TrimSpace(input)

	if c, ok := geo.MatchRaw(trimmed); ok {
		return c, nil
	}

	c, err := geo.ParseLoose(trimmed)
	if err != nil {
		return geo.Coordinate{}, fmt.Errorf("cannot read %q as a coordinate: %w", input, err)
	}

	return c, nil
}
