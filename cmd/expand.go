package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var expandCmd = &cobra.Command{
	Use:   "expand <short-url>",
	Short: "Resolve a short map link without extracting",
	Long: `Expand follows the redirects of a short link and, when the final URL
carries no coordinate, reads the page's og:image preview for a static-map
center. The result is printed as-is.

Examples:
  geobridge expand https://maps.app.goo.gl/YLmUSY8R8X5rN6ee8
  geobridge expand --output json goo.gl/maps/abc123`,
	Args: cobra.ExactArgs(1),
	RunE: runExpand,
}

func init() {
	rootCmd.AddCommand(expandCmd)
}

func runExpand(cmd *cobra.Command, args []string) error {
	result := newResolver().Expand(commandContext(cmd), args[0])

	if err := newPrinter(cmd).PrintExpansion(result); err != nil {
		return fmt.Errorf("failed to output result: %w", err)
	}

	return nil
}
