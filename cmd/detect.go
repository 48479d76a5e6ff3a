package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/btraven00/geobridge/internal/bridge"
	"github.com/btraven00/geobridge/pkg/parsers"
)

var detectCmd = &cobra.Command{
	Use:   "detect <text>",
	Short: "Show which map provider a link belongs to",
	Long: `Detect labels the input without decoding it: a provider name, "Raw
Coordinates", "Unknown Source" for any other URL, or nothing.

Examples:
  geobridge detect https://waze.com/ul?ll=40.758896,-73.985130
  geobridge detect "22.7009146, 88.3412271"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runDetect,
}

func init() {
	rootCmd.AddCommand(detectCmd)
}

func runDetect(cmd *cobra.Command, args []string) error {
	input := strings.Join(args, " ")
	label := parsers.DetectSource(input)
	out := cmd.OutOrStdout()

	if cfg.Output == bridge.FormatJSON {
		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")

		return encoder.Encode(struct {
			Input  string `json:"input"`
			Source string `json:"source"`
		}{input, label})
	}

	if label == "" {
		fmt.Fprintln(out, "No source detected")
		return nil
	}

	fmt.Fprintln(out, label)

	return nil
}
