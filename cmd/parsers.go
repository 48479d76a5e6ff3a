package cmd

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/btraven00/geobridge/internal/bridge"
	"github.com/btraven00/geobridge/pkg/parsers"
	"github.com/btraven00/geobridge/pkg/providers"
)

var parsersExamples bool

// parsersCmd represents the parsers command
var parsersCmd = &cobra.Command{
	Use:   "parsers",
	Short: "List the supported map providers",
	Long: `The parsers command lists the map providers geobridge understands, in
the order they are tried. The first provider whose markers appear in a link
decodes it; when it finds nothing, only the generic "@lat,lng" search is
tried after it.

Examples:
  geobridge parsers                 # Table of providers
  geobridge parsers --examples      # Include example links
  geobridge parsers --output json   # Output as JSON`,
	Args: cobra.NoArgs,
	RunE: runParsers,
}

func init() {
	rootCmd.AddCommand(parsersCmd)

	parsersCmd.Flags().BoolVarP(&parsersExamples, "examples", "e", false, "show example links for each provider")
}

func runParsers(cmd *cobra.Command, args []string) error {
	infos := parsers.Describe()
	out := cmd.OutOrStdout()

	if cfg.Output == bridge.FormatJSON {
		result := struct {
			Parsers   []parsers.Info `json:"parsers"`
			Providers []string       `json:"link_providers"`
			Count     int            `json:"count"`
		}{
			Parsers: infos,
			Count:   len(infos),
		}

		for _, p := range providers.All() {
			result.Providers = append(result.Providers, p.Name)
		}

		encoder := json.NewEncoder(out)
		encoder.SetIndent("", "  ")

		return encoder.Encode(result)
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ORDER\tPROVIDER\tMARKERS\tSTRATEGIES")
	fmt.Fprintln(w, "-----\t--------\t-------\t----------")

	for _, info := range infos {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			info.Order, info.Name,
			strings.Join(info.Markers, ", "),
			strings.Join(info.Strategies, " > "))
	}

	if err := w.Flush(); err != nil {
		return err
	}

	if parsersExamples {
		fmt.Fprintln(out)

		for _, info := range infos {
			fmt.Fprintf(out, "%s:\n", info.Name)

			for _, ex := range info.Examples {
				fmt.Fprintf(out, "  %s\n", ex)
			}
		}
	}

	fmt.Fprintf(out, "\nFallback: generic @lat,lng search. Raw \"lat, lng\" pairs are matched before any provider.\n")

	return nil
}
