package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/btraven00/geobridge/internal/bridge"
)

var (
	batchWorkers  int
	batchNoExpand bool
)

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Extract coordinates from many inputs, one per line",
	Long: `Batch reads one map link or coordinate pair per line from a file, or
from standard input when the file is omitted or "-". Blank lines and lines
starting with # are skipped. Inputs are processed concurrently and reported
in their original order.

Examples:
  geobridge batch links.txt
  geobridge batch --output csv links.txt > coordinates.csv
  cat links.txt | geobridge batch --workers 8 -o json`,
	Args: cobra.MaximumNArgs(1),
	RunE: runBatch,
}

func init() {
	rootCmd.AddCommand(batchCmd)

	batchCmd.Flags().IntVarP(&batchWorkers, "workers", "w", bridge.DefaultWorkers, "number of inputs processed concurrently")
	batchCmd.Flags().BoolVar(&batchNoExpand, "no-expand", false, "do not expand short links over the network")
}

func runBatch(cmd *cobra.Command, args []string) error {
	in := cmd.InOrStdin()
	name := "stdin"

	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return fmt.Errorf("failed to open input: %w", err)
		}
		defer f.Close()

		in, name = f, args[0]
	}

	inputs, err := readInputs(in)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", name, err)
	}

	logger.Info("processing batch", "inputs", len(inputs), "workers", cfg.Workers, "source", name)

	b := bridge.New(newService(!batchNoExpand), logger)

	reports, runErr := b.BridgeAll(commandContext(cmd), inputs, cfg.Workers)

	for _, r := range reports {
		if r == nil {
			continue
		}

		for _, w := range r.Warnings {
			logger.Warn(w, "input", r.Input)
		}
	}

	if err := newPrinter(cmd).PrintReports(reports); err != nil {
		return fmt.Errorf("failed to output results: %w", err)
	}

	return runErr
}

// readInputs returns the non-blank, non-comment lines of r, trimmed.
func readInputs(r io.Reader) ([]string, error) {
	var inputs []string

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		inputs = append(inputs, line)
	}

	return inputs, scanner.Err()
}
