package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"advent/internal/input"
	"advent/internal/logging"
	"advent/internal/trebuchet"
)

var day1Cmd = &cobra.Command{
	Use:   "day1 [input]",
	Short: "Trebuchet calibration values",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDay1,
}

func init() {
	rootCmd.AddCommand(day1Cmd)
}

func runDay1(cmd *cobra.Command, args []string) error {
	path := inputPath(args, 1)
	lines, err := input.ReadLines(path)
	if err != nil {
		return err
	}
	logging.Debug("loaded calibration document", "path", path, "lines", len(lines))

	sum, err := trebuchet.SumCalibrations(lines)
	if err != nil {
		return fmt.Errorf("failed to sum calibration values: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Part 1 result: %d\n", sum)

	sum, err = trebuchet.SumSpelledCalibrations(lines)
	if err != nil {
		return fmt.Errorf("failed to sum spelled calibration values: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Part 2 result: %d\n", sum)
	return nil
}
