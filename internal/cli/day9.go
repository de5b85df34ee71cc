package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"advent/internal/input"
	"advent/internal/oasis"
)

var day9Cmd = &cobra.Command{
	Use:   "day9 [input]",
	Short: "OASIS sensor history extrapolation",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDay9,
}

func init() {
	rootCmd.AddCommand(day9Cmd)
}

func runDay9(cmd *cobra.Command, args []string) error {
	lines, err := input.ReadLines(inputPath(args, 9))
	if err != nil {
		return err
	}

	report, err := oasis.Parse(lines)
	if err != nil {
		return fmt.Errorf("failed to parse report: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Part 1 result: %d\n", report.SumNext())
	fmt.Fprintf(cmd.OutOrStdout(), "Part 2 result: %d\n", report.SumPrev())
	return nil
}
