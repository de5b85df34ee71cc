package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"advent/internal/gears"
	"advent/internal/input"
	"advent/internal/logging"
)

var day3Cmd = &cobra.Command{
	Use:   "day3 [input]",
	Short: "Gear Ratios engine schematic",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDay3,
}

func init() {
	rootCmd.AddCommand(day3Cmd)
}

func runDay3(cmd *cobra.Command, args []string) error {
	lines, err := input.ReadLines(inputPath(args, 3))
	if err != nil {
		return err
	}

	schematic := gears.Parse(lines)
	logging.Debug("parsed schematic",
		"values", len(schematic.Values), "symbols", len(schematic.Symbols))

	fmt.Fprintf(cmd.OutOrStdout(), "Part 1 result: %d\n", schematic.SumPartNumbers())
	fmt.Fprintf(cmd.OutOrStdout(), "Part 2 result: %d\n", schematic.SumGearRatios())
	return nil
}
