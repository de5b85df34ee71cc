package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"advent/internal/galaxies"
	"advent/internal/input"
	"advent/internal/logging"
)

// day11Expansion is the part-two expansion factor for empty space.
const day11Expansion = 1_000_000

var day11Cmd = &cobra.Command{
	Use:   "day11 [input]",
	Short: "Cosmic expansion galaxy distances",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDay11,
}

func init() {
	rootCmd.AddCommand(day11Cmd)
}

func runDay11(cmd *cobra.Command, args []string) error {
	lines, err := input.ReadLines(inputPath(args, 11))
	if err != nil {
		return err
	}

	doubled, err := galaxies.Parse(lines)
	if err != nil {
		return fmt.Errorf("failed to parse star map: %w", err)
	}
	logging.Debug("parsed star map",
		"galaxies", len(doubled.Galaxies),
		"width", doubled.Width, "height", doubled.Height)

	stretched, err := galaxies.Parse(lines)
	if err != nil {
		return fmt.Errorf("failed to parse star map: %w", err)
	}

	doubled.Expand(1)
	fmt.Fprintf(cmd.OutOrStdout(), "Part 1 result: %d\n", doubled.SumDistances())

	stretched.Expand(day11Expansion)
	fmt.Fprintf(cmd.OutOrStdout(), "Part 2 result: %d\n", stretched.SumDistances())
	return nil
}
