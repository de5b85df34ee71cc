package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"advent/internal/input"
	"advent/internal/lagoon"
	"advent/internal/logging"
)

// day18FillColor is the lava color the lagoon interior is filled with.
const day18FillColor = 0xFF0000

var day18Out string

var day18Cmd = &cobra.Command{
	Use:   "day18 [input]",
	Short: "Lavaduct lagoon trench digging",
	Long: `Digs the lavaduct trench plan, flood fills the lagoon interior, and
writes the result as a PNG image.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDay18,
}

func init() {
	day18Cmd.Flags().StringVar(&day18Out, "out", "out.png", "output image path")
	rootCmd.AddCommand(day18Cmd)
}

func runDay18(cmd *cobra.Command, args []string) error {
	lines, err := input.ReadLines(inputPath(args, 18))
	if err != nil {
		return err
	}

	instructions := lagoon.ParseInstructions(lines)
	logging.Debug("parsed dig plan", "instructions", len(instructions))

	var lag lagoon.Lagoon
	if err := lag.DigTrenches(instructions); err != nil {
		return fmt.Errorf("failed to dig trenches: %w", err)
	}

	grid := lag.MakeGrid()
	grid.FloodFill(lagoon.ColorFromValue(day18FillColor))
	fmt.Fprintf(cmd.OutOrStdout(), "Part 1 result: %d\n", grid.CountFilled())

	f, err := os.Create(day18Out)
	if err != nil {
		return fmt.Errorf("failed to create output image: %w", err)
	}
	defer f.Close()

	if err := grid.WriteImage(f); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %dx%d lagoon image to %s\n",
		lag.Width, lag.Height, day18Out)
	return nil
}
