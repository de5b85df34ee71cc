package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"advent/internal/input"
	"advent/internal/logging"
	"advent/internal/pipes"
	"advent/internal/render"
)

var day10Cmd = &cobra.Command{
	Use:   "day10 [input]",
	Short: "Pipe maze loop walk",
	Long: `Finds the pipe loop through the animal's start tile and reports how
far the loop's farthest tile is from the start. The maze is drawn with
the loop highlighted before the result.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDay10,
}

func init() {
	rootCmd.AddCommand(day10Cmd)
}

func runDay10(cmd *cobra.Command, args []string) error {
	lines, err := input.ReadLines(inputPath(args, 10))
	if err != nil {
		return err
	}

	grid := pipes.Parse(lines)
	start, err := pipes.ResolveStart(grid)
	if err != nil {
		return fmt.Errorf("failed to resolve start tile: %w", err)
	}
	logging.Debug("resolved start tile",
		"x", start.X, "y", start.Y, "shape", start.Shape)

	distance := pipes.Traverse(grid, start)

	fmt.Fprint(cmd.OutOrStdout(), render.PipeGrid(grid, render.DefaultStyles()))
	fmt.Fprintf(cmd.OutOrStdout(), "Part 1 result: %d\n", distance)
	return nil
}
