package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"advent/internal/input"
	"advent/internal/races"
	"advent/internal/render"
)

var day6Cmd = &cobra.Command{
	Use:   "day6 [input]",
	Short: "Boat race winning strategies",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDay6,
}

func init() {
	rootCmd.AddCommand(day6Cmd)
}

func runDay6(cmd *cobra.Command, args []string) error {
	text, err := input.ReadFile(inputPath(args, 6))
	if err != nil {
		return err
	}

	multi, err := races.ParseMultiRace(text)
	if err != nil {
		return fmt.Errorf("failed to parse race table: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Part 1 result: %d\n", multi.ProductOfWins())

	single, err := races.ParseSingleRace(text)
	if err != nil {
		return fmt.Errorf("failed to parse kerned race: %w", err)
	}

	meter := render.NewMeter(os.Stderr, uint64(single.Time))
	count := single.WinningCount(meter.Add)
	meter.Finish()

	fmt.Fprintf(cmd.OutOrStdout(), "Part 2 result: %d\n", count)
	return nil
}
