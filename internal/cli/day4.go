package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"advent/internal/input"
	"advent/internal/scratchcards"
)

var day4Cmd = &cobra.Command{
	Use:   "day4 [input]",
	Short: "Scratchcard scoring and the copy game",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDay4,
}

func init() {
	rootCmd.AddCommand(day4Cmd)
}

func runDay4(cmd *cobra.Command, args []string) error {
	lines, err := input.ReadLines(inputPath(args, 4))
	if err != nil {
		return err
	}

	cards := scratchcards.ParseCards(lines)
	fmt.Fprintf(cmd.OutOrStdout(), "Part 1 result: %d\n", scratchcards.TotalScore(cards))
	fmt.Fprintf(cmd.OutOrStdout(), "Part 2 result: %d\n", scratchcards.RunCopyGame(cards))
	return nil
}
