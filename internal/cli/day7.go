package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"advent/internal/camelcards"
	"advent/internal/input"
	"advent/internal/logging"
)

var day7Cmd = &cobra.Command{
	Use:   "day7 [input]",
	Short: "Camel Cards hand rankings",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDay7,
}

func init() {
	rootCmd.AddCommand(day7Cmd)
}

func runDay7(cmd *cobra.Command, args []string) error {
	lines, err := input.ReadLines(inputPath(args, 7))
	if err != nil {
		return err
	}

	hands := camelcards.ParseHands(lines, false)
	logging.Debug("parsed hands", "hands", len(hands))
	fmt.Fprintf(cmd.OutOrStdout(), "Part 1 result: %d\n", camelcards.Winnings(hands))

	jokerHands := camelcards.ParseHands(lines, true)
	fmt.Fprintf(cmd.OutOrStdout(), "Part 2 result: %d\n", camelcards.Winnings(jokerHands))
	return nil
}
