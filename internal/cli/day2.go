package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"advent/internal/cubes"
	"advent/internal/input"
	"advent/internal/logging"
)

// Bag contents given by the puzzle statement.
const (
	day2MaxRed   = 12
	day2MaxGreen = 13
	day2MaxBlue  = 14
)

var day2Cmd = &cobra.Command{
	Use:   "day2 [input]",
	Short: "Cube Conundrum game scoring",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDay2,
}

func init() {
	rootCmd.AddCommand(day2Cmd)
}

func runDay2(cmd *cobra.Command, args []string) error {
	lines, err := input.ReadLines(inputPath(args, 2))
	if err != nil {
		return err
	}

	games := cubes.ParseGames(lines)
	logging.Debug("parsed cube games", "games", len(games))

	fmt.Fprintf(cmd.OutOrStdout(), "Part 1 result: %d\n",
		cubes.SumPossibleIDs(games, day2MaxRed, day2MaxGreen, day2MaxBlue))
	fmt.Fprintf(cmd.OutOrStdout(), "Part 2 result: %d\n", cubes.SumPowers(games))
	return nil
}
