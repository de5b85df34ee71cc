package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"advent/internal/input"
	"advent/internal/lenses"
	"advent/internal/logging"
)

var day15Cmd = &cobra.Command{
	Use:   "day15 [input]",
	Short: "Lens library initialization sequence",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDay15,
}

func init() {
	rootCmd.AddCommand(day15Cmd)
}

func runDay15(cmd *cobra.Command, args []string) error {
	text, err := input.ReadFile(inputPath(args, 15))
	if err != nil {
		return err
	}

	sequence := lenses.Parse(strings.TrimSpace(text))
	logging.Debug("parsed initialization sequence", "steps", len(sequence.Steps))

	fmt.Fprintf(cmd.OutOrStdout(), "Part 1 result: %d\n", sequence.SumOfHashes())

	boxes, err := sequence.BoxLenses()
	if err != nil {
		return fmt.Errorf("failed to run lens sequence: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Part 2 result: %d\n", lenses.FocusingPower(boxes))
	return nil
}
