package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"advent/internal/input"
	"advent/internal/logging"
	"advent/internal/wasteland"
)

var day8Cmd = &cobra.Command{
	Use:   "day8 [input]",
	Short: "Haunted wasteland network walk",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runDay8,
}

func init() {
	rootCmd.AddCommand(day8Cmd)
}

func runDay8(cmd *cobra.Command, args []string) error {
	lines, err := input.ReadLines(inputPath(args, 8))
	if err != nil {
		return err
	}

	network, err := wasteland.Parse(lines)
	if err != nil {
		return fmt.Errorf("failed to parse network: %w", err)
	}
	logging.Debug("parsed network",
		"nodes", len(network.Nodes),
		"directions", len(network.Directions),
		"ghosts", len(network.StartKeys))

	steps, err := network.CountSteps("AAA", "ZZZ")
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Part 1 result: %d\n", steps)

	steps, err = network.GhostSteps(cmd.Context(), "Z")
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Part 2 result: %d\n", steps)
	return nil
}
