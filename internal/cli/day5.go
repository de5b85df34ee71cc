package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"advent/internal/almanac"
	"advent/internal/input"
	"advent/internal/logging"
	"advent/internal/render"
)

var day5Cmd = &cobra.Command{
	Use:   "day5 [input]",
	Short: "Almanac seed to location mapping",
	Long: `Maps every seed through the almanac chain for part one, then
brute-forces the seed ranges for part two. The range search is heavy on
real inputs, so it reports progress on stderr.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runDay5,
}

func init() {
	rootCmd.AddCommand(day5Cmd)
}

func runDay5(cmd *cobra.Command, args []string) error {
	text, err := input.ReadFile(inputPath(args, 5))
	if err != nil {
		return err
	}

	alm, err := almanac.Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse almanac: %w", err)
	}
	logging.Debug("parsed almanac", "seeds", len(alm.Seeds))

	lowest, err := alm.LowestLocation()
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Part 1 result: %d\n", lowest)

	ranges, err := alm.SeedRanges()
	if err != nil {
		return err
	}
	total := almanac.TotalRangeSize(ranges)
	logging.Debug("searching seed ranges", "ranges", len(ranges), "seeds", total)

	started := time.Now()
	meter := render.NewMeter(os.Stderr, total)
	lowest, err = alm.LowestRangeLocation(cmd.Context(), meter.Add)
	if err != nil {
		return err
	}
	meter.Finish()
	logging.Debug("range search finished", "elapsed", time.Since(started))

	fmt.Fprintf(cmd.OutOrStdout(), "Part 2 result: %d\n", lowest)
	return nil
}
