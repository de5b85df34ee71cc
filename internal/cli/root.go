package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"advent/internal/config"
	"advent/internal/logging"
	"advent/internal/render"
)

// Version is set at build time via ldflags.
var Version = "dev"

// current holds the loaded configuration for the running command.
var current *config.Config

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "advent",
	Short: "Solutions to the Advent of Code 2023 puzzles",
	Long: `Advent solves the Advent of Code 2023 puzzles, one subcommand per day.

Each day command reads its puzzle input from the configured inputs
directory (or an explicit path argument) and prints the part results.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			logging.SetLevel(logging.LevelDebug)
		}

		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("failed to get current directory: %w", err)
		}
		cfg, err := config.Load(cwd)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		current = cfg

		render.ApplyColorMode(cfg.Color)
		return nil
	},
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("advent version {{.Version}}\n")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

// inputPath resolves a day's input file: an explicit path argument wins,
// otherwise the configured inputs directory supplies dayN.txt.
func inputPath(args []string, day int) string {
	if len(args) > 0 {
		return args[0]
	}
	return current.InputPath(day)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
