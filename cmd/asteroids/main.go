// asteroids is a terminal asteroids game with a headless simulation runner.
//
// Usage:
//
//	asteroids list              - List available variants
//	asteroids play [variant]    - Play a variant, or pick one from a menu
//	asteroids serve             - Start SSH server for remote play
//	asteroids sim               - Run a headless seeded simulation
//	asteroids config            - Print the effective game config
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Custom game config YAML
//	--difficulty <name>   - Preset: easy, normal, hard, classic
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "asteroids",
	Short: "Asteroids - wrap-around space shooter in your terminal",
	Long: `Asteroids is a terminal take on the arcade classic: steer the ship,
split the rocks, survive the waves.

Available commands:
  list     - Show all variants
  play     - Play a variant directly or pick one from the menu
  serve    - Start SSH server for remote play
  sim      - Run a headless simulation and print a report
  config   - Print the effective game config

Examples:
  asteroids list
  asteroids play
  asteroids play asteroids_classic --difficulty hard
  asteroids serve --ssh :2222
  asteroids sim --seed 42 --ticks 7200`,
	SilenceUsage:      true,
	PersistentPreRunE: applyGameFlags,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, classic")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(simCmd)
	rootCmd.AddCommand(configCmd)
}

// applyGameFlags hands the config flags to the game package before any
// variant is created.
func applyGameFlags(_ *cobra.Command, _ []string) error {
	if flagFPS <= 0 {
		return fmt.Errorf("invalid --fps %d: must be positive", flagFPS)
	}
	if _, err := config.ParsePreset(flagDifficulty); err != nil {
		return err
	}
	if _, err := log.ParseLevel(flagLogLevel); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}

	asteroids.SetConfigPath(flagConfig)
	asteroids.SetDifficultyPreset(flagDifficulty)
	return nil
}

// newLogger creates a stderr logger with the --log-level threshold.
func newLogger(prefix string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	}
	return logger
}
