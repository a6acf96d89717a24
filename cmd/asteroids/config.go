package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
)

var (
	flagConfigVariant  string
	flagConfigDefaults bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective game config",
	Long: `Print the config a variant would run with as YAML: the loaded file or
embedded defaults with variant rules and --difficulty applied.

Save the output to ~/.arcade/configs/asteroids.yaml to customise the game.

Examples:
  asteroids config
  asteroids config --variant asteroids_classic
  asteroids config --difficulty easy
  asteroids config --defaults > ~/.arcade/configs/asteroids.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagConfigVariant, "variant", "asteroids", "Variant rules: asteroids or asteroids_classic")
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the embedded default file unchanged")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	v, ok := variantOf(flagConfigVariant)
	if !ok {
		return fmt.Errorf("unknown variant %q", flagConfigVariant)
	}

	if flagConfigDefaults {
		_, err := cmd.OutOrStdout().Write(config.GetDefaultYAML(flagConfigVariant))
		return err
	}

	out, err := config.Marshal(asteroids.LoadConfig(v))
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}
