package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available variants",
	Long:  `Shows every registered variant with its lives and opening wave size.`,
	Run:   runList,
}

func runList(cmd *cobra.Command, args []string) {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No variants available.")
		return
	}

	fmt.Println("Available variants:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
		maxTitleLen = max(maxTitleLen, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Rules")
	fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "-----")

	for _, g := range games {
		rules := ""
		if v, ok := variantOf(g.ID); ok {
			cfg := asteroids.LoadConfig(v)
			rules = fmt.Sprintf("%d lives, opening wave %d-%d",
				cfg.Player.Lives, cfg.Asteroids.WaveMin, cfg.Asteroids.WaveMax-1)
		}
		fmt.Printf("  %-*s  %-*s  %s\n", maxIDLen, g.ID, maxTitleLen, g.Title, rules)
	}

	fmt.Println()
	fmt.Println("Run 'asteroids play <id>' to play a variant.")
}

// variantOf maps a registry ID to its rule set.
func variantOf(id string) (asteroids.Variant, bool) {
	switch id {
	case "asteroids":
		return asteroids.VariantStandard, true
	case "asteroids_classic":
		return asteroids.VariantClassic, true
	}
	return 0, false
}
