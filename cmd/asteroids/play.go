package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	flagPlayer string
	flagBell   bool
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play a variant",
	Long: `Start playing. Without a variant a menu lets you pick one and browse
the high scores of this session.

Controls:
  Left/Right, A/D   - Rotate
  Up/W              - Thrust
  Space             - Fire
  Enter             - Start
  P                 - Pause
  V                 - Toggle direction hints
  R                 - Restart (after game over)
  Esc/B             - Back (when not playing)
  Q/Ctrl+C          - Quit

Difficulty options:
  easy    - 5 lives, opening wave of 3-5
  normal  - 3 lives, opening wave of 5-9
  hard    - 3 lives, opening wave of 7-12
  classic - 5 lives, opening wave of 7-12

Examples:
  asteroids play
  asteroids play asteroids
  asteroids play asteroids_classic --bell
  asteroids play asteroids --difficulty easy --config ./my-asteroids.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagPlayer, "player", os.Getenv("USER"), "Name recorded on the leaderboard")
	playCmd.Flags().BoolVar(&flagBell, "bell", false, "Ring the terminal bell on explosions")
}

func runPlay(cmd *cobra.Command, args []string) {
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	cfg := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	opts := tui.PlayOptions{Player: flagPlayer}
	if flagBell {
		opts.Bell = os.Stderr
	}

	board, err := storage.OpenLeaderboard()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open leaderboard: %v\n", err)
		// Continue without a leaderboard - game still works
		board = nil
	}

	var runErr error
	if len(args) == 0 {
		runErr = tui.RunSession(board, cfg, opts)
	} else {
		runErr = playVariant(args[0], board, cfg, opts)
	}

	if board != nil {
		board.Close()
	}

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}

func playVariant(id string, board *storage.Leaderboard, cfg core.RuntimeConfig, opts tui.PlayOptions) error {
	if !registry.Exists(id) {
		return fmt.Errorf("unknown variant %q, run 'asteroids list' to see available variants", id)
	}

	game, err := registry.Create(id)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}
	return tui.Run(game, board, cfg, opts)
}
