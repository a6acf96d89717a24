package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/platform/tui"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagServeBell   bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the asteroids SSH server",
	Long: `Start an SSH server that allows users to connect and play.

Each SSH connection gets its own session with a variant picker and its own
world. All users share one in-memory leaderboard that lives as long as the
server process.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  asteroids serve                           # Listen on :23234 with auto-generated key
  asteroids serve --ssh :2222               # Listen on port 2222
  asteroids serve --host-key ./my_host_key  # Use specific host key
  asteroids serve --log-level debug         # Include simulation logs

Users can connect with:
  ssh localhost -p 23234`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().BoolVar(&flagServeBell, "bell", false, "Ring client terminals on explosions")
}

func runServe(_ *cobra.Command, _ []string) {
	logger := newLogger("asteroids-ssh")
	asteroids.SetLogger(logger.WithPrefix("sim"))

	board, err := storage.OpenLeaderboard()
	if err != nil {
		logger.Fatal("cannot open leaderboard", "err", err)
	}

	cfg := tui.SSHServerConfig{
		Address:     flagSSHAddr,
		HostKeyPath: flagHostKey,
		IdleTimeout: time.Duration(flagIdleTimeout) * time.Minute,
		TickRate:    flagFPS,
		Bell:        flagServeBell,
	}

	server, err := tui.NewSSHServer(cfg, board, logger)
	if err != nil {
		board.Close()
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting asteroids SSH server on %s\n", cfg.Address)
	if _, port, splitErr := net.SplitHostPort(cfg.Address); splitErr == nil {
		fmt.Printf("Connect with: ssh localhost -p %s\n", port)
	}
	fmt.Println("Press Ctrl+C to stop")

	err = server.ListenAndServe()
	board.Close()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
