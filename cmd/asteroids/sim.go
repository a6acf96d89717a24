package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
	"github.com/vovakirdan/tui-asteroids/internal/storage"
)

var (
	flagSimTicks   int
	flagSimVariant string
	flagSimCols    int
	flagSimRows    int
	flagSimRestart bool
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation",
	Long: `Run the simulation without a terminal UI. An autopilot starts a game,
aims at the nearest asteroid and fires. The run prints a YAML report with the
final state, event counts and a state hash; the same seed and flags always
produce the same report.

Examples:
  asteroids sim --seed 42
  asteroids sim --seed 7 --ticks 36000 --restart
  asteroids sim --variant asteroids_classic --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().IntVar(&flagSimTicks, "ticks", 3600, "Number of ticks to simulate")
	simCmd.Flags().StringVar(&flagSimVariant, "variant", "asteroids", "Variant rules: asteroids or asteroids_classic")
	simCmd.Flags().IntVar(&flagSimCols, "cols", 80, "Viewport width in terminal cells")
	simCmd.Flags().IntVar(&flagSimRows, "rows", 24, "Viewport height in terminal cells")
	simCmd.Flags().BoolVar(&flagSimRestart, "restart", false, "Start a new game after each game over")
}

// simReport is the YAML document printed by the sim command.
type simReport struct {
	Variant  string         `yaml:"variant"`
	Seed     int64          `yaml:"seed"`
	Ticks    uint64         `yaml:"ticks"`
	Elapsed  string         `yaml:"elapsed"`
	State    simState       `yaml:"state"`
	Games    int            `yaml:"games"`
	Waves    int            `yaml:"waves_cleared"`
	Entities map[string]int `yaml:"entities"`
	Events   map[string]int `yaml:"events"`
	Scores   []simScore     `yaml:"scores,omitempty"`
	Average  float64        `yaml:"average_score,omitempty"`
	Hash     string         `yaml:"hash"`
}

// simScore is a finished game of the run.
type simScore struct {
	Score int `yaml:"score"`
	Waves int `yaml:"waves"`
}

type simState struct {
	Session string `yaml:"session"`
	Ship    string `yaml:"ship"`
	Wave    string `yaml:"wave"`
	Score   int    `yaml:"score"`
	Lives   int    `yaml:"lives"`
	Best    int    `yaml:"best_score"`
}

func runSim(cmd *cobra.Command, _ []string) error {
	if flagSimTicks <= 0 {
		return fmt.Errorf("invalid --ticks %d: must be positive", flagSimTicks)
	}
	v, ok := variantOf(flagSimVariant)
	if !ok {
		return fmt.Errorf("unknown variant %q", flagSimVariant)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	logger := newLogger("sim")
	asteroids.SetLogger(logger)
	cfg := asteroids.LoadConfig(v)

	world := sim.NewWorld(cfg,
		sim.WithSeed(seed),
		sim.WithTickRate(flagFPS),
		sim.WithLogger(logger.With("variant", flagSimVariant)),
	)
	view := sim.ViewportFromCells(flagSimCols, flagSimRows, cfg.Viewport.CellWidth, cfg.Viewport.CellHeight)

	pilot := sim.NewAutopilot(seed + 1)
	pilot.Restart = flagSimRestart

	board, err := storage.OpenLeaderboard()
	if err != nil {
		return err
	}
	defer board.Close()

	report := simReport{
		Variant:  flagSimVariant,
		Seed:     seed,
		Entities: make(map[string]int),
		Events:   make(map[string]int),
	}

	waves := 0 // Cleared in the current game
	for range flagSimTicks {
		res := world.Tick(pilot.Next(world), view)
		for _, ev := range res.Events {
			report.Events[ev.Name()]++
			switch e := ev.(type) {
			case sim.GameStarted:
				report.Games++
				waves = 0
			case sim.WaveCleared:
				report.Waves++
				waves++
			case sim.GameOver:
				report.State.Best = max(report.State.Best, e.Score)
				if _, err := board.Record(flagSimVariant, "autopilot", e.Score, waves); err != nil {
					logger.Warn("cannot record score", "err", err)
				}
			}
		}
	}

	if err := fillScores(&report, board); err != nil {
		logger.Warn("cannot read scores", "err", err)
	}

	snap := world.Snapshot()
	report.Ticks = snap.Tick
	report.Elapsed = (time.Duration(snap.Tick) * time.Second / time.Duration(world.TickRate())).String()
	report.State.Session = snap.Session.Top.String()
	report.State.Ship = snap.Session.Ship.String()
	report.State.Wave = snap.Session.Wave.String()
	report.State.Score = snap.Score
	report.State.Lives = snap.Lives
	report.State.Best = max(report.State.Best, snap.Score)
	for _, e := range snap.Entities {
		report.Entities[e.Kind.String()]++
	}
	report.Hash = fmt.Sprintf("%016x", snap.Hash())

	logger.Debug("simulation finished", "ticks", snap.Tick, "hash", report.Hash)

	enc := yaml.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent(2)
	if err := enc.Encode(report); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}

	if report.Games == 0 {
		fmt.Fprintln(os.Stderr, "Warning: no game was started")
	}
	return nil
}

// fillScores copies the finished games of the run into the report, best first.
func fillScores(report *simReport, board *storage.Leaderboard) error {
	top, err := board.Top(report.Variant, 10)
	if err != nil {
		return err
	}
	for _, e := range top {
		report.Scores = append(report.Scores, simScore{Score: e.Score, Waves: e.Waves})
	}

	stats, err := board.Stats(report.Variant)
	if err != nil {
		return err
	}
	report.Average = stats.AvgScore
	return nil
}
