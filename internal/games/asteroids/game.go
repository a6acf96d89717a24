// Package asteroids adapts the simulation in package sim to the arcade
// platform: it maps input frames to intents, detects fire presses and
// draws snapshots into a terminal screen.
package asteroids

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/games/asteroids/sim"
	"github.com/vovakirdan/tui-asteroids/internal/registry"
)

// Variant selects the rule set of a game.
type Variant int

const (
	VariantStandard Variant = iota // 3 lives, opening wave of 5-9
	VariantClassic                 // 5 lives, opening wave of 7-12
)

// Terminals only report key presses. A held key repeats, so an action
// stays down until this many ticks pass without a repeat.
const holdTicks = 8

// Minimum playable terminal size
const (
	minScreenW = 40
	minScreenH = 15
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives simulation logs; nil keeps them quiet
var logger *log.Logger

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetLogger routes simulation logs of games created afterwards.
func SetLogger(l *log.Logger) {
	logger = l
}

// LoadConfig resolves the configuration for a variant: file or embedded
// defaults first, then the variant rules, then the CLI preset.
func LoadConfig(v Variant) config.AsteroidsConfig {
	cfg, err := config.LoadAsteroids(configPath)
	if err != nil {
		if logger != nil {
			logger.Warn("using default config", "err", err)
		}
		cfg = config.DefaultAsteroidsConfig()
	}
	if v == VariantClassic {
		config.ApplyPreset(&cfg, config.DifficultyClassic)
	}
	if difficultyPreset != "" {
		config.ApplyPreset(&cfg, difficultyPreset)
	}
	return cfg
}

// Game implements registry.Game on top of a sim.World.
type Game struct {
	variant Variant
	runtime core.RuntimeConfig
	cfg     config.AsteroidsConfig
	world   *sim.World
	view    sim.Viewport

	held     map[core.Action]int // Ticks left before a held action is released
	fireDown bool
	paused   bool
	hints    bool

	gameOver   bool // Set by the last game's end until the next start
	finalScore int
	waves      int
	sparks     []spark
	cues       []core.Cue

	screenTooSmall bool
}

// New creates a standard game.
func New() *Game {
	return &Game{variant: VariantStandard}
}

// NewClassic creates a game with the classic rules.
func NewClassic() *Game {
	return &Game{variant: VariantClassic}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	if g.variant == VariantClassic {
		return "asteroids_classic"
	}
	return "asteroids"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	if g.variant == VariantClassic {
		return "Asteroids (Classic)"
	}
	return "Asteroids"
}

// Reset builds a fresh world in the menu state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.cfg = LoadConfig(g.variant)

	opts := []sim.Option{sim.WithSeed(runtime.Seed), sim.WithTickRate(runtime.TickRate)}
	if logger != nil {
		opts = append(opts, sim.WithLogger(logger.With("game", g.ID())))
	}
	g.world = sim.NewWorld(g.cfg, opts...)

	g.held = make(map[core.Action]int)
	g.fireDown = false
	g.paused = false
	g.gameOver = false
	g.finalScore = 0
	g.waves = 0
	g.sparks = g.sparks[:0]
	g.cues = nil

	g.Resize(runtime.ScreenW, runtime.ScreenH)
}

// Resize updates the viewport. The world keeps running; wrapping picks up
// the new bounds on the next tick.
func (g *Game) Resize(width, height int) {
	g.runtime.ScreenW = width
	g.runtime.ScreenH = height
	g.screenTooSmall = width < minScreenW || height < minScreenH
	g.view = sim.ViewportFromCells(width, height, g.cfg.Viewport.CellWidth, g.cfg.Viewport.CellHeight)
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.cues = nil

	if in.Has(core.ActionHints) {
		g.hints = !g.hints
	}
	if in.Has(core.ActionPause) && g.world.Session().Top == sim.StatePlaying {
		g.paused = !g.paused
	}
	if g.paused || g.screenTooSmall {
		return core.StepResult{State: g.State()}
	}

	g.latch(in)
	res := g.world.Tick(g.intent(in), g.view)
	g.absorb(res.Events)
	g.ageSparks()

	return core.StepResult{State: g.State(), Cues: g.cues}
}

// latch refreshes the hold window of every action pressed this frame.
func (g *Game) latch(in core.InputFrame) {
	for a, n := range g.held {
		if n <= 1 {
			delete(g.held, a)
		} else {
			g.held[a] = n - 1
		}
	}
	for _, a := range []core.Action{core.ActionUp, core.ActionDown, core.ActionLeft, core.ActionRight, core.ActionFire} {
		if in.Has(a) {
			g.held[a] = holdTicks
		}
	}
}

func (g *Game) down(a core.Action) bool {
	return g.held[a] > 0
}

// intent converts the held actions into a simulation intent.
// Fire is reported only on the tick the key goes down.
func (g *Game) intent(in core.InputFrame) sim.Intent {
	frame := core.NewInputFrame()
	for a := range g.held {
		frame.Set(a)
	}

	intent := sim.Intent{Start: in.Has(core.ActionConfirm)}

	move := core.V(frame.Axis(core.ActionRight, core.ActionLeft), frame.Axis(core.ActionUp, core.ActionDown))
	if !move.IsZero() {
		intent.Move, intent.HasMove = move, true
	}

	fire := g.down(core.ActionFire)
	if fire && !g.fireDown {
		if aim, ok := g.world.Aim(); ok {
			intent.Fire = &aim
		}
	}
	g.fireDown = fire

	return intent
}

// absorb updates the adapter's view of the session from tick events.
func (g *Game) absorb(events []sim.Event) {
	for _, ev := range events {
		switch e := ev.(type) {
		case sim.GameStarted:
			g.gameOver = false
			g.finalScore = 0
			g.waves = 0
		case sim.GameOver:
			g.gameOver = true
			g.finalScore = e.Score
			g.paused = false
		case sim.WaveCleared:
			g.waves++
		case sim.BulletFired:
			g.cues = append(g.cues, core.CueFire)
		case sim.ThrustApplied:
			g.cues = append(g.cues, core.CueThrust)
		case sim.AsteroidDestroyed:
			g.cues = append(g.cues, bangCue(e.Size))
			g.addSpark(e.Pos, e.Size)
		case sim.ShipDestroyed:
			g.addSpark(e.Pos, sim.SizeLarge)
		}
	}
}

func bangCue(size sim.Size) core.Cue {
	switch size {
	case sim.SizeLarge:
		return core.CueBangLarge
	case sim.SizeMedium:
		return core.CueBangMedium
	default:
		return core.CueBangSmall
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	st := core.GameState{
		Score:    g.finalScore,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
	if p, ok := g.world.Player(); ok {
		st.Score = p.Score
		st.Lives = p.Lives
	}
	return st
}

// Waves returns the number of waves cleared in the current or last game.
func (g *Game) Waves() int {
	return g.waves
}

// Snapshot exposes the world snapshot.
func (g *Game) Snapshot() sim.Snapshot {
	return g.world.Snapshot()
}

// Register the variants with the registry
func init() {
	registry.Register("asteroids", func() registry.Game {
		return New()
	})
	registry.Register("asteroids_classic", func() registry.Game {
		return NewClassic()
	})
}
