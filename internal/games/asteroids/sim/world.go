// Package sim is the asteroids simulation core: a fixed-step world of a ship,
// asteroids and bullets with wrap-around space, bounding-box collisions,
// splitting, respawn timers and scoring. It never touches a screen or device;
// callers feed an Intent per tick and read events and snapshots back.
package sim

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// FireIntent is a fire trigger captured on the tick the key went down.
type FireIntent struct {
	Heading core.Vec2
	Origin  core.Vec2
}

// Intent is the input for one tick.
type Intent struct {
	Move    core.Vec2 // X rotates, Y thrusts; normalised when non-zero
	HasMove bool      // False when no directional key is held
	Fire    *FireIntent
	Start   bool
}

// TickResult reports what happened during a tick.
type TickResult struct {
	Tick       uint64
	Events     []Event
	Collisions []Pair
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// WithTickRate sets the number of ticks per simulated second.
func WithTickRate(rate int) Option {
	return func(w *World) {
		if rate > 0 {
			w.tickRate = rate
		}
	}
}

// WithSeed seeds the world's random generator.
func WithSeed(seed int64) Option {
	return func(w *World) {
		w.rng = NewSimpleRNG(seed)
	}
}

// World owns every entity plus the player and session state.
// It is not safe for concurrent use; one goroutine ticks it.
type World struct {
	cfg      config.AsteroidsConfig
	tickRate int
	dt       float64

	rng     *SimpleRNG
	arena   Arena
	session Session
	player  *Player
	vp      Viewport
	tick    uint64

	events   []Event
	triggers []Trigger
	log      *log.Logger
}

// NewWorld creates a world in the Menu state.
func NewWorld(cfg config.AsteroidsConfig, opts ...Option) *World {
	w := &World{
		cfg:      cfg,
		tickRate: 60,
		rng:      NewSimpleRNG(1),
		log:      log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.dt = 1 / float64(w.tickRate)
	return w
}

// Tick advances the world by one fixed step.
// Phases run in order: input, kinematics, wrap, collision, lifecycle,
// state transitions, scoring. Game over is applied last.
func (w *World) Tick(in Intent, vp Viewport) TickResult {
	w.tick++
	w.vp = vp
	w.events = nil
	w.triggers = w.triggers[:0]

	if w.session.Top == StateMenu {
		if in.Start {
			w.fire(TriggerStart)
		}
		return TickResult{Tick: w.tick, Events: w.events}
	}

	move := in.Move
	hasMove := in.HasMove && !move.IsZero()
	if hasMove {
		move = move.Normalize()
	}

	w.integrate(move, hasMove)
	w.wrap()
	pairs := detectCollisions(&w.arena)
	out := w.lifecycle(in.Fire)

	for _, t := range w.triggers {
		w.fire(t)
	}

	if w.score(out) {
		w.fire(TriggerGameOver)
	}

	return TickResult{Tick: w.tick, Events: w.events, Collisions: pairs}
}

func (w *World) emit(e Event) {
	w.events = append(w.events, e)
}

func (w *World) queue(t Trigger) {
	w.triggers = append(w.triggers, t)
}

// Session returns the current state machine state.
func (w *World) Session() Session {
	return w.session
}

// Player returns the player aggregate, or false while in the Menu.
func (w *World) Player() (Player, bool) {
	if w.player == nil {
		return Player{}, false
	}
	return *w.player, true
}

// Ship returns a copy of the live ship, if any.
func (w *World) Ship() (Entity, bool) {
	_, ship := w.arena.First(KindShip)
	if ship == nil {
		return Entity{}, false
	}
	return *ship, true
}

// Aim builds a fire intent from the ship's current pose.
func (w *World) Aim() (FireIntent, bool) {
	ship, ok := w.Ship()
	if !ok {
		return FireIntent{}, false
	}
	return FireIntent{Heading: Facing(ship.Angle), Origin: ship.Pos}, true
}

// TickCount returns the number of ticks run so far.
func (w *World) TickCount() uint64 {
	return w.tick
}

// TickRate returns the ticks per simulated second.
func (w *World) TickRate() int {
	return w.tickRate
}

// Config returns the configuration the world was built with.
func (w *World) Config() config.AsteroidsConfig {
	return w.cfg
}
