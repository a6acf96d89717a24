package sim

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// EntityView is the read-only view of one live entity.
type EntityView struct {
	Kind   Kind
	Pos    core.Vec2
	Vel    core.Vec2 // Travel per tick for asteroids, per second for the ship
	Angle  float64
	Size   Size
	Radius float64
}

// Snapshot is everything a presentation layer may read after a tick.
// Timers are not included; they are not visible.
type Snapshot struct {
	Tick     uint64
	Session  Session
	Score    int
	Lives    int
	Playing  bool
	Entities []EntityView
	RNGState uint64
}

// Snapshot returns the current world state.
func (w *World) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:     w.tick,
		Session:  w.session,
		RNGState: w.rng.State(),
		Entities: make([]EntityView, 0, w.arena.Len()),
	}
	if w.player != nil {
		snap.Score = w.player.Score
		snap.Lives = w.player.Lives
		snap.Playing = true
	}

	w.arena.Each(func(_ Handle, e *Entity) {
		if e.Kind == KindTimer {
			return
		}
		v := EntityView{Kind: e.Kind, Pos: e.Pos, Angle: e.Angle, Size: e.Size, Radius: e.Radius}
		switch e.Kind {
		case KindShip:
			v.Vel = e.Vel.Scale(w.cfg.Ship.DisplacementScale)
		case KindAsteroid:
			v.Vel = e.Vel
		case KindBullet:
			v.Vel = e.Heading.Scale(w.cfg.Bullets.Speed)
		}
		snap.Entities = append(snap.Entities, v)
	})
	return snap
}

// Count returns the number of visible entities of the given kind.
func (snap *Snapshot) Count(kind Kind) int {
	n := 0
	for _, e := range snap.Entities {
		if e.Kind == kind {
			n++
		}
	}
	return n
}

// Ship returns the ship view, if a ship is alive.
func (snap *Snapshot) Ship() (EntityView, bool) {
	for _, e := range snap.Entities {
		if e.Kind == KindShip {
			return e, true
		}
	}
	return EntityView{}, false
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Session.Top)
	h = h*31 + uint64(snap.Session.Ship)
	h = h*31 + uint64(snap.Session.Wave)
	h = h*31 + uint64(snap.Score) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.Lives) //#nosec G115 -- hash computation
	h = h*31 + uint64(len(snap.Entities))

	for _, e := range snap.Entities {
		h = h*31 + uint64(e.Kind)
		h = h*31 + uint64(e.Size)
		h = h*31 + math.Float64bits(e.Pos.X)
		h = h*31 + math.Float64bits(e.Pos.Y)
		h = h*31 + math.Float64bits(e.Vel.X)
		h = h*31 + math.Float64bits(e.Vel.Y)
		h = h*31 + math.Float64bits(e.Angle)
	}

	h = h*31 + snap.RNGState

	return h
}
