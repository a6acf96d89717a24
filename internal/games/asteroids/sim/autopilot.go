package sim

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Autopilot produces scripted intents for headless runs. It starts a game
// from the menu, turns toward the nearest asteroid, fires when lined up and
// thrusts now and then. Its choices depend only on the world and its seed.
type Autopilot struct {
	rng       *SimpleRNG
	FireEvery int     // Minimum ticks between shots
	AimSlack  float64 // Radians off target that still count as aimed
	Restart   bool    // Start a new game after game over
	started   bool
	cooldown  int
}

// NewAutopilot creates an autopilot with its own random stream.
func NewAutopilot(seed int64) *Autopilot {
	return &Autopilot{
		rng:       NewSimpleRNG(seed),
		FireEvery: 10,
		AimSlack:  0.15,
	}
}

// Next returns the intent for the coming tick.
func (a *Autopilot) Next(w *World) Intent {
	if w.session.Top == StateMenu {
		if a.started && !a.Restart {
			return Intent{}
		}
		a.started = true
		return Intent{Start: true}
	}

	if a.cooldown > 0 {
		a.cooldown--
	}

	_, ship := w.arena.First(KindShip)
	if ship == nil {
		return Intent{}
	}

	target, dist, ok := nearestAsteroid(&w.arena, ship.Pos)
	if !ok {
		return Intent{}
	}

	var in Intent
	diff := angleDiff(aimAngle(target.Sub(ship.Pos)), ship.Angle)
	if math.Abs(diff) > a.AimSlack {
		// angle -= move.x, so a positive difference needs a left turn
		in.Move.X = -math.Copysign(1, diff)
	} else if a.cooldown == 0 {
		in.Fire = &FireIntent{Heading: Facing(ship.Angle), Origin: ship.Pos}
		a.cooldown = a.FireEvery
	}
	if dist > 300 && a.rng.Float64() < 0.1 {
		in.Move.Y = 1
	}
	in.HasMove = !in.Move.IsZero()
	return in
}

func nearestAsteroid(arena *Arena, from core.Vec2) (core.Vec2, float64, bool) {
	best, bestDist, found := core.Vec2{}, math.Inf(1), false
	arena.Each(func(_ Handle, e *Entity) {
		if e.Kind != KindAsteroid {
			return
		}
		if d := e.Pos.Dist(from); d < bestDist {
			best, bestDist, found = e.Pos, d, true
		}
	})
	return best, bestDist, found
}

// aimAngle is the ship angle whose facing points along d.
func aimAngle(d core.Vec2) float64 {
	return math.Atan2(-d.X, d.Y)
}

// angleDiff returns target-current wrapped into [-pi, pi).
func angleDiff(target, current float64) float64 {
	d := math.Mod(target-current+math.Pi, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d - math.Pi
}
