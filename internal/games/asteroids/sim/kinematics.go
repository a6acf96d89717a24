package sim

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Facing returns the unit direction a ship with the given angle points to.
// Angle 0 faces +y; positive angles turn counter-clockwise. steerShip
// subtracts the rotation axis, so right input turns the ship clockwise
// on screen rather than following the angle's sign.
func Facing(angle float64) core.Vec2 {
	return core.V(-math.Sin(angle), math.Cos(angle))
}

// steerShip applies the movement intent to the ship and reports whether
// thrust was applied. move.X is the rotation axis, move.Y the thrust axis.
func steerShip(ship *Entity, move core.Vec2, rotationSpeed, dt float64) bool {
	ship.Angle -= move.X * rotationSpeed * dt

	// Reverse thrust is ignored
	if move.Y <= 0 {
		return false
	}
	heading := Facing(ship.Angle)
	ship.Heading = heading
	ship.Vel = ship.Vel.Add(heading.Scale(move.Y * dt))
	return true
}

// integrate moves every mobile entity by one tick.
// Ships are scaled by dt, asteroids and bullets move a fixed step per tick.
func (w *World) integrate(move core.Vec2, hasMove bool) {
	scale := w.cfg.Ship.DisplacementScale
	speed := w.cfg.Bullets.Speed

	w.arena.Each(func(_ Handle, e *Entity) {
		switch e.Kind {
		case KindShip:
			if hasMove && steerShip(e, move, w.cfg.Ship.RotationSpeed, w.dt) {
				w.emit(ThrustApplied{Pos: e.Pos})
			}
			e.Pos = e.Pos.Add(e.Vel.Scale(scale * w.dt))
		case KindAsteroid:
			e.Pos = e.Pos.Add(e.Vel)
		case KindBullet:
			e.Pos = e.Pos.Add(e.Heading.Scale(speed))
		}
	})
}
