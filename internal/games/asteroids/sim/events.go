package sim

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Event is something that happened during a tick.
// Collaborators drain them from TickResult; they never feed back into the world.
type Event interface {
	Name() string
	simEvent()
}

// GameStarted is emitted when Menu -> Playing.
type GameStarted struct {
	Lives int
}

// GameOver is emitted when the last life is lost, before the world resets to Menu.
type GameOver struct {
	Score int
}

// ShipSpawned is emitted whenever a ship enters the world.
type ShipSpawned struct {
	Pos core.Vec2
}

// ShipDestroyed is emitted when the ship is hit.
type ShipDestroyed struct {
	Pos core.Vec2
}

// ThrustApplied is emitted on every tick the ship accelerates.
type ThrustApplied struct {
	Pos core.Vec2
}

// BulletFired is emitted when a fire intent spawns a bullet.
type BulletFired struct {
	Origin  core.Vec2
	Heading core.Vec2
}

// BulletExpired is emitted when a bullet leaves its range.
type BulletExpired struct {
	Pos core.Vec2
}

// AsteroidDestroyed is emitted for every asteroid removed by a hit.
// Size selects the bang cue.
type AsteroidDestroyed struct {
	Size Size
	Pos  core.Vec2
}

// WaveSpawned is emitted when a fresh wave of large asteroids appears.
type WaveSpawned struct {
	Count int
}

// WaveCleared is emitted when the last asteroid of a wave is gone.
type WaveCleared struct{}

// ScoreChanged carries the new score and the increment.
type ScoreChanged struct {
	Score int
	Delta int
}

// LivesChanged carries the remaining lives.
type LivesChanged struct {
	Lives int
}

func (GameStarted) Name() string { return "game_started" }
func (GameOver) Name() string { return "game_over" }
func (ShipSpawned) Name() string { return "ship_spawned" }
func (ShipDestroyed) Name() string { return "ship_destroyed" }
func (ThrustApplied) Name() string { return "thrust" }
func (BulletFired) Name() string { return "bullet_fired" }
func (BulletExpired) Name() string { return "bullet_expired" }
func (AsteroidDestroyed) Name() string { return "asteroid_destroyed" }
func (WaveSpawned) Name() string { return "wave_spawned" }
func (WaveCleared) Name() string { return "wave_cleared" }
func (ScoreChanged) Name() string { return "score_changed" }
func (LivesChanged) Name() string { return "lives_changed" }

func (GameStarted) simEvent() {}
func (GameOver) simEvent() {}
func (ShipSpawned) simEvent() {}
func (ShipDestroyed) simEvent() {}
func (ThrustApplied) simEvent() {}
func (BulletFired) simEvent() {}
func (BulletExpired) simEvent() {}
func (AsteroidDestroyed) simEvent() {}
func (WaveSpawned) simEvent() {}
func (WaveCleared) simEvent() {}
func (ScoreChanged) simEvent() {}
func (LivesChanged) simEvent() {}
