// Package config provides YAML-based game configuration loading and
// difficulty presets for the asteroids arcade.
package config

import (
	"errors"
	"fmt"
)

// AsteroidsConfig contains all configuration for the Asteroids game.
type AsteroidsConfig struct {
	Ship      ShipConfig      `yaml:"ship"`
	Asteroids AsteroidsSpawn  `yaml:"asteroids"`
	Bullets   BulletConfig    `yaml:"bullets"`
	Scoring   ScoringConfig   `yaml:"scoring"`
	Player    PlayerConfig    `yaml:"player"`
	Viewport  ViewportConfig  `yaml:"viewport"`
	Collision CollisionConfig `yaml:"collision"`
}

// ShipConfig defines ship movement and respawn parameters.
type ShipConfig struct {
	RotationSpeed     float64 `yaml:"rotation_speed"`     // Radians per second at full axis
	DisplacementScale float64 `yaml:"displacement_scale"` // World units per velocity unit per second
	RespawnDelaySecs  float64 `yaml:"respawn_delay_secs"`
}

// AsteroidsSpawn defines wave sizes and asteroid speeds.
type AsteroidsSpawn struct {
	WaveMin          int     `yaml:"wave_min"` // Inclusive
	WaveMax          int     `yaml:"wave_max"` // Exclusive
	InitialMinSpeed  float64 `yaml:"initial_min_speed"`
	InitialMaxSpeed  float64 `yaml:"initial_max_speed"`
	FragmentMinSpeed float64 `yaml:"fragment_min_speed"`
	FragmentMaxSpeed float64 `yaml:"fragment_max_speed"`
	RadiusLarge      float64 `yaml:"radius_large"`
	RadiusMedium     float64 `yaml:"radius_medium"`
	RadiusSmall      float64 `yaml:"radius_small"`
	RespawnDelaySecs float64 `yaml:"respawn_delay_secs"`
}

// BulletConfig defines projectile parameters.
type BulletConfig struct {
	Speed    float64 `yaml:"speed"`     // World units per tick
	MaxRange float64 `yaml:"max_range"` // Despawn distance from origin
}

// ScoringConfig defines points per destroyed asteroid size.
type ScoringConfig struct {
	Large  int `yaml:"large"`
	Medium int `yaml:"medium"`
	Small  int `yaml:"small"`
}

// PlayerConfig defines player parameters.
type PlayerConfig struct {
	Lives int `yaml:"lives"`
}

// ViewportConfig maps terminal cells to world units.
type ViewportConfig struct {
	CellWidth  float64 `yaml:"cell_width"`  // World units per column
	CellHeight float64 `yaml:"cell_height"` // World units per row
}

// CollisionConfig defines the bounding box half extents per entity class.
type CollisionConfig struct {
	ShipHalfExtent     float64 `yaml:"ship_half_extent"`
	AsteroidHalfExtent float64 `yaml:"asteroid_half_extent"`
	BulletHalfExtent   float64 `yaml:"bullet_half_extent"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy    DifficultyPreset = "easy"
	DifficultyNormal  DifficultyPreset = "normal"
	DifficultyHard    DifficultyPreset = "hard"
	DifficultyClassic DifficultyPreset = "classic"
)

// ParsePreset converts a CLI string into a preset.
// The empty string means "no preset".
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyClassic:
		return DifficultyPreset(s), nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or classic)", s)
	}
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid asteroids config")

// Validate checks ranges that would otherwise break the simulation.
func (c AsteroidsConfig) Validate() error {
	switch {
	case c.Player.Lives <= 0:
		return fmt.Errorf("%w: player.lives must be positive", ErrInvalidConfig)
	case c.Asteroids.WaveMin <= 0 || c.Asteroids.WaveMax <= c.Asteroids.WaveMin:
		return fmt.Errorf("%w: asteroids wave range [%d,%d) is empty", ErrInvalidConfig, c.Asteroids.WaveMin, c.Asteroids.WaveMax)
	case c.Asteroids.InitialMaxSpeed < c.Asteroids.InitialMinSpeed:
		return fmt.Errorf("%w: asteroids initial speed range is inverted", ErrInvalidConfig)
	case c.Asteroids.FragmentMaxSpeed < c.Asteroids.FragmentMinSpeed:
		return fmt.Errorf("%w: asteroids fragment speed range is inverted", ErrInvalidConfig)
	case c.Bullets.Speed <= 0 || c.Bullets.MaxRange <= 0:
		return fmt.Errorf("%w: bullets speed and max_range must be positive", ErrInvalidConfig)
	case c.Viewport.CellWidth <= 0 || c.Viewport.CellHeight <= 0:
		return fmt.Errorf("%w: viewport cell size must be positive", ErrInvalidConfig)
	case c.Collision.ShipHalfExtent <= 0 || c.Collision.AsteroidHalfExtent <= 0 || c.Collision.BulletHalfExtent < 0:
		return fmt.Errorf("%w: collision half extents must be positive", ErrInvalidConfig)
	case c.Ship.RespawnDelaySecs < 0 || c.Asteroids.RespawnDelaySecs < 0:
		return fmt.Errorf("%w: respawn delays cannot be negative", ErrInvalidConfig)
	}
	return nil
}
