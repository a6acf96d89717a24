package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the default Asteroids configuration.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		Ship: ShipConfig{
			RotationSpeed:     10.0,
			DisplacementScale: 100.0,
			RespawnDelaySecs:  3.0,
		},
		Asteroids: AsteroidsSpawn{
			WaveMin:          5,
			WaveMax:          10,
			InitialMinSpeed:  0.1,
			InitialMaxSpeed:  1.0,
			FragmentMinSpeed: 0.1,
			FragmentMaxSpeed: 3.0,
			RadiusLarge:      40,
			RadiusMedium:     20,
			RadiusSmall:      10,
			RespawnDelaySecs: 4.0,
		},
		Bullets: BulletConfig{
			Speed:    10,
			MaxRange: 1000,
		},
		Scoring: ScoringConfig{
			Large:  20,
			Medium: 50,
			Small:  100,
		},
		Player: PlayerConfig{
			Lives: 3,
		},
		Viewport: ViewportConfig{
			CellWidth:  10,
			CellHeight: 20,
		},
		Collision: CollisionConfig{
			ShipHalfExtent:     15,
			AsteroidHalfExtent: 20,
			BulletHalfExtent:   0,
		},
	}
}

// ClassicAsteroidsConfig returns the configuration of the classic variant:
// more lives and a larger opening wave.
func ClassicAsteroidsConfig() AsteroidsConfig {
	cfg := DefaultAsteroidsConfig()
	ApplyPreset(&cfg, DifficultyClassic)
	return cfg
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "asteroids", "asteroids_classic":
		return defaultAsteroidsYAML
	default:
		return nil
	}
}
