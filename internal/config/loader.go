package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadAsteroids loads Asteroids configuration.
// Search order: customPath -> ~/.arcade/configs/asteroids.yaml -> ./configs/asteroids.yaml -> embedded default
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	// Files are decoded over the defaults so partial files are allowed
	cfg := DefaultAsteroidsConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("asteroids.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", "asteroids.yaml")); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	embedded := DefaultAsteroidsConfig()
	if err := yaml.Unmarshal(defaultAsteroidsYAML, &embedded); err != nil || embedded.Validate() != nil {
		return DefaultAsteroidsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Missing or broken files are skipped.
func tryLoad(path string) (AsteroidsConfig, bool) {
	cfg := DefaultAsteroidsConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if err := cfg.Validate(); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
// Presets only touch lives and the opening wave size.
func ApplyPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Asteroids.WaveMin = 3
		cfg.Asteroids.WaveMax = 6
	case DifficultyNormal:
		cfg.Player.Lives = 3
		cfg.Asteroids.WaveMin = 5
		cfg.Asteroids.WaveMax = 10
	case DifficultyHard:
		cfg.Player.Lives = 3
		cfg.Asteroids.WaveMin = 7
		cfg.Asteroids.WaveMax = 13
	case DifficultyClassic:
		cfg.Player.Lives = 5
		cfg.Asteroids.WaveMin = 7
		cfg.Asteroids.WaveMax = 13
	}
}

// Marshal renders a config as YAML.
func Marshal(cfg AsteroidsConfig) ([]byte, error) {
	out, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return out, nil
}
