package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// LoadAquarium loads the aquarium configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/aquarium/aquarium.yaml -> ./configs/aquarium.yaml -> embedded default
//
// Files are decoded on top of the defaults, so a partial file only overrides
// the keys it sets. Levels and creatures are replaced wholesale when present.
func LoadAquarium(customPath string) (AquariumConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return AquariumConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := parseAquarium(data)
		if err != nil {
			return AquariumConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("aquarium.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parseAquarium(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/aquarium.yaml"); err == nil {
		if cfg, err := parseAquarium(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	var cfg AquariumConfig
	if err := yaml.Unmarshal(defaultAquariumYAML, &cfg); err != nil {
		return DefaultAquariumConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parseAquarium decodes data over the default configuration.
func parseAquarium(data []byte) (AquariumConfig, error) {
	defaults := DefaultAquariumConfig()
	cfg := defaults
	cfg.Creatures = nil
	cfg.Levels = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return AquariumConfig{}, err
	}
	if cfg.Creatures == nil {
		cfg.Creatures = defaults.Creatures
	}
	if cfg.Levels == nil {
		cfg.Levels = defaults.Levels
	}
	return cfg, nil
}

// userConfigPath returns the path to the user config file under the XDG config home.
func userConfigPath(filename string) string {
	if xdg.ConfigHome == "" {
		return ""
	}
	return filepath.Join(xdg.ConfigHome, "aquarium", filename)
}

// ApplyAquariumPreset modifies the config based on a difficulty preset.
func ApplyAquariumPreset(cfg *AquariumConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
		cfg.Player.DamageDebounce = 4
		scaleTargets(cfg, 0.8)
	case DifficultyHard:
		cfg.Player.Lives = 2
		cfg.Player.DamageDebounce = 2
		scaleTargets(cfg, 1.5)
	}
}

// scaleTargets multiplies every level target score by f, keeping each at least 1.
func scaleTargets(cfg *AquariumConfig, f float64) {
	levels := make([]LevelConfig, len(cfg.Levels))
	copy(levels, cfg.Levels)
	for i := range levels {
		t := int(float64(levels[i].TargetScore) * f)
		if t < 1 {
			t = 1
		}
		levels[i].TargetScore = t
	}
	cfg.Levels = levels
}
