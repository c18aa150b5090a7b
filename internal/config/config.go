// Package config provides YAML-based configuration loading and difficulty
// presets for the aquarium simulation.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// AquariumConfig contains all tunables of the simulation.
// Durations are in seconds and converted to ticks with the runtime tick rate.
type AquariumConfig struct {
	Tank      TankConfig                `yaml:"tank"`
	Collision CollisionConfig           `yaml:"collision"`
	Player    PlayerConfig              `yaml:"player"`
	Boosts    BoostConfig               `yaml:"boosts"`
	Economy   EconomyConfig             `yaml:"economy"`
	Spawn     SpawnConfig               `yaml:"spawn"`
	Creatures map[string]CreatureConfig `yaml:"creatures"`
	Levels    []LevelConfig             `yaml:"levels"`
}

// TankConfig defines the tank geometry.
type TankConfig struct {
	Width         int     `yaml:"width"`
	Height        int     `yaml:"height"`
	Margin        float64 `yaml:"margin"`         // subtracted from width/height to get creature bounds
	MaxPopulation int     `yaml:"max_population"` // advisory; 0 disables the warning
}

// CollisionConfig controls how often collisions are resolved.
type CollisionConfig struct {
	EveryFrames int `yaml:"every_frames"`
}

// PlayerConfig defines the player's starting state.
type PlayerConfig struct {
	Speed          int     `yaml:"speed"`
	Radius         float64 `yaml:"radius"`
	Lives          int     `yaml:"lives"`
	Power          int     `yaml:"power"`
	DamageDebounce float64 `yaml:"damage_debounce"` // seconds of invulnerability after a hit
}

// BoostConfig defines both pickup effects.
type BoostConfig struct {
	Size  SizeBoostConfig  `yaml:"size"`
	Speed SpeedBoostConfig `yaml:"speed"`
}

// SizeBoostConfig defines the PowerUp effect.
type SizeBoostConfig struct {
	Duration    float64 `yaml:"duration"`
	RadiusScale float64 `yaml:"radius_scale"`
	PowerBonus  int     `yaml:"power_bonus"`
}

// SpeedBoostConfig defines the SpeedFruit effect.
type SpeedBoostConfig struct {
	Duration   float64 `yaml:"duration"`
	Multiplier float64 `yaml:"multiplier"`
}

// EconomyConfig defines score milestones. A value of 0 disables the milestone.
type EconomyConfig struct {
	PowerUpEvery    int `yaml:"power_up_every"`
	SpeedFruitEvery int `yaml:"speed_fruit_every"`
	PowerEvery      int `yaml:"power_every"`
}

// SpawnConfig defines the random speed range of spawned creatures.
type SpawnConfig struct {
	MinSpeed int `yaml:"min_speed"`
	MaxSpeed int `yaml:"max_speed"`
}

// CreatureConfig defines the traits of one creature kind.
type CreatureConfig struct {
	Behavior    string  `yaml:"behavior"` // wander, pursue, flee, stationary
	SpeedFactor float64 `yaml:"speed_factor"`
	FleeRadius  float64 `yaml:"flee_radius"`
	Radius      float64 `yaml:"radius"`
	Value       int     `yaml:"value"`
	Tracked     bool    `yaml:"tracked"` // counts against level population
}

// LevelConfig defines one level of the campaign.
type LevelConfig struct {
	Description  string             `yaml:"description"`
	TargetScore  int                `yaml:"target_score"`
	WaveInterval float64            `yaml:"wave_interval"`
	Waves        [][]SpawnGroup     `yaml:"waves"`
	Population   []PopulationConfig `yaml:"population"`
}

// SpawnGroup is a number of creatures of one kind.
type SpawnGroup struct {
	Kind  string `yaml:"kind"`
	Count int    `yaml:"count"`
}

// PopulationConfig is the steady-state capacity for one kind.
type PopulationConfig struct {
	Kind   string `yaml:"kind"`
	Target int    `yaml:"target"`
}

// Validate checks structural constraints that would otherwise make the
// simulation misbehave. Creature names are resolved by the simulation.
func (c AquariumConfig) Validate() error {
	if float64(c.Tank.Width) <= c.Tank.Margin || float64(c.Tank.Height) <= c.Tank.Margin {
		return fmt.Errorf("config: tank %dx%d too small for margin %.0f", c.Tank.Width, c.Tank.Height, c.Tank.Margin)
	}
	if c.Collision.EveryFrames < 1 {
		return fmt.Errorf("config: collision.every_frames must be >= 1, got %d", c.Collision.EveryFrames)
	}
	if c.Player.Lives < 1 {
		return fmt.Errorf("config: player.lives must be >= 1, got %d", c.Player.Lives)
	}
	if c.Player.Power < 1 {
		return fmt.Errorf("config: player.power must be >= 1, got %d", c.Player.Power)
	}
	if c.Spawn.MinSpeed < 1 || c.Spawn.MaxSpeed < c.Spawn.MinSpeed {
		return fmt.Errorf("config: invalid spawn speed range [%d, %d]", c.Spawn.MinSpeed, c.Spawn.MaxSpeed)
	}
	if len(c.Levels) == 0 {
		return fmt.Errorf("config: at least one level is required")
	}
	for i, lvl := range c.Levels {
		if lvl.WaveInterval <= 0 {
			return fmt.Errorf("config: level %d: wave_interval must be positive", i)
		}
		for w, wave := range lvl.Waves {
			for _, g := range wave {
				if g.Count < 0 {
					return fmt.Errorf("config: level %d wave %d: negative count for %q", i, w, g.Kind)
				}
			}
		}
		for _, p := range lvl.Population {
			if p.Target < 0 {
				return fmt.Errorf("config: level %d: negative population target for %q", i, p.Kind)
			}
		}
	}
	return nil
}

// WriteYAML saves the configuration to path.
func (c AquariumConfig) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("config: marshal: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("config: write %s: %w", path, err)
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value to a preset. The empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch s {
	case "", "normal":
		return DifficultyNormal, nil
	case "easy":
		return DifficultyEasy, nil
	case "hard":
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}
