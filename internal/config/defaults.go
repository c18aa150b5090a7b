package config

import (
	_ "embed"
)

//go:embed defaults/aquarium.yaml
var defaultAquariumYAML []byte

// DefaultAquariumConfig returns the default aquarium configuration.
// It mirrors defaults/aquarium.yaml and is used when the embedded copy cannot be parsed.
func DefaultAquariumConfig() AquariumConfig {
	return AquariumConfig{
		Tank: TankConfig{
			Width:         1024,
			Height:        768,
			Margin:        20,
			MaxPopulation: 60,
		},
		Collision: CollisionConfig{EveryFrames: 5},
		Player: PlayerConfig{
			Speed:          10,
			Radius:         25,
			Lives:          3,
			Power:          1,
			DamageDebounce: 3,
		},
		Boosts: BoostConfig{
			Size:  SizeBoostConfig{Duration: 15, RadiusScale: 1.5, PowerBonus: 1},
			Speed: SpeedBoostConfig{Duration: 7, Multiplier: 1.5},
		},
		Economy: EconomyConfig{
			PowerUpEvery:    20,
			SpeedFruitEvery: 15,
			PowerEvery:      30,
		},
		Spawn: SpawnConfig{MinSpeed: 1, MaxSpeed: 25},
		Creatures: map[string]CreatureConfig{
			"npc":         {Behavior: "wander", SpeedFactor: 1.0, Radius: 30, Value: 1, Tracked: true},
			"bigger_fish": {Behavior: "wander", SpeedFactor: 0.5, Radius: 60, Value: 5, Tracked: true},
			"gyarados":    {Behavior: "pursue", SpeedFactor: 1.2, Radius: 30, Value: 10, Tracked: true},
			"angler":      {Behavior: "flee", SpeedFactor: 1.6, FleeRadius: 150, Radius: 30, Value: 5, Tracked: true},
			"power_up":    {Behavior: "stationary", Radius: 20},
			"speed_fruit": {Behavior: "stationary", Radius: 20},
		},
		Levels: []LevelConfig{
			{
				Description:  "Level 1: Basic Ecosystem - Peaceful Goldfish",
				TargetScore:  15,
				WaveInterval: 12,
				Waves: [][]SpawnGroup{
					{{Kind: "npc", Count: 4}},
					{{Kind: "npc", Count: 6}},
					{{Kind: "npc", Count: 4}, {Kind: "bigger_fish", Count: 1}},
				},
				Population: []PopulationConfig{
					{Kind: "npc", Target: 14},
					{Kind: "angler", Target: 4},
				},
			},
			{
				Description:  "Level 2: Coral Reef - Gyarados Appear!",
				TargetScore:  30,
				WaveInterval: 10,
				Waves: [][]SpawnGroup{
					{{Kind: "npc", Count: 4}, {Kind: "bigger_fish", Count: 1}},
					{{Kind: "npc", Count: 3}, {Kind: "bigger_fish", Count: 2}},
					{{Kind: "npc", Count: 2}, {Kind: "bigger_fish", Count: 3}, {Kind: "gyarados", Count: 1}},
					{{Kind: "bigger_fish", Count: 2}, {Kind: "gyarados", Count: 2}},
				},
				Population: []PopulationConfig{
					{Kind: "npc", Target: 9},
					{Kind: "bigger_fish", Target: 5},
					{Kind: "angler", Target: 3},
				},
			},
			{
				Description:  "Level 3: Deep Ocean - Dangers and Wonders!",
				TargetScore:  50,
				WaveInterval: 8,
				Waves: [][]SpawnGroup{
					{{Kind: "npc", Count: 3}, {Kind: "bigger_fish", Count: 1}, {Kind: "angler", Count: 1}},
					{{Kind: "npc", Count: 2}, {Kind: "bigger_fish", Count: 2}, {Kind: "gyarados", Count: 1}},
					{{Kind: "npc", Count: 1}, {Kind: "bigger_fish", Count: 2}, {Kind: "angler", Count: 2}},
					{{Kind: "bigger_fish", Count: 2}, {Kind: "gyarados", Count: 2}, {Kind: "angler", Count: 2}},
					{{Kind: "gyarados", Count: 3}, {Kind: "angler", Count: 3}},
				},
				Population: []PopulationConfig{
					{Kind: "npc", Target: 6},
					{Kind: "bigger_fish", Target: 8},
					{Kind: "gyarados", Target: 6},
					{Kind: "angler", Target: 6},
				},
			},
		},
	}
}
