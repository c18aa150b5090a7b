package core

import "math"

// RuntimeConfig contains configuration passed to the simulation at initialization.
// Games use this to size the tank and for deterministic simulation.
type RuntimeConfig struct {
	TankW    int   // Tank width in world units
	TankH    int   // Tank height in world units
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TankW:    1024,
		TankH:    768,
		TickRate: 60,
		Seed:     0, // 0 means use current time in the CLI layer
	}
}

// Frames converts a duration in seconds to a whole number of ticks.
func (c RuntimeConfig) Frames(seconds float64) int {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return int(math.Round(seconds * float64(rate)))
}

// Seconds converts a tick count to seconds.
func (c RuntimeConfig) Seconds(frames int) float64 {
	rate := c.TickRate
	if rate <= 0 {
		rate = 60
	}
	return float64(frames) / float64(rate)
}

// GameState represents the current state of a game.
type GameState struct {
	Score    int  // Current score
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State  GameState
	Events []string // Notable things that happened this tick ("level_up", "life_lost", ...)
}
