package core

import (
	"math"
	"time"
)

// RuntimeConfig is handed to a game when it is reset.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickInterval is the wall-clock duration of one tick.
func (c RuntimeConfig) TickInterval() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// TicksFor converts a real-time cadence in milliseconds into a whole number
// of ticks at the given rate. The result is never below 1.
func TicksFor(ms int, tickRate int) int {
	if tickRate <= 0 {
		tickRate = 60
	}
	n := int(math.Round(float64(ms) * float64(tickRate) / 1000))
	return max(n, 1)
}

// GameState is the summary a game reports to the platform.
type GameState struct {
	Score    int
	Lives    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each simulation tick.
type StepResult struct {
	State GameState
}
