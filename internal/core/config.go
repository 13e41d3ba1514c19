package core

import "time"

// DefaultTick is the simulation step interval. It doubles as the input poll
// timeout of the classic frontend.
const DefaultTick = 30 * time.Millisecond

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW int           // Screen width in characters
	ScreenH int           // Screen height in characters
	Tick    time.Duration // Simulation step interval
	Seed    int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Tick:    DefaultTick,
		Seed:    0, // 0 means use current time in platform layer
	}
}

// TickOrDefault returns the configured tick, falling back to DefaultTick.
func (c RuntimeConfig) TickOrDefault() time.Duration {
	if c.Tick <= 0 {
		return DefaultTick
	}
	return c.Tick
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int    // Current score
	GameOver bool   // Whether the game has ended
	Reason   string // Why the game ended, empty while running
	TooSmall bool   // Display cannot fit the board; no ticks are processed
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Ate   bool // Food was eaten this tick
}
