package core

import "math/rand"

// RuntimeConfig contains configuration passed to the simulation at initialization.
type RuntimeConfig struct {
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic simulation
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		TickRate: 60,
		Seed:     0, // 0 means use current time at the CLI boundary
	}
}

// DeltaTime returns the fixed simulated time covered by one tick.
func (c RuntimeConfig) DeltaTime() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// Rand is the source of randomness used by spawn routines.
// *rand.Rand satisfies it; tests can inject a scripted source.
type Rand interface {
	Float64() float64
	Intn(n int) int
}

var _ Rand = (*rand.Rand)(nil)

// GameState represents the current state of a run.
// Returned by Game.State() to communicate status to the host.
type GameState struct {
	Score    int  // Current score (length - start length)
	Length   int  // Current number of body segments
	GameOver bool // Whether the run has ended
	Paused   bool // Whether the run is paused
}

// Events reports what happened during a single tick.
type Events struct {
	Ate       bool    // At least one food entity was consumed (eat sound cue)
	Warning   bool    // Bad food was consumed (full-screen warning overlay)
	BoostCost int     // Segments lost to boost debt this tick
	Distance  float64 // Distance from head to the nearest food entity
	Eaten     int     // Food entities consumed this tick
	Expired   int     // Bad food entities that timed out this tick
	Spawned   int     // Food entities created by regeneration this tick
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated state and any events that occurred.
type StepResult struct {
	State  GameState
	Events Events
}
