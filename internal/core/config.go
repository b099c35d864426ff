package core

// ReferenceTickRate is the tick rate the simulation constants are tuned for.
const ReferenceTickRate = 60

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: ReferenceTickRate,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// TickScale returns how many reference ticks one tick at this rate covers.
// It is 1 at the reference rate.
func (c RuntimeConfig) TickScale() float64 {
	if c.TickRate <= 0 {
		return 1
	}
	return float64(ReferenceTickRate) / float64(c.TickRate)
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     int  // Lines discovered so far
	Total     int  // Lines in the poem
	Ticks     int  // Ticks since the walk started
	Started   bool // Whether the start overlay was dismissed
	GameOver  bool // Whether the completion screen is showing
	Paused    bool // Whether the game is paused
	Dialogue  bool // Whether a dialogue box is open
	Restarted bool // Set on the tick a restart happened
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the audio cues fired this tick.
type StepResult struct {
	State GameState
	Cues  []Cue
}
