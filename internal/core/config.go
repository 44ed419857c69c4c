package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The game uses it to adapt to the terminal size and for deterministic play.
type RuntimeConfig struct {
	ScreenW int   // Screen width in characters
	ScreenH int   // Screen height in characters
	Seed    int64 // RNG seed; 0 means use current time in the platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
	}
}

// GameState represents the current state of a round.
type GameState struct {
	GameOver bool // Whether the round has ended
}

// StepResult is returned by Game.Step() after each tick.
type StepResult struct {
	State GameState
}
