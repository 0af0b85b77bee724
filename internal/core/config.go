package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to size the drawable surface and seed their RNG.
type RuntimeConfig struct {
	ScreenW  int   // Playfield width in characters
	ScreenH  int   // Playfield height in characters
	TickRate int   // Frame ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means use current time in platform layer
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  22,
		TickRate: 60,
		Seed:     0,
	}
}

// GameState is the read-only session summary shown by the HUD.
type GameState struct {
	Score    int
	Lives    int
	Level    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step() after each frame.
type StepResult struct {
	State  GameState
	Events []Event
}
