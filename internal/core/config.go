package core

// RuntimeConfig is passed to games on Reset.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second
	Seed     int64 // RNG seed; 0 means the platform picks one from the clock
}

// DefaultTickRate is the platform simulation rate.
const DefaultTickRate = 60

// DefaultConfig returns a RuntimeConfig sized for a standard 80×24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: DefaultTickRate,
	}
}

// GameState is what the platform needs to know about a running game.
type GameState struct {
	Score    int
	Lines    int
	GameOver bool
	Paused   bool
}

// StepResult is returned by Game.Step after each tick.
type StepResult struct {
	State GameState

	// LinesCleared is the number of rows removed during this tick.
	LinesCleared int
	// Ended is true only on the tick the game transitioned to game over.
	Ended bool
}
