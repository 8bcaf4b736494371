package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters (or pixels for the window frontend)
	ScreenH  int   // Screen height in characters (or pixels for the window frontend)
	TickRate int   // Frames per second requested from the platform (default 60)
	Seed     int64 // RNG seed for deterministic gameplay
	HUDRows  int   // Rows above the playfield reserved for the HUD
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
		HUDRows:  1,
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score     float64 // Seconds survived in the current run
	HighScore float64 // Best score known to the game
	Lives     int     // Remaining lives, display-clamped at zero
	Started   bool    // Whether a run has ever been started
	GameOver  bool    // Whether the game has ended
	Paused    bool    // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation frame.
// Contains the updated game state and any cues that occurred.
type StepResult struct {
	State GameState
	Cues  []Cue
}
