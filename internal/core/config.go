package core

// RuntimeConfig contains configuration passed to games at initialization.
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
		ScreenH:  40,
		TickRate: 60,
		Seed:     0, // 0 means use a date-derived seed in the platform layer
	}
}

// TickDT returns the fixed timestep in seconds for the configured tick rate.
func (c RuntimeConfig) TickDT() float64 {
	if c.TickRate <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / float64(c.TickRate)
}

// GameState is the summary the platform needs for HUD-independent decisions
// such as saving a finished run.
type GameState struct {
	Score   int
	Wave    int
	Block   int
	Paused  bool
	Over    bool // lost every life or breached
	Won     bool // cleared the final wave
	Playing bool
}

// Finished reports whether the run has reached a terminal outcome.
func (g GameState) Finished() bool {
	return g.Over || g.Won
}
