package core

// RuntimeConfig contains configuration passed to the game at initialization.
// The viewport size is supplied by the platform (terminal or SSH PTY) and is
// translated to world-unit bounds at world construction time.
type RuntimeConfig struct {
	ScreenW  int   // Viewport width in character cells
	ScreenH  int   // Viewport height in character cells
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed for deterministic spawning
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0, // 0 means use current time in the platform layer
	}
}
