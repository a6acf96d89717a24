package core

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
		TickRate: 60,
		Seed:     0, // 0 means use current time in platform layer
	}
}

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Current score
	Lives    int  // Remaining lives, 0 outside of play
	GameOver bool // Whether the game has ended
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
type StepResult struct {
	State GameState
	Cues  []Cue // Sounds triggered during this tick
}

// Cue is an audio cue a game asks the platform to play.
type Cue int

const (
	CueFire Cue = iota + 1
	CueThrust
	CueBangLarge
	CueBangMedium
	CueBangSmall
)

func (c Cue) String() string {
	switch c {
	case CueFire:
		return "fire"
	case CueThrust:
		return "thrust"
	case CueBangLarge:
		return "bang_large"
	case CueBangMedium:
		return "bang_medium"
	case CueBangSmall:
		return "bang_small"
	default:
		return "none"
	}
}

// IsBang reports whether the cue is one of the explosion sounds.
func (c Cue) IsBang() bool {
	return c == CueBangLarge || c == CueBangMedium || c == CueBangSmall
}
