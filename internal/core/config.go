package core

// RuntimeConfig contains configuration passed to a session at initialization.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means use current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     0,
	}
}

// Phase is the session state machine position.
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseGameOver
	PhaseWon
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseRunning:
		return "running"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	case PhaseWon:
		return "won"
	default:
		return "unknown"
	}
}

// Terminal reports whether the phase only ends through an explicit reset.
func (p Phase) Terminal() bool {
	return p == PhaseGameOver || p == PhaseWon
}

// GameState is the summary a session reports to the platform.
type GameState struct {
	Score     int
	Health    int
	MaxHealth int
	Speed     int
	Phase     Phase
}

// GameOver reports whether the run was lost.
func (s GameState) GameOver() bool { return s.Phase == PhaseGameOver }

// Won reports whether the run was won.
func (s GameState) Won() bool { return s.Phase == PhaseWon }

// Paused reports whether the run is paused.
func (s GameState) Paused() bool { return s.Phase == PhasePaused }

// StepResult is returned by Tick after each simulation step.
type StepResult struct {
	State GameState
}
