package game

// Phase is the round state machine position.
type Phase int

const (
	// PhaseReady is the pre-start state: no world, waiting for the start
	// command.
	PhaseReady Phase = iota
	// PhasePlaying is the active state: the step runs each tick and the
	// spawner is live.
	PhasePlaying
	// PhaseGameOver is the terminal state: the world is frozen for display,
	// spawning and stepping stop, and a restart command begins a new round.
	PhaseGameOver
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseReady:
		return "ready"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Round tracks score, lives and phase across a single round.
// Lives live here rather than on the player entity: the player is never
// removed from the world, the round ends instead.
type Round struct {
	Phase     Phase
	Score     int
	Lives     int
	HighScore int
}
