package core

// InputState is the per-frame intent record produced by the input collaborator.
// The simulation never polls a raw device; the platform layer fills one of
// these each tick from whatever input source it owns (keyboard, SSH session).
type InputState struct {
	// Held directional intents. Diagonals are the sum of active axes.
	MoveLeft  bool
	MoveRight bool
	MoveUp    bool
	MoveDown  bool

	// One-shot edges, valid for a single tick.
	Fire    bool // fire the cannons
	Start   bool // begin a round from the ready screen
	Restart bool // restart after game over
	Pause   bool // toggle pause
}

// AnyMovement reports whether any directional intent is held.
func (in InputState) AnyMovement() bool {
	return in.MoveLeft || in.MoveRight || in.MoveUp || in.MoveDown
}

// Clear resets all intents for the next frame.
func (in *InputState) Clear() {
	*in = InputState{}
}
