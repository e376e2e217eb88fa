package tui

import tea "github.com/charmbracelet/bubbletea"

// Intent is a semantic input intent, abstracted from physical keys.
type Intent int

const (
	IntentNone Intent = iota
	IntentLeft
	IntentRight
	IntentUp
	IntentDown
	IntentFire
	IntentStart
	IntentRestart
	IntentPause
	IntentQuit
)

// KeyMapper translates Bubble Tea key messages to intents.
// Centralizes key bindings and keeps them testable without a terminal.
type KeyMapper struct{}

// NewKeyMapper creates a key mapper with the default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// Map translates a key message to an intent.
// Space doubles as fire and as the start command on the ready screen; the
// simulation resolves which applies from its phase.
func (km *KeyMapper) Map(msg tea.KeyMsg) Intent {
	switch msg.String() {
	case "ctrl+c", "q":
		return IntentQuit
	case "left", "a", "h":
		return IntentLeft
	case "right", "d", "l":
		return IntentRight
	case "up", "w", "k":
		return IntentUp
	case "down", "s", "j":
		return IntentDown
	case " ":
		return IntentFire
	case "enter":
		return IntentStart
	case "r":
		return IntentRestart
	case "p", "esc":
		return IntentPause
	}
	return IntentNone
}
