package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/twocars/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to a game action. Returns the action
// and whether it's a quit request. Keys without a dedicated binding map
// to ActionAnyKey so that any key starts a round from the menu.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	switch msg.String() {
	case "ctrl+c", "q":
		return core.ActionNone, true
	case "a", "left":
		return core.ActionSteerBlue, false
	case "d", "right":
		return core.ActionSteerRed, false
	case "r":
		return core.ActionRestart, false
	case "h":
		return core.ActionHome, false
	case "esc":
		return core.ActionBack, false
	}

	return core.ActionAnyKey, false
}
