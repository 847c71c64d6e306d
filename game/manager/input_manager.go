package manager

import (
	"snake-arcade/game/types"
)

// InputManager accepts at most one direction change per tick and never a
// straight reversal.
type InputManager struct {
	changing bool
}

func NewInputManager() *InputManager {
	return &InputManager{}
}

// ChangeDirection returns the direction to use and whether the request was accepted
func (im *InputManager) ChangeDirection(current, requested types.Direction) (types.Direction, bool) {
	if im.changing {
		return current, false
	}
	if requested == current.Opposite() {
		return current, false
	}
	im.changing = true
	return requested, true
}

// Reset re-arms the handler; called at the start of every tick
func (im *InputManager) Reset() {
	im.changing = false
}

func (im *InputManager) Changing() bool {
	return im.changing
}
