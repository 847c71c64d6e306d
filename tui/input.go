package tui

import (
	"github.com/gdamore/tcell/v2"

	"snake-arcade/game"
)

// KeyAction maps a key press to a game action
func KeyAction(e *tcell.EventKey) game.Action {
	switch e.Key() {
	case tcell.KeyUp:
		return game.ActionUp
	case tcell.KeyDown:
		return game.ActionDown
	case tcell.KeyLeft:
		return game.ActionLeft
	case tcell.KeyRight:
		return game.ActionRight
	case tcell.KeyEnter:
		return game.ActionStart
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return game.ActionQuit
	case tcell.KeyRune:
	default:
		return game.ActionNone
	}

	switch e.Rune() {
	case 'w', 'W':
		return game.ActionUp
	case 's', 'S':
		return game.ActionDown
	case 'a', 'A':
		return game.ActionLeft
	case 'd', 'D':
		return game.ActionRight
	case ' ', 'r', 'R':
		return game.ActionStart
	case 'p', 'P':
		return game.ActionTogglePause
	case 'q', 'Q':
		return game.ActionQuit
	}
	return game.ActionNone
}
