package tui

import (
	"github.com/gdamore/tcell/v2"

	"snake-arcade/game"
)

// Bell rings the terminal bell when a session ends. Terminals have no
// tones, so the other sounds are silent.
type Bell struct {
	screen tcell.Screen
}

func NewBell(s tcell.Screen) *Bell {
	return &Bell{screen: s}
}

func (b *Bell) Play(s game.Sound) {
	if s == game.SoundGameOver {
		_ = b.screen.Beep()
	}
}
