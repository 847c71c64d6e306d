package tui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/monitoring"
)

type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(40, 21)
	t.Cleanup(s.Fini)
	return s
}

func newGame(t *testing.T, r *Renderer) *game.Game {
	t.Helper()
	original := monitoring.Logf
	t.Cleanup(func() { monitoring.Logf = original })
	monitoring.SetLogger(nil)

	return game.NewGame(game.Options{
		Settings: types.DefaultSettings(),
		Renderer: r,
		Rand:     zeroRand{},
	})
}

func runeAt(s tcell.Screen, x, y int) rune {
	ch, _, _, _ := s.GetContent(x, y)
	return ch
}

func rowText(s tcell.Screen, y, width int) string {
	out := make([]rune, 0, width)
	for x := 0; x < width; x++ {
		out = append(out, runeAt(s, x, y))
	}
	return string(out)
}

func TestKeyAction(t *testing.T) {
	tests := []struct {
		name string
		key  tcell.Key
		ch   rune
		want game.Action
	}{
		{"arrow up", tcell.KeyUp, 0, game.ActionUp},
		{"arrow down", tcell.KeyDown, 0, game.ActionDown},
		{"arrow left", tcell.KeyLeft, 0, game.ActionLeft},
		{"arrow right", tcell.KeyRight, 0, game.ActionRight},
		{"w", tcell.KeyRune, 'w', game.ActionUp},
		{"s", tcell.KeyRune, 's', game.ActionDown},
		{"a", tcell.KeyRune, 'a', game.ActionLeft},
		{"d", tcell.KeyRune, 'd', game.ActionRight},
		{"enter", tcell.KeyEnter, 0, game.ActionStart},
		{"space", tcell.KeyRune, ' ', game.ActionStart},
		{"pause", tcell.KeyRune, 'p', game.ActionTogglePause},
		{"q", tcell.KeyRune, 'q', game.ActionQuit},
		{"escape", tcell.KeyEscape, 0, game.ActionQuit},
		{"ctrl-c", tcell.KeyCtrlC, 0, game.ActionQuit},
		{"other rune", tcell.KeyRune, 'x', game.ActionNone},
		{"other key", tcell.KeyTab, 0, game.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev := tcell.NewEventKey(tt.key, tt.ch, tcell.ModNone)
			assert.Equal(t, tt.want, KeyAction(ev))
		})
	}
}

func TestPresentDrawsBoardAndHUD(t *testing.T) {
	s := newScreen(t)
	r := NewRenderer(s)
	g := newGame(t, r)

	r.Present(g)

	// Head at (10,10), every apple at the origin
	assert.Equal(t, '@', runeAt(s, 10*cellCols, 10))
	assert.Equal(t, '●', runeAt(s, 0, 0))
	assert.Contains(t, rowText(s, 20, 40), "Score:0")
	assert.Contains(t, rowText(s, 20, 40), "Level:0")
	assert.Contains(t, rowText(s, 9, 40), "SNAKE")
}

func TestPresentShowsObstaclesAndPause(t *testing.T) {
	s := newScreen(t)
	r := NewRenderer(s)
	g := newGame(t, r)

	require.True(t, g.Start())
	r.Draw(game.View{
		Snake:     []types.Point{{X: 3, Y: 3}, {X: 2, Y: 3}},
		Obstacles: []types.Point{{X: 5, Y: 5}},
	})
	require.True(t, g.Pause())
	r.Present(g)

	assert.Equal(t, '@', runeAt(s, 3*cellCols, 3))
	assert.Equal(t, 'o', runeAt(s, 2*cellCols, 3))
	assert.Equal(t, '█', runeAt(s, 5*cellCols, 5))
	assert.Contains(t, rowText(s, 10, 40), "Paused")
}

func TestRunHandlesKeysUntilQuit(t *testing.T) {
	s := newScreen(t)
	r := NewRenderer(s)
	g := newGame(t, r)

	s.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'p', tcell.ModNone)
	s.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	done := make(chan struct{})
	go func() {
		Run(s, r, g, 60)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after escape")
	}
	assert.Equal(t, game.StatePaused, g.State())
}
