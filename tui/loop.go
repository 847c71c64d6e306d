package tui

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"snake-arcade/game"
)

// Run drives g from terminal events until the player quits. Events are read on
// a separate goroutine and handed to the loop, so the game itself is only ever
// touched here.
func Run(s tcell.Screen, r *Renderer, g *game.Game, fps int) {
	if fps <= 0 {
		fps = 30
	}

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 32)
	go func() {
		for {
			ev := s.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	frame := time.NewTicker(time.Second / time.Duration(fps))
	defer frame.Stop()

	r.Present(g)
	for {
		select {
		case ev := <-events:
			switch e := ev.(type) {
			case *tcell.EventResize:
				s.Sync()
			case *tcell.EventKey:
				if !g.Handle(KeyAction(e)) {
					return
				}
			}
		case <-frame.C:
			g.Poll()
			r.Present(g)
		}
	}
}
