package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"snake-arcade/game"
)

// Each board cell is two columns wide so the board looks square in most fonts.
const cellCols = 2

var (
	boardStyle    = tcell.StyleDefault.Background(tcell.ColorBlack)
	obstacleStyle = tcell.StyleDefault.Foreground(tcell.ColorSlateGray).Background(tcell.ColorDarkSlateGray)
	headStyle     = tcell.StyleDefault.Foreground(tcell.ColorLime).Background(tcell.ColorBlack).Bold(true)
	bodyStyle     = tcell.StyleDefault.Foreground(tcell.ColorGreen).Background(tcell.ColorBlack)
	foodStyle     = tcell.StyleDefault.Foreground(tcell.ColorRed).Background(tcell.ColorBlack)
	hudStyle      = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorDarkOliveGreen)
	overlayStyle  = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorNavy).Bold(true)
	gameOverStyle = tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorMaroon).Bold(true)
)

// Renderer draws the board into a tcell screen. Draw keeps the latest board;
// Present repaints it with the status line and any overlay.
type Renderer struct {
	screen   tcell.Screen
	board    game.View
	hasBoard bool
}

func NewRenderer(s tcell.Screen) *Renderer {
	return &Renderer{screen: s}
}

func (r *Renderer) Draw(v game.View) {
	r.board = v
	r.hasBoard = true
}

func (r *Renderer) Present(g *game.Game) {
	s := r.screen
	s.Clear()

	grid := g.Grid
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width*cellCols; x++ {
			s.SetContent(x, y, ' ', nil, boardStyle)
		}
	}

	if r.hasBoard {
		v := r.board
		for _, p := range v.Obstacles {
			r.setCell(p.X, p.Y, '█', obstacleStyle)
		}
		for i := len(v.Snake) - 1; i >= 0; i-- {
			if i == 0 {
				r.setCell(v.Snake[i].X, v.Snake[i].Y, '@', headStyle)
			} else {
				r.setCell(v.Snake[i].X, v.Snake[i].Y, 'o', bodyStyle)
			}
		}
		for _, f := range v.Food {
			r.setCell(f.X, f.Y, '●', foodStyle)
		}
	}

	hud := fmt.Sprintf("Score:%d  Apples:%d  Best:%d  Level:%d", g.Score(), g.ApplesEaten(), g.HighScore(), g.Level())
	drawText(s, 0, grid.Height, padRight(hud, grid.Width*cellCols), hudStyle)

	cx := grid.Width * cellCols / 2
	cy := grid.Height / 2
	switch g.State() {
	case game.StateMenu:
		drawCentered(s, cx, cy-1, " SNAKE ", overlayStyle)
		drawCentered(s, cx, cy+1, " Enter: start  P: pause  Q/Esc: quit ", overlayStyle)
	case game.StatePaused:
		drawCentered(s, cx, cy, " Paused - P to resume ", overlayStyle)
	case game.StateGameOver:
		drawCentered(s, cx, cy-1, " Game Over! ", gameOverStyle)
		if res := g.LastResult(); res != nil {
			drawCentered(s, cx, cy, fmt.Sprintf(" Score %d - Apples %d ", res.Record.Score, res.Record.ApplesEaten), gameOverStyle)
			if res.NewHighScore {
				drawCentered(s, cx, cy+1, " New high score! ", gameOverStyle)
			}
		}
		drawCentered(s, cx, cy+2, " Enter to play again ", gameOverStyle)
	}

	s.Show()
}

func (r *Renderer) setCell(x, y int, ch rune, st tcell.Style) {
	r.screen.SetContent(x*cellCols, y, ch, nil, st)
	r.screen.SetContent(x*cellCols+1, y, ' ', nil, st)
}

func drawText(s tcell.Screen, x, y int, text string, st tcell.Style) {
	i := 0
	for _, ch := range text {
		s.SetContent(x+i, y, ch, nil, st)
		i++
	}
}

func drawCentered(s tcell.Screen, cx, cy int, text string, st tcell.Style) {
	x := cx - len([]rune(text))/2
	drawText(s, x, cy, text, st)
}

func padRight(text string, width int) string {
	n := len([]rune(text))
	for ; n < width; n++ {
		text += " "
	}
	return text
}
