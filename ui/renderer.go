package ui

import (
	"fmt"
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
)

const (
	hudHeight     = 40  // Score bar below the board
	maxScores     = 20  // Sessions shown in the history graph
	graphHeight   = 120 // History graph height on overlays
	borderPadding = 10
)

var (
	obstacleFill   = rl.NewColor(0x34, 0x49, 0x5e, 255)
	obstacleStroke = rl.NewColor(0x2c, 0x3e, 0x50, 255)
	headInner      = rl.NewColor(0x2e, 0xcc, 0x71, 255)
	headOuter      = rl.NewColor(0x27, 0xae, 0x60, 255)
	bodyInner      = rl.NewColor(0x27, 0xae, 0x60, 255)
	bodyOuter      = rl.NewColor(0x14, 0x5a, 0x32, 255)
	boardColor     = rl.NewColor(0x1e, 0x27, 0x2e, 255)
	appleRed       = rl.NewColor(0xe7, 0x4c, 0x3c, 255)
	leafGreen      = rl.NewColor(0x2e, 0xcc, 0x71, 255)
)

// Renderer draws the board with raylib. Like a canvas it keeps the last board
// it was asked to draw; Present repaints that board plus HUD and overlays
// every frame.
type Renderer struct {
	cellSize     int32
	screenWidth  int32
	screenHeight int32
	boardWidth   int32
	boardHeight  int32

	board    game.View
	hasBoard bool

	apple       rl.Texture2D
	hasApple    bool
	texturePath string
}

func NewRenderer(grid types.Grid, cellSize int, texturePath string) *Renderer {
	r := &Renderer{
		cellSize:    int32(cellSize),
		boardWidth:  int32(grid.Width * cellSize),
		boardHeight: int32(grid.Height * cellSize),
		texturePath: texturePath,
	}
	r.screenWidth = r.boardWidth
	r.screenHeight = r.boardHeight + hudHeight
	return r
}

// WindowSize is the size of window the renderer needs
func (r *Renderer) WindowSize() (int32, int32) {
	return r.screenWidth, r.screenHeight
}

// LoadAssets loads the apple sprite; call after the window exists.
func (r *Renderer) LoadAssets() {
	if r.texturePath == "" {
		return
	}
	if _, err := os.Stat(r.texturePath); err != nil {
		return
	}
	r.apple = rl.LoadTexture(r.texturePath)
	r.hasApple = r.apple.ID != 0
}

func (r *Renderer) Unload() {
	if r.hasApple {
		rl.UnloadTexture(r.apple)
		r.hasApple = false
	}
}

// Draw retains v as the current board. It performs no raylib calls so it is
// safe before the window opens.
func (r *Renderer) Draw(v game.View) {
	r.board = v
	r.hasBoard = true
}

// Present paints one frame
func (r *Renderer) Present(g *game.Game) {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	rl.DrawRectangle(0, 0, r.boardWidth, r.boardHeight, boardColor)
	if r.hasBoard {
		r.drawBoard(r.board)
	}
	r.drawHUD(g)

	switch g.State() {
	case game.StateMenu:
		r.drawMenu(g.Stats())
	case game.StatePaused:
		r.drawCentered("PAUSED", r.boardHeight/2-20, 30, rl.White)
		r.drawCentered("Press P to resume", r.boardHeight/2+20, 16, rl.LightGray)
	case game.StateGameOver:
		r.drawGameOver(g.LastResult(), g.Stats())
	}

	rl.EndDrawing()
}

func (r *Renderer) drawBoard(v game.View) {
	for _, obs := range v.Obstacles {
		x := int32(obs.X) * r.cellSize
		y := int32(obs.Y) * r.cellSize
		rl.DrawRectangle(x, y, r.cellSize, r.cellSize, obstacleFill)
		rl.DrawRectangleLines(x, y, r.cellSize, r.cellSize, obstacleStroke)
	}

	// Tail first so the head ends up on top
	for i := len(v.Snake) - 1; i >= 0; i-- {
		p := v.Snake[i]
		cx := int32(p.X)*r.cellSize + r.cellSize/2
		cy := int32(p.Y)*r.cellSize + r.cellSize/2
		if i == 0 {
			r.drawHead(cx, cy)
		} else {
			rl.DrawCircleGradient(cx, cy, float32(r.cellSize)/2.2, bodyInner, bodyOuter)
		}
	}

	for _, f := range v.Food {
		r.drawApple(int32(f.X)*r.cellSize, int32(f.Y)*r.cellSize)
	}
}

func (r *Renderer) drawHead(cx, cy int32) {
	rl.DrawCircleGradient(cx, cy, float32(r.cellSize)/2, headInner, headOuter)

	rl.DrawCircle(cx-4, cy-4, 3, rl.White)
	rl.DrawCircle(cx+4, cy-4, 3, rl.White)
	rl.DrawCircle(cx-4, cy-4, 1.5, rl.Black)
	rl.DrawCircle(cx+4, cy-4, 1.5, rl.Black)
}

func (r *Renderer) drawApple(x, y int32) {
	size := float32(r.cellSize)
	if r.hasApple {
		src := rl.NewRectangle(0, 0, float32(r.apple.Width), float32(r.apple.Height))
		dst := rl.NewRectangle(float32(x), float32(y), size, size)
		rl.DrawTexturePro(r.apple, src, dst, rl.NewVector2(0, 0), 0, rl.White)
		return
	}

	// Drop shadow, fruit, stem and leaf
	rl.DrawCircle(x+r.cellSize/2+2, y+r.cellSize/2+2, size/2.4, rl.Fade(rl.Black, 0.4))
	rl.DrawCircle(x+r.cellSize/2, y+r.cellSize/2+1, size/2.4, appleRed)
	rl.DrawRectangle(x+r.cellSize/2-1, y+1, 2, r.cellSize/4, rl.Brown)
	rl.DrawCircle(x+r.cellSize/2+4, y+3, 3, leafGreen)
}

func (r *Renderer) drawHUD(g *game.Game) {
	y := r.boardHeight + (hudHeight-16)/2
	x := int32(borderPadding)
	spacing := r.screenWidth / 3

	rl.DrawText(fmt.Sprintf("Score: %d", g.Score()), x, y, 16, rl.White)
	rl.DrawText(fmt.Sprintf("Apples: %d", g.ApplesEaten()), x+spacing, y, 16, rl.Red)
	rl.DrawText(fmt.Sprintf("Best: %d", g.HighScore()), x+2*spacing, y, 16, rl.Gold)
}

func (r *Renderer) drawMenu(stats *manager.StatsManager) {
	r.dim()
	r.drawCentered("SNAKE", r.boardHeight/4, 40, rl.Green)
	r.drawCentered("Press ENTER to start", r.boardHeight/4+60, 18, rl.White)
	r.drawCentered("Arrows move - P pause - Esc quit", r.boardHeight/4+90, 14, rl.LightGray)

	if stats == nil {
		return
	}
	summary := stats.Summary()
	if summary.GamesPlayed == 0 {
		return
	}
	r.drawCentered(fmt.Sprintf("Games: %d  Avg: %.1f  Max: %d", summary.GamesPlayed, summary.AverageScore, summary.MaxScore),
		r.boardHeight/4+120, 14, rl.LightGray)
	r.drawHistoryGraph(stats.Recent(maxScores))
}

func (r *Renderer) drawGameOver(result *game.Result, stats *manager.StatsManager) {
	r.dim()
	r.drawCentered("GAME OVER", r.boardHeight/4, 36, rl.Red)
	if result != nil {
		r.drawCentered(fmt.Sprintf("Final score: %d - Apples eaten: %d", result.Record.Score, result.Record.ApplesEaten),
			r.boardHeight/4+50, 16, rl.White)
		if result.NewHighScore {
			r.drawCentered("NEW HIGH SCORE!", r.boardHeight/4+75, 18, rl.Gold)
		}
	}
	r.drawCentered("Press ENTER to play again", r.boardHeight/4+105, 16, rl.LightGray)

	if stats != nil {
		r.drawHistoryGraph(stats.Recent(maxScores))
	}
}

// drawHistoryGraph draws one bar per recent session, oldest on the left
func (r *Renderer) drawHistoryGraph(sessions []types.SessionRecord) {
	if len(sessions) == 0 {
		return
	}
	graphWidth := r.boardWidth - borderPadding*2
	graphY := r.boardHeight - graphHeight - borderPadding

	rl.DrawRectangle(borderPadding, graphY, graphWidth, graphHeight, rl.Fade(rl.DarkGray, 0.6))

	maxScore := 1
	for _, s := range sessions {
		if s.Score > maxScore {
			maxScore = s.Score
		}
	}

	const barAlpha = uint8(180)
	slot := float32(graphWidth) / float32(maxScores)
	scaleY := float32(graphHeight-20) / float32(maxScore)
	for i, s := range sessions {
		h := int32(float32(s.Score) * scaleY)
		x := borderPadding + int32(float32(i)*slot+slot/4)
		rl.DrawRectangle(x, graphY+graphHeight-h, int32(slot/2), h, rl.NewColor(0, barAlpha, 0, barAlpha))
	}
	rl.DrawText("Recent scores", borderPadding+4, graphY+4, 12, rl.White)
}

func (r *Renderer) dim() {
	rl.DrawRectangle(0, 0, r.boardWidth, r.boardHeight, rl.Fade(rl.Black, 0.6))
}

func (r *Renderer) drawCentered(text string, y, fontSize int32, col rl.Color) {
	w := rl.MeasureText(text, fontSize)
	rl.DrawText(text, (r.boardWidth-w)/2, y, fontSize, col)
}
