package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
	"snake-arcade/game/types"
)

// App owns the raylib window and audio device
type App struct {
	renderer *Renderer
	sound    *SoundPlayer
	input    game.InputSource
}

// NewApp opens a window sized to the board plus the score bar.
func NewApp(grid types.Grid, cellSize, fps int, sound bool, appleTexture string) *App {
	r := NewRenderer(grid, cellSize, appleTexture)
	w, h := r.WindowSize()

	rl.InitWindow(w, h, "Snake")
	rl.SetExitKey(0)
	rl.SetTargetFPS(int32(fps))
	r.LoadAssets()

	a := &App{renderer: r, input: KeyboardInput{}}
	if sound {
		a.sound = NewSoundPlayer()
	}
	return a
}

func (a *App) Renderer() game.Renderer {
	return a.renderer
}

// Sound returns the audio player, or a silent one when sound is off
func (a *App) Sound() game.SoundPlayer {
	if a.sound == nil {
		return game.NopSound{}
	}
	return a.sound
}

// Run drives g until the player quits or closes the window
func (a *App) Run(g *game.Game) {
	for {
		for _, action := range a.input.Poll() {
			if !g.Handle(action) {
				return
			}
		}
		g.Poll()
		a.renderer.Present(g)
	}
}

func (a *App) Close() {
	a.renderer.Unload()
	if a.sound != nil {
		a.sound.Close()
	}
	rl.CloseWindow()
}
