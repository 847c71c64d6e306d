package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"snake-arcade/game"
)

var keyActions = []struct {
	key    int32
	action game.Action
}{
	{rl.KeyUp, game.ActionUp},
	{rl.KeyDown, game.ActionDown},
	{rl.KeyLeft, game.ActionLeft},
	{rl.KeyRight, game.ActionRight},
	{rl.KeyEnter, game.ActionStart},
	{rl.KeySpace, game.ActionStart},
	{rl.KeyR, game.ActionStart},
	{rl.KeyP, game.ActionTogglePause},
	{rl.KeyQ, game.ActionQuit},
	{rl.KeyEscape, game.ActionQuit},
}

// KeyboardInput reports the keys pressed since the previous frame
type KeyboardInput struct{}

func (KeyboardInput) Poll() []game.Action {
	var actions []game.Action
	for _, ka := range keyActions {
		if rl.IsKeyPressed(ka.key) {
			actions = append(actions, ka.action)
		}
	}
	if rl.WindowShouldClose() {
		actions = append(actions, game.ActionQuit)
	}
	return actions
}
