package game

import (
	"time"

	"snake-arcade/game/types"
)

// State is the session lifecycle state
type State int

const (
	StateMenu State = iota
	StateRunning
	StatePaused
	StateGameOver
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateGameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// View is a read-only copy of everything a renderer or HUD needs.
type View struct {
	Grid        types.Grid
	CellSize    int
	State       State
	Snake       []types.Point
	Direction   types.Direction
	Food        []types.Point
	Obstacles   []types.Point
	Score       int
	ApplesEaten int
	HighScore   int
	Level       int
	Speed       time.Duration
}

// Renderer paints a View. Each View passed to Draw owns its slices, so a
// renderer may keep it until the next call.
type Renderer interface {
	Draw(v View)
}

type Sound int

const (
	SoundEat Sound = iota
	SoundStart
	SoundGameOver
)

func (s Sound) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundStart:
		return "start"
	case SoundGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

type SoundPlayer interface {
	Play(s Sound)
}

// Action is a single user intent read from an InputSource
type Action int

const (
	ActionNone Action = iota
	ActionUp
	ActionRight
	ActionDown
	ActionLeft
	ActionStart
	ActionPause
	ActionResume
	ActionTogglePause
	ActionQuit
)

// Direction maps a movement action to its heading
func (a Action) Direction() (types.Direction, bool) {
	switch a {
	case ActionUp:
		return types.Up, true
	case ActionRight:
		return types.Right, true
	case ActionDown:
		return types.Down, true
	case ActionLeft:
		return types.Left, true
	default:
		return 0, false
	}
}

// InputSource returns the actions that arrived since the last call
type InputSource interface {
	Poll() []Action
}

// Result describes a finished session
type Result struct {
	Record       types.SessionRecord
	HighScore    int
	NewHighScore bool
}

type nopRenderer struct{}

func (nopRenderer) Draw(View) {}

// NopSound discards all sounds
type NopSound struct{}

func (NopSound) Play(Sound) {}
