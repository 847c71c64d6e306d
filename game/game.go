package game

import (
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/monitoring"
)

// Options wires a Game to its collaborators. Zero values get working defaults.
type Options struct {
	Settings   types.Settings
	Renderer   Renderer
	Sound      SoundPlayer
	HighScores manager.KeyValueStore
	Stats      *manager.StatsManager
	Rand       manager.Intner
	Clock      Clock
	OnGameOver func(Result)
}

// Game is the session controller. It owns all mutable session state and is
// driven from a single goroutine: the frontend loop calls Handle for input and
// Poll once per frame.
type Game struct {
	UUID      string
	Grid      types.Grid
	StartTime time.Time

	settings    types.Settings
	snake       *entity.Snake
	state       State
	score       int
	applesEaten int
	lastResult  *Result

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	obstacleMgr  *manager.ObstacleManager
	inputMgr     *manager.InputManager
	stateMgr     *manager.StateManager
	statsMgr     *manager.StatsManager

	scheduler  *Scheduler
	clock      Clock
	renderer   Renderer
	sound      SoundPlayer
	onGameOver func(Result)
	logf       func(format string, v ...interface{})
}

// NewGame builds a game in the menu state: high score loaded, food placed and
// the idle board drawn once.
func NewGame(opts Options) *Game {
	settings := opts.Settings
	if settings.Grid.Width <= 0 || settings.Grid.Height <= 0 {
		settings = types.DefaultSettings()
	}
	clock := opts.Clock
	if clock == nil {
		clock = realClock{}
	}
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	renderer := opts.Renderer
	if renderer == nil {
		renderer = nopRenderer{}
	}
	sound := opts.Sound
	if sound == nil {
		sound = NopSound{}
	}
	stats := opts.Stats
	if stats == nil {
		stats, _ = manager.NewStatsManager(nil)
	}

	g := &Game{
		Grid:         settings.Grid,
		settings:     settings,
		snake:        entity.NewSnake(settings.Start, types.Right),
		state:        StateMenu,
		collisionMgr: manager.NewCollisionManager(settings.Grid),
		foodMgr:      manager.NewFoodManager(settings.Grid, settings.MaxFoods, rng),
		obstacleMgr:  manager.NewObstacleManager(settings),
		inputMgr:     manager.NewInputManager(),
		stateMgr:     manager.NewStateManager(opts.HighScores),
		statsMgr:     stats,
		scheduler:    NewScheduler(clock),
		clock:        clock,
		renderer:     renderer,
		sound:        sound,
		onGameOver:   opts.OnGameOver,
		logf:         func(format string, v ...interface{}) { monitoring.Logf(format, v...) },
	}

	g.foodMgr.Refill()
	g.renderer.Draw(g.Snapshot())
	return g
}

// Start begins a fresh session from the menu or game over screen.
func (g *Game) Start() bool {
	if g.state == StateRunning || g.state == StatePaused {
		return false
	}

	g.UUID = uuid.New().String()
	g.logf = monitoring.SessionLogf(g.UUID)
	g.StartTime = g.clock.Now()
	g.snake = entity.NewSnake(g.settings.Start, types.Right)
	g.score = 0
	g.applesEaten = 0
	g.lastResult = nil
	g.obstacleMgr.Reset()
	g.inputMgr.Reset()
	g.foodMgr.Reset()
	g.stateMgr.Load()
	g.state = StateRunning

	g.foodMgr.Refill()
	g.renderer.Draw(g.Snapshot())
	g.scheduler.Start(g.obstacleMgr.Speed(), g.Tick)
	g.sound.Play(SoundStart)

	g.logf("started")
	return true
}

// Restart is Start under another name for the game over screen
func (g *Game) Restart() bool {
	return g.Start()
}

func (g *Game) Pause() bool {
	if g.state != StateRunning {
		return false
	}
	g.scheduler.Stop()
	g.state = StatePaused
	return true
}

// Resume restarts the timer at the current, possibly reduced, interval
func (g *Game) Resume() bool {
	if g.state != StatePaused {
		return false
	}
	g.state = StateRunning
	g.scheduler.Start(g.obstacleMgr.Speed(), g.Tick)
	return true
}

// ChangeDirection queues a turn for the next tick
func (g *Game) ChangeDirection(dir types.Direction) bool {
	next, ok := g.inputMgr.ChangeDirection(g.snake.Direction, dir)
	if ok {
		g.snake.Direction = next
	}
	return ok
}

// Handle applies one input action. It returns false when the player asked to quit.
func (g *Game) Handle(a Action) bool {
	if dir, ok := a.Direction(); ok {
		g.ChangeDirection(dir)
		return true
	}
	switch a {
	case ActionStart:
		g.Start()
	case ActionPause:
		g.Pause()
	case ActionResume:
		g.Resume()
	case ActionTogglePause:
		if !g.Pause() {
			g.Resume()
		}
	case ActionQuit:
		return false
	}
	return true
}

// Poll advances the tick timer; call once per frame
func (g *Game) Poll() bool {
	return g.scheduler.Poll()
}

// Tick advances the simulation by one cell. It does nothing unless running.
func (g *Game) Tick() {
	if g.state != StateRunning {
		return
	}
	g.inputMgr.Reset()

	newHead := g.collisionMgr.Wrap(g.snake.NextHead())
	g.snake.Move(newHead)

	if i := g.collisionMgr.FoodIndex(newHead, g.foodMgr.GetFoodList()); i >= 0 {
		g.eat(i)
	} else {
		g.snake.RemoveTail()
	}

	if g.collisionMgr.IsGameOver(g.snake, g.obstacleMgr.GetObstacles()) {
		g.gameOver()
		return
	}

	g.renderer.Draw(g.Snapshot())
}

func (g *Game) eat(i int) {
	g.foodMgr.RemoveAt(i)
	g.foodMgr.Refill()
	g.score += g.settings.FoodScore
	g.applesEaten++
	g.sound.Play(SoundEat)

	advanced, speedChanged := g.obstacleMgr.Advance(g.applesEaten)
	if speedChanged {
		g.scheduler.Reschedule(g.obstacleMgr.Speed())
	}
	if advanced {
		g.logf("level %d, tick %v, %d obstacles",
			g.obstacleMgr.Step(), g.obstacleMgr.Speed(), len(g.obstacleMgr.GetObstacles()))
	}
}

func (g *Game) gameOver() {
	g.scheduler.Stop()
	g.state = StateGameOver

	newHigh, err := g.stateMgr.Save(g.score)
	if err != nil {
		g.logf("%v", err)
	}

	rec := types.SessionRecord{
		ID:          g.UUID,
		StartTime:   g.StartTime,
		EndTime:     g.clock.Now(),
		Score:       g.score,
		ApplesEaten: g.applesEaten,
		Level:       g.obstacleMgr.Step(),
	}
	if err := g.statsMgr.AddSession(rec); err != nil {
		g.logf("%v", err)
	}

	result := Result{Record: rec, HighScore: g.stateMgr.GetHighScore(), NewHighScore: newHigh}
	g.lastResult = &result
	g.sound.Play(SoundGameOver)
	g.logf("over: score %d, apples %d", g.score, g.applesEaten)

	if g.onGameOver != nil {
		g.onGameOver(result)
	}
}

// Snapshot copies the current state for rendering
func (g *Game) Snapshot() View {
	return View{
		Grid:        g.Grid,
		CellSize:    g.settings.CellSize,
		State:       g.state,
		Snake:       g.snake.Segments(),
		Direction:   g.snake.Direction,
		Food:        append([]types.Point(nil), g.foodMgr.GetFoodList()...),
		Obstacles:   append([]types.Point(nil), g.obstacleMgr.GetObstacles()...),
		Score:       g.score,
		ApplesEaten: g.applesEaten,
		HighScore:   g.stateMgr.GetHighScore(),
		Level:       g.obstacleMgr.Step(),
		Speed:       g.obstacleMgr.Speed(),
	}
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) Score() int {
	return g.score
}

func (g *Game) ApplesEaten() int {
	return g.applesEaten
}

// Level is the number of progression steps taken this session
func (g *Game) Level() int {
	return g.obstacleMgr.Step()
}

func (g *Game) HighScore() int {
	return g.stateMgr.GetHighScore()
}

// Speed is the current tick interval
func (g *Game) Speed() time.Duration {
	return g.obstacleMgr.Speed()
}

func (g *Game) GetSnake() *entity.Snake {
	return g.snake
}

// LastResult is the outcome of the most recent session, nil while one is in progress
func (g *Game) LastResult() *Result {
	return g.lastResult
}

func (g *Game) Stats() *manager.StatsManager {
	return g.statsMgr
}

// ElapsedTime returns how long the current session has been going.
func (g *Game) ElapsedTime() time.Duration {
	if g.StartTime.IsZero() {
		return 0
	}
	return g.clock.Now().Sub(g.StartTime)
}
