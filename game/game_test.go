package game

import (
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"
	"snake-arcade/monitoring"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

// zeroRand puts every apple at the origin, away from the test paths.
type zeroRand struct{}

func (zeroRand) Intn(int) int { return 0 }

type recordingRenderer struct {
	draws int
	last  View
}

func (r *recordingRenderer) Draw(v View) {
	r.draws++
	r.last = v
}

type recordingSound struct {
	played []Sound
}

func (s *recordingSound) Play(snd Sound) { s.played = append(s.played, snd) }

type memKV map[string]string

func (m memKV) Get(key string) (string, bool, error) {
	v, ok := m[key]
	return v, ok, nil
}

func (m memKV) Set(key, value string) error {
	m[key] = value
	return nil
}

type harness struct {
	game     *Game
	clock    *fakeClock
	renderer *recordingRenderer
	sound    *recordingSound
	kv       memKV
	results  []Result
}

func newHarness(t *testing.T) *harness {
	t.Helper()
	original := monitoring.Logf
	t.Cleanup(func() { monitoring.Logf = original })
	monitoring.SetLogger(nil)

	h := &harness{
		clock:    &fakeClock{now: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)},
		renderer: &recordingRenderer{},
		sound:    &recordingSound{},
		kv:       memKV{},
	}
	h.game = NewGame(Options{
		Settings:   types.DefaultSettings(),
		Renderer:   h.renderer,
		Sound:      h.sound,
		HighScores: h.kv,
		Rand:       zeroRand{},
		Clock:      h.clock,
		OnGameOver: func(r Result) { h.results = append(h.results, r) },
	})
	return h
}

// feed places an apple directly in front of the head and ticks.
func (h *harness) feed() {
	g := h.game
	next := g.collisionMgr.Wrap(g.snake.NextHead())
	g.foodMgr.Set([]types.Point{next, {}, {}})
	g.Tick()
}

func TestNewGameStartsInMenu(t *testing.T) {
	h := newHarness(t)
	assert.Equal(t, StateMenu, h.game.State())
	assert.Equal(t, 1, h.renderer.draws)
	assert.Len(t, h.renderer.last.Food, types.MaxFoods)
	assert.Empty(t, h.sound.played)

	// Ticks are ignored until a session starts.
	h.game.Tick()
	assert.Equal(t, types.Point{X: 10, Y: 10}, h.game.GetSnake().GetHead())
}

func TestStartThenMoveRight(t *testing.T) {
	h := newHarness(t)
	require.True(t, h.game.Start())
	assert.Equal(t, []Sound{SoundStart}, h.sound.played)
	assert.Equal(t, 2, h.renderer.draws)
	assert.NotEmpty(t, h.game.UUID)

	for i := 0; i < 3; i++ {
		h.game.Tick()
	}

	snake := h.game.GetSnake()
	assert.Equal(t, types.Point{X: 13, Y: 10}, snake.GetHead())
	assert.Equal(t, 1, snake.Len())
	assert.Equal(t, 0, h.game.Score())
	assert.Equal(t, 5, h.renderer.draws)
}

func TestEatingGrowsAndScores(t *testing.T) {
	h := newHarness(t)
	h.game.Start()
	g := h.game
	g.snake = entity.NewSnakeFromBody([]types.Point{{X: 5, Y: 10}, {X: 4, Y: 10}}, types.Right)
	g.foodMgr.Set([]types.Point{{X: 6, Y: 10}})

	g.Tick()

	want := []types.Point{{X: 6, Y: 10}, {X: 5, Y: 10}, {X: 4, Y: 10}}
	if diff := cmp.Diff(want, g.snake.Body); diff != "" {
		t.Errorf("snake body mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 10, g.Score())
	assert.Equal(t, 1, g.ApplesEaten())
	assert.Equal(t, types.MaxFoods, g.foodMgr.Count())
	assert.Equal(t, SoundEat, h.sound.played[len(h.sound.played)-1])
	assert.Equal(t, 10, h.renderer.last.Score)
}

func TestNonEatingMoveKeepsLength(t *testing.T) {
	h := newHarness(t)
	h.game.Start()
	g := h.game
	g.snake = entity.NewSnakeFromBody([]types.Point{{X: 5, Y: 10}, {X: 4, Y: 10}, {X: 3, Y: 10}}, types.Right)

	g.Tick()
	assert.Equal(t, 3, g.snake.Len())
	assert.Equal(t, types.Point{X: 6, Y: 10}, g.snake.GetHead())
	assert.Equal(t, types.Point{X: 4, Y: 10}, g.snake.Body[2])
}

func TestWrapAround(t *testing.T) {
	tests := []struct {
		name  string
		start types.Point
		dir   types.Direction
		want  types.Point
	}{
		{"right", types.Point{X: 19, Y: 10}, types.Right, types.Point{X: 0, Y: 10}},
		{"left", types.Point{X: 0, Y: 10}, types.Left, types.Point{X: 19, Y: 10}},
		{"down", types.Point{X: 3, Y: 19}, types.Down, types.Point{X: 3, Y: 0}},
		{"up", types.Point{X: 3, Y: 0}, types.Up, types.Point{X: 3, Y: 19}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t)
			h.game.Start()
			h.game.snake = entity.NewSnake(tt.start, tt.dir)
			h.game.Tick()
			assert.Equal(t, tt.want, h.game.GetSnake().GetHead())
			assert.Equal(t, StateRunning, h.game.State())
		})
	}
}

func TestSelfCollisionEndsSession(t *testing.T) {
	h := newHarness(t)
	h.kv[types.HighScoreKey] = "30"
	h.game.Start()
	g := h.game
	g.score = 40
	g.snake = entity.NewSnakeFromBody([]types.Point{
		{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}, {X: 4, Y: 6},
	}, types.Left)
	draws := h.renderer.draws

	require.True(t, g.ChangeDirection(types.Down))
	g.Tick()

	assert.Equal(t, StateGameOver, g.State())
	assert.False(t, g.scheduler.Running())
	assert.Equal(t, draws, h.renderer.draws, "terminal tick must not draw")
	assert.Equal(t, "40", h.kv[types.HighScoreKey])
	assert.Equal(t, SoundGameOver, h.sound.played[len(h.sound.played)-1])

	require.Len(t, h.results, 1)
	res := h.results[0]
	assert.Equal(t, 40, res.Record.Score)
	assert.True(t, res.NewHighScore)
	assert.Equal(t, 40, res.HighScore)
	assert.Equal(t, g.UUID, res.Record.ID)
	assert.Equal(t, &res, g.LastResult())
	assert.Equal(t, 1, g.Stats().Summary().GamesPlayed)

	// Further ticks are no-ops.
	g.Tick()
	assert.Equal(t, types.Point{X: 5, Y: 6}, g.snake.GetHead())
}

func TestObstacleCollisionEndsSession(t *testing.T) {
	h := newHarness(t)
	h.game.Start()
	g := h.game
	g.obstacleMgr.Advance(types.ProgressionStep)
	g.snake = entity.NewSnake(types.Point{X: 4, Y: 5}, types.Right)

	g.Tick()
	assert.Equal(t, StateGameOver, g.State())
	assert.False(t, h.results[0].NewHighScore)
}

func TestHighScoreNeverDecreases(t *testing.T) {
	h := newHarness(t)
	h.kv[types.HighScoreKey] = "500"
	h.game.Start()
	g := h.game
	g.score = 20
	g.snake = entity.NewSnakeFromBody([]types.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}}, types.Left)
	g.ChangeDirection(types.Down)
	g.Tick()

	require.Equal(t, StateGameOver, g.State())
	assert.Equal(t, "500", h.kv[types.HighScoreKey])
	assert.Equal(t, 500, g.HighScore())
}

// crash ends the running session with the given score by turning the head into its own body.
func crash(t *testing.T, g *Game, score int) {
	t.Helper()
	g.score = score
	g.snake = entity.NewSnakeFromBody([]types.Point{{X: 1, Y: 1}, {X: 2, Y: 1}, {X: 2, Y: 2}, {X: 1, Y: 2}, {X: 0, Y: 2}}, types.Left)
	g.ChangeDirection(types.Down)
	g.Tick()
	require.Equal(t, StateGameOver, g.State())
}

// failingReadKV answers the first Get and fails every later one.
type failingReadKV struct {
	memKV
	gets int
}

func (f *failingReadKV) Get(key string) (string, bool, error) {
	f.gets++
	if f.gets > 1 {
		return "", false, errors.New("store unavailable")
	}
	return f.memKV.Get(key)
}

func TestHighScoreSurvivesFailedReload(t *testing.T) {
	original := monitoring.Logf
	defer func() { monitoring.Logf = original }()
	monitoring.SetLogger(nil)

	kv := &failingReadKV{memKV: memKV{types.HighScoreKey: "500"}}
	g := NewGame(Options{HighScores: kv, Rand: zeroRand{}, Clock: &fakeClock{}})
	require.Equal(t, 500, g.HighScore())

	require.True(t, g.Start())
	assert.Equal(t, 500, g.HighScore())

	crash(t, g, 20)
	assert.Equal(t, "500", kv.memKV[types.HighScoreKey])
	assert.False(t, g.LastResult().NewHighScore)
	assert.Equal(t, 500, g.LastResult().HighScore)
}

func TestHighScoreKeptAcrossRestartWithoutStore(t *testing.T) {
	original := monitoring.Logf
	defer func() { monitoring.Logf = original }()
	monitoring.SetLogger(nil)

	g := NewGame(Options{Rand: zeroRand{}, Clock: &fakeClock{}})
	require.True(t, g.Start())
	crash(t, g, 40)
	require.Equal(t, 40, g.HighScore())

	require.True(t, g.Restart())
	assert.Equal(t, 40, g.HighScore())

	crash(t, g, 10)
	assert.Equal(t, 40, g.HighScore())
	assert.False(t, g.LastResult().NewHighScore)
}

func TestProgression(t *testing.T) {
	h := newHarness(t)
	h.game.Start()
	g := h.game
	levels := types.DefaultObstacleLevels

	for i := 0; i < 4; i++ {
		h.feed()
	}
	assert.Equal(t, types.BaseSpeed, g.Speed())
	assert.Empty(t, g.obstacleMgr.GetObstacles())
	assert.Equal(t, 0, g.Level())

	h.feed()
	assert.Equal(t, 5, g.ApplesEaten())
	assert.Equal(t, 280*time.Millisecond, g.Speed())
	assert.Equal(t, 280*time.Millisecond, g.scheduler.Interval())
	assert.Equal(t, levels[0], g.obstacleMgr.GetObstacles())

	for i := 0; i < 5; i++ {
		h.feed()
	}
	assert.Equal(t, 260*time.Millisecond, g.Speed())
	assert.Len(t, g.obstacleMgr.GetObstacles(), 6)

	for i := 0; i < 5; i++ {
		h.feed()
	}
	assert.Equal(t, 15, g.ApplesEaten())
	assert.Equal(t, 150, g.Score())
	assert.Equal(t, 240*time.Millisecond, g.Speed())
	assert.Len(t, g.obstacleMgr.GetObstacles(), 9)
	assert.Equal(t, 3, h.renderer.last.Level)
	assert.Equal(t, 3, g.Level())
	assert.Equal(t, StateRunning, g.State())
	assert.Equal(t, 16, g.snake.Len())
}

func TestSchedulerDrivesTicks(t *testing.T) {
	h := newHarness(t)
	g := h.game
	g.Start()

	h.clock.Advance(299 * time.Millisecond)
	assert.False(t, g.Poll())
	h.clock.Advance(time.Millisecond)
	assert.True(t, g.Poll())
	assert.Equal(t, types.Point{X: 11, Y: 10}, g.snake.GetHead())

	h.clock.Advance(300 * time.Millisecond)
	assert.True(t, g.Poll())
	assert.Equal(t, types.Point{X: 12, Y: 10}, g.snake.GetHead())
}

func TestPauseResume(t *testing.T) {
	h := newHarness(t)
	g := h.game

	assert.False(t, g.Pause(), "pause outside running is a no-op")
	assert.False(t, g.Resume(), "resume outside paused is a no-op")

	g.Start()
	h.clock.Advance(200 * time.Millisecond)
	require.True(t, g.Pause())
	assert.Equal(t, StatePaused, g.State())
	assert.False(t, g.Pause())

	h.clock.Advance(time.Second)
	assert.False(t, g.Poll())
	g.Tick()
	assert.Equal(t, types.Point{X: 10, Y: 10}, g.snake.GetHead())

	require.True(t, g.Resume())
	assert.False(t, g.Resume())
	assert.Equal(t, StateRunning, g.State())

	// Resuming restarts the phase.
	h.clock.Advance(200 * time.Millisecond)
	assert.False(t, g.Poll())
	h.clock.Advance(100 * time.Millisecond)
	assert.True(t, g.Poll())
}

func TestResumeKeepsReducedSpeed(t *testing.T) {
	h := newHarness(t)
	g := h.game
	g.Start()
	for i := 0; i < 5; i++ {
		h.feed()
	}
	g.Pause()
	g.Resume()
	assert.Equal(t, 280*time.Millisecond, g.scheduler.Interval())
}

func TestStartResetsSession(t *testing.T) {
	h := newHarness(t)
	g := h.game
	g.Start()
	assert.False(t, g.Start(), "start while running is ignored")

	for i := 0; i < 5; i++ {
		h.feed()
	}
	g.snake = entity.NewSnake(types.Point{X: 4, Y: 5}, types.Right)
	g.Tick()
	require.Equal(t, StateGameOver, g.State())
	first := g.UUID

	require.True(t, g.Restart())
	assert.NotEqual(t, first, g.UUID)
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, 0, g.ApplesEaten())
	assert.Equal(t, types.BaseSpeed, g.Speed())
	assert.Empty(t, g.obstacleMgr.GetObstacles())
	assert.Equal(t, []types.Point{{X: 10, Y: 10}}, g.snake.Body)
	assert.Equal(t, types.Right, g.snake.Direction)
	assert.Equal(t, types.MaxFoods, g.foodMgr.Count())
	assert.Nil(t, g.LastResult())
	assert.Equal(t, 50, g.HighScore())
}

func TestDirectionDebounce(t *testing.T) {
	h := newHarness(t)
	g := h.game
	g.Start()

	assert.False(t, g.ChangeDirection(types.Left), "reverse rejected")
	assert.True(t, g.ChangeDirection(types.Up))
	assert.False(t, g.ChangeDirection(types.Left), "second change in one tick rejected")
	assert.Equal(t, types.Up, g.snake.Direction)

	g.Tick()
	assert.Equal(t, types.Point{X: 10, Y: 9}, g.snake.GetHead())
	assert.True(t, g.ChangeDirection(types.Left))
}

func TestHandleActions(t *testing.T) {
	h := newHarness(t)
	g := h.game

	assert.True(t, g.Handle(ActionStart))
	assert.Equal(t, StateRunning, g.State())

	g.Handle(ActionDown)
	assert.Equal(t, types.Down, g.snake.Direction)

	g.Handle(ActionTogglePause)
	assert.Equal(t, StatePaused, g.State())
	g.Handle(ActionTogglePause)
	assert.Equal(t, StateRunning, g.State())

	g.Handle(ActionPause)
	assert.Equal(t, StatePaused, g.State())
	g.Handle(ActionResume)
	assert.Equal(t, StateRunning, g.State())

	assert.True(t, g.Handle(ActionNone))
	assert.False(t, g.Handle(ActionQuit))
}

func TestStatsPersistAcrossSessions(t *testing.T) {
	store := &sessionStore{}
	stats, err := manager.NewStatsManager(store)
	require.NoError(t, err)

	clock := &fakeClock{now: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)}
	original := monitoring.Logf
	defer func() { monitoring.Logf = original }()
	monitoring.SetLogger(nil)
	g := NewGame(Options{Stats: stats, Rand: zeroRand{}, Clock: clock})
	g.Start()
	clock.Advance(3 * time.Second)
	g.snake = entity.NewSnake(types.Point{X: 4, Y: 5}, types.Right)
	g.obstacleMgr.Advance(types.ProgressionStep)
	g.Tick()

	require.Len(t, store.recs, 1)
	assert.Equal(t, 3*time.Second, store.recs[0].Duration())
	assert.Equal(t, 1, store.recs[0].Level)
}

type sessionStore struct {
	recs []types.SessionRecord
}

func (s *sessionStore) AppendSession(rec types.SessionRecord) error {
	s.recs = append(s.recs, rec)
	return nil
}

func (s *sessionStore) Sessions() ([]types.SessionRecord, error) {
	return s.recs, nil
}
