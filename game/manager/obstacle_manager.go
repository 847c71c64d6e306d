package manager

import (
	"time"

	"snake-arcade/game/types"
)

// ObstacleManager owns the difficulty progression: the tick interval and the
// obstacle levels unlocked so far. Active obstacles only grow within a session.
type ObstacleManager struct {
	levels         [][]types.Point
	active         []types.Point
	step           int
	stepSize       int
	baseSpeed      time.Duration
	speedDecrement time.Duration
	speed          time.Duration
}

func NewObstacleManager(settings types.Settings) *ObstacleManager {
	om := &ObstacleManager{
		levels:         settings.ObstacleLevels,
		stepSize:       settings.ProgressionStep,
		baseSpeed:      settings.BaseSpeed,
		speedDecrement: settings.SpeedDecrement,
	}
	om.Reset()
	return om
}

// Reset returns to step 0 at base speed with no obstacles
func (om *ObstacleManager) Reset() {
	om.active = make([]types.Point, 0)
	om.step = 0
	om.speed = om.baseSpeed
}

// NextTarget is the apple count that triggers the next step
func (om *ObstacleManager) NextTarget() int {
	return om.stepSize * (om.step + 1)
}

// Advance evaluates progression once for the given apple count. It reports
// whether a step was taken and whether the tick interval changed.
func (om *ObstacleManager) Advance(applesEaten int) (advanced, speedChanged bool) {
	if applesEaten < om.NextTarget() {
		return false, false
	}
	if om.speed > om.speedDecrement {
		om.speed -= om.speedDecrement
		speedChanged = true
	}
	if om.step < len(om.levels) {
		om.active = append(om.active, om.levels[om.step]...)
	}
	om.step++
	return true, speedChanged
}

func (om *ObstacleManager) GetObstacles() []types.Point {
	return om.active
}

func (om *ObstacleManager) Speed() time.Duration {
	return om.speed
}

func (om *ObstacleManager) Step() int {
	return om.step
}
