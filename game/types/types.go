package types

import "time"

// Point is a single cell on the game grid
type Point struct {
	X, Y int
}

// Add returns p moved by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// Grid represents the game grid dimensions
type Grid struct {
	Width  int
	Height int
}

// Contains reports whether p lies inside the grid
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Direction is one of the four cardinal headings
type Direction int

const (
	Up Direction = iota
	Right
	Down
	Left
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	default:
		return "unknown"
	}
}

// Delta returns the unit vector for the direction. Up decreases Y.
func (d Direction) Delta() Point {
	switch d {
	case Up:
		return Point{X: 0, Y: -1}
	case Right:
		return Point{X: 1, Y: 0}
	case Down:
		return Point{X: 0, Y: 1}
	case Left:
		return Point{X: -1, Y: 0}
	default:
		return Point{}
	}
}

// Opposite returns the 180 degree reverse of d
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	default:
		return d
	}
}

// Game constants
const (
	CellSize        = 20
	BaseSpeed       = 300 * time.Millisecond
	SpeedDecrement  = 20 * time.Millisecond
	ProgressionStep = 5  // Apples per difficulty step
	MaxFoods        = 3  // Food kept on the board
	FoodScore       = 10 // Points per apple
	HighScoreKey    = "snakeHighScore"
)

// DefaultObstacleLevels are appended to the board one level per progression step.
var DefaultObstacleLevels = [][]Point{
	{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 5, Y: 7}},
	{{X: 15, Y: 15}, {X: 16, Y: 15}, {X: 17, Y: 15}},
	{{X: 10, Y: 2}, {X: 10, Y: 3}, {X: 11, Y: 3}},
}

// Settings holds the tunables of a session
type Settings struct {
	Grid            Grid
	CellSize        int
	BaseSpeed       time.Duration
	SpeedDecrement  time.Duration
	ProgressionStep int
	MaxFoods        int
	FoodScore       int
	Start           Point
	ObstacleLevels  [][]Point
}

// DefaultSettings returns the classic 400x400 board with 20px cells.
func DefaultSettings() Settings {
	return Settings{
		Grid:            Grid{Width: 400 / CellSize, Height: 400 / CellSize},
		CellSize:        CellSize,
		BaseSpeed:       BaseSpeed,
		SpeedDecrement:  SpeedDecrement,
		ProgressionStep: ProgressionStep,
		MaxFoods:        MaxFoods,
		FoodScore:       FoodScore,
		Start:           Point{X: 10, Y: 10},
		ObstacleLevels:  DefaultObstacleLevels,
	}
}

// SessionRecord is the summary of one finished session
type SessionRecord struct {
	ID          string    `json:"id"`
	StartTime   time.Time `json:"startTime"`
	EndTime     time.Time `json:"endTime"`
	Score       int       `json:"score"`
	ApplesEaten int       `json:"applesEaten"`
	Level       int       `json:"level"`
}

// Duration returns how long the session lasted
func (r SessionRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}
