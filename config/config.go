package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/ini.v1"

	"snake-arcade/game/types"
	"snake-arcade/storage"
)

// DefaultConfigPath is where the game looks for its ini file.
const DefaultConfigPath = "snake.ini"

const (
	FrontendRaylib   = "raylib"
	FrontendTerminal = "terminal"
)

var (
	ErrUnknownDriver   = errors.New("unknown storage driver")
	ErrUnknownFrontend = errors.New("unknown frontend")
)

type Config struct {
	// [game]
	Width            int
	Height           int
	CellSize         int
	BaseSpeedMs      int
	SpeedDecrementMs int
	ProgressionStep  int
	MaxFoods         int
	StartX           int
	StartY           int
	Seed             uint64

	// [storage]
	StoreDriver string
	StorePath   string

	// [display]
	Frontend     string
	FPS          int
	Sound        bool
	AppleTexture string
}

// Default returns the classic 400x400 board at 300ms per tick.
func Default() *Config {
	return &Config{
		Width:            400,
		Height:           400,
		CellSize:         types.CellSize,
		BaseSpeedMs:      int(types.BaseSpeed / time.Millisecond),
		SpeedDecrementMs: int(types.SpeedDecrement / time.Millisecond),
		ProgressionStep:  types.ProgressionStep,
		MaxFoods:         types.MaxFoods,
		StartX:           10,
		StartY:           10,
		StoreDriver:      storage.DriverJSON,
		StorePath:        storage.DefaultJSONPath,
		Frontend:         FrontendRaylib,
		FPS:              60,
		Sound:            true,
		AppleTexture:     "apple.png",
	}
}

// Load reads path on top of the defaults. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	file, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config %s: %w", path, err)
	}

	game := file.Section("game")
	cfg.Width = game.Key("width").MustInt(cfg.Width)
	cfg.Height = game.Key("height").MustInt(cfg.Height)
	cfg.CellSize = game.Key("cell_size").MustInt(cfg.CellSize)
	cfg.BaseSpeedMs = game.Key("base_speed_ms").MustInt(cfg.BaseSpeedMs)
	cfg.SpeedDecrementMs = game.Key("speed_decrement_ms").MustInt(cfg.SpeedDecrementMs)
	cfg.ProgressionStep = game.Key("progression_step").MustInt(cfg.ProgressionStep)
	cfg.MaxFoods = game.Key("max_foods").MustInt(cfg.MaxFoods)
	cfg.StartX = game.Key("start_x").MustInt(cfg.StartX)
	cfg.StartY = game.Key("start_y").MustInt(cfg.StartY)
	cfg.Seed = game.Key("seed").MustUint64(cfg.Seed)

	store := file.Section("storage")
	cfg.StoreDriver = store.Key("driver").MustString(cfg.StoreDriver)
	cfg.StorePath = store.Key("path").MustString(cfg.StorePath)

	display := file.Section("display")
	cfg.Frontend = display.Key("frontend").MustString(cfg.Frontend)
	cfg.FPS = display.Key("fps").MustInt(cfg.FPS)
	cfg.Sound = display.Key("sound").MustBool(cfg.Sound)
	cfg.AppleTexture = display.Key("apple_texture").MustString(cfg.AppleTexture)

	return cfg, nil
}

// Save writes the configuration as an ini file
func (c *Config) Save(path string) error {
	file := ini.Empty()

	game := file.Section("game")
	game.Key("width").SetValue(strconv.Itoa(c.Width))
	game.Key("height").SetValue(strconv.Itoa(c.Height))
	game.Key("cell_size").SetValue(strconv.Itoa(c.CellSize))
	game.Key("base_speed_ms").SetValue(strconv.Itoa(c.BaseSpeedMs))
	game.Key("speed_decrement_ms").SetValue(strconv.Itoa(c.SpeedDecrementMs))
	game.Key("progression_step").SetValue(strconv.Itoa(c.ProgressionStep))
	game.Key("max_foods").SetValue(strconv.Itoa(c.MaxFoods))
	game.Key("start_x").SetValue(strconv.Itoa(c.StartX))
	game.Key("start_y").SetValue(strconv.Itoa(c.StartY))
	game.Key("seed").SetValue(strconv.FormatUint(c.Seed, 10))

	store := file.Section("storage")
	store.Key("driver").SetValue(c.StoreDriver)
	store.Key("path").SetValue(c.StorePath)

	display := file.Section("display")
	display.Key("frontend").SetValue(c.Frontend)
	display.Key("fps").SetValue(strconv.Itoa(c.FPS))
	display.Key("sound").SetValue(strconv.FormatBool(c.Sound))
	display.Key("apple_texture").SetValue(c.AppleTexture)

	if err := file.SaveTo(path); err != nil {
		return fmt.Errorf("save config %s: %w", path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("cell_size must be positive, got %d", c.CellSize)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("board size must be positive, got %dx%d", c.Width, c.Height)
	}
	if c.Width%c.CellSize != 0 || c.Height%c.CellSize != 0 {
		return fmt.Errorf("board %dx%d is not a whole number of %d px cells", c.Width, c.Height, c.CellSize)
	}
	if c.BaseSpeedMs <= 0 || c.SpeedDecrementMs <= 0 {
		return fmt.Errorf("speeds must be positive, got base %dms decrement %dms", c.BaseSpeedMs, c.SpeedDecrementMs)
	}
	if c.ProgressionStep <= 0 || c.MaxFoods <= 0 {
		return fmt.Errorf("progression_step and max_foods must be positive")
	}
	if c.FPS <= 0 {
		return fmt.Errorf("fps must be positive, got %d", c.FPS)
	}

	grid := c.Grid()
	if !grid.Contains(types.Point{X: c.StartX, Y: c.StartY}) {
		return fmt.Errorf("start (%d,%d) is outside the %dx%d grid", c.StartX, c.StartY, grid.Width, grid.Height)
	}

	switch c.StoreDriver {
	case storage.DriverJSON, storage.DriverSQLite, storage.DriverMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownDriver, c.StoreDriver)
	}
	switch c.Frontend {
	case FrontendRaylib, FrontendTerminal:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFrontend, c.Frontend)
	}
	return nil
}

func (c *Config) Grid() types.Grid {
	if c.CellSize <= 0 {
		return types.Grid{}
	}
	return types.Grid{Width: c.Width / c.CellSize, Height: c.Height / c.CellSize}
}

// Settings converts the configuration into game settings. Obstacle levels that
// fall outside a smaller grid are dropped cell by cell.
func (c *Config) Settings() types.Settings {
	grid := c.Grid()
	levels := make([][]types.Point, 0, len(types.DefaultObstacleLevels))
	for _, level := range types.DefaultObstacleLevels {
		cells := make([]types.Point, 0, len(level))
		for _, p := range level {
			if grid.Contains(p) {
				cells = append(cells, p)
			}
		}
		levels = append(levels, cells)
	}

	return types.Settings{
		Grid:            grid,
		CellSize:        c.CellSize,
		BaseSpeed:       time.Duration(c.BaseSpeedMs) * time.Millisecond,
		SpeedDecrement:  time.Duration(c.SpeedDecrementMs) * time.Millisecond,
		ProgressionStep: c.ProgressionStep,
		MaxFoods:        c.MaxFoods,
		FoodScore:       types.FoodScore,
		Start:           types.Point{X: c.StartX, Y: c.StartY},
		ObstacleLevels:  levels,
	}
}
