package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"snake-arcade/game/types"
)

func TestLoadMissingFileGivesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "absent.ini"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())

	s := cfg.Settings()
	assert.Equal(t, types.DefaultSettings(), s)
}

func TestLoadOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.ini")
	content := `[game]
width = 600
height = 400
base_speed_ms = 200
seed = 7

[storage]
driver = sqlite
path = scores.db

[display]
frontend = terminal
sound = false
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, types.Grid{Width: 30, Height: 20}, cfg.Grid())
	assert.Equal(t, uint64(7), cfg.Seed)
	assert.Equal(t, "sqlite", cfg.StoreDriver)
	assert.Equal(t, "scores.db", cfg.StorePath)
	assert.Equal(t, FrontendTerminal, cfg.Frontend)
	assert.False(t, cfg.Sound)
	assert.Equal(t, 60, cfg.FPS)

	s := cfg.Settings()
	assert.Equal(t, 200*time.Millisecond, s.BaseSpeed)
	assert.Equal(t, 20*time.Millisecond, s.SpeedDecrement)
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.ini")
	cfg := Default()
	cfg.MaxFoods = 5
	cfg.StoreDriver = "memory"
	cfg.Seed = 99
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
		target error
	}{
		{"non integral grid", func(c *Config) { c.Width = 410 }, nil},
		{"zero cell", func(c *Config) { c.CellSize = 0 }, nil},
		{"negative speed", func(c *Config) { c.BaseSpeedMs = -1 }, nil},
		{"start outside grid", func(c *Config) { c.StartX = 40 }, nil},
		{"bad driver", func(c *Config) { c.StoreDriver = "redis" }, ErrUnknownDriver},
		{"bad frontend", func(c *Config) { c.Frontend = "web" }, ErrUnknownFrontend},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestSettingsDropsOffGridObstacles(t *testing.T) {
	cfg := Default()
	cfg.Width = 320
	cfg.Height = 320

	s := cfg.Settings()
	assert.Equal(t, types.Grid{Width: 16, Height: 16}, s.Grid)
	require.Len(t, s.ObstacleLevels, 3)
	assert.Len(t, s.ObstacleLevels[0], 3)
	assert.Equal(t, []types.Point{{X: 15, Y: 15}}, s.ObstacleLevels[1])
	assert.Len(t, s.ObstacleLevels[2], 3)
}
