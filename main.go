package main

import (
	"flag"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/gdamore/tcell/v2"
	"golang.org/x/exp/rand"

	"snake-arcade/config"
	"snake-arcade/game"
	"snake-arcade/game/manager"
	"snake-arcade/storage"
	"snake-arcade/tui"
	"snake-arcade/ui"
)

var (
	colorTitle = color.New(color.FgGreen, color.Bold)
	colorLabel = color.New(color.FgCyan)
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to the ini configuration file")
	speed := flag.Int("speed", 0, "Starting tick interval in milliseconds (0 = from config)")
	frontend := flag.String("frontend", "", "Frontend to use: raylib or terminal")
	store := flag.String("store", "", "Storage driver: json, sqlite or memory")
	showStats := flag.Bool("stats", false, "Print the session history summary and exit")
	initConfig := flag.Bool("init-config", false, "Write the effective configuration to -config and exit")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fatal("Failed to load configuration: %v", err)
	}
	if *speed > 0 {
		cfg.BaseSpeedMs = *speed
	}
	if *frontend != "" {
		cfg.Frontend = *frontend
	}
	if *store != "" && *store != cfg.StoreDriver {
		cfg.StoreDriver = *store
		cfg.StorePath = defaultStorePath(*store)
	}
	if err := cfg.Validate(); err != nil {
		fatal("Invalid configuration: %v", err)
	}

	if *initConfig {
		if err := cfg.Save(*configPath); err != nil {
			fatal("%v", err)
		}
		color.Green("Configuration written to %s", *configPath)
		return
	}

	st, err := storage.Open(cfg.StoreDriver, cfg.StorePath)
	if err != nil {
		fatal("Failed to open %s store: %v", cfg.StoreDriver, err)
	}
	defer st.Close()

	stats, err := manager.NewStatsManager(st)
	if err != nil {
		color.Yellow("Session history unavailable: %v", err)
		stats, _ = manager.NewStatsManager(nil)
	}

	if *showStats {
		printSummary(stats)
		return
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	opts := game.Options{
		Settings:   cfg.Settings(),
		HighScores: st,
		Stats:      stats,
		Rand:       rand.New(rand.NewSource(seed)),
	}

	switch cfg.Frontend {
	case config.FrontendTerminal:
		runTerminal(cfg, opts)
	default:
		runWindow(cfg, opts)
	}
}

func runWindow(cfg *config.Config, opts game.Options) {
	app := ui.NewApp(cfg.Grid(), cfg.CellSize, cfg.FPS, cfg.Sound, cfg.AppleTexture)
	defer app.Close()

	opts.Renderer = app.Renderer()
	opts.Sound = app.Sound()
	app.Run(game.NewGame(opts))
}

func runTerminal(cfg *config.Config, opts game.Options) {
	s, err := tcell.NewScreen()
	if err != nil {
		fatal("Failed to open terminal: %v", err)
	}
	if err := s.Init(); err != nil {
		fatal("Failed to initialize terminal: %v", err)
	}
	defer s.Fini()
	s.Clear()
	s.HideCursor()

	r := tui.NewRenderer(s)
	opts.Renderer = r
	if cfg.Sound {
		opts.Sound = tui.NewBell(s)
	}
	tui.Run(s, r, game.NewGame(opts), cfg.FPS)
}

func printSummary(stats *manager.StatsManager) {
	sum := stats.Summary()
	colorTitle.Println("Snake session history")
	if sum.GamesPlayed == 0 {
		color.Yellow("No games played yet")
		return
	}
	value := func(format string, v ...interface{}) { color.White(format, v...) }
	colorLabel.Print("Games played:     ")
	value("%d", sum.GamesPlayed)
	colorLabel.Print("Average score:    ")
	value("%.1f", sum.AverageScore)
	colorLabel.Print("Median score:     ")
	value("%.1f", sum.MedianScore)
	colorLabel.Print("Best score:       ")
	value("%d", sum.MaxScore)
	colorLabel.Print("Most apples:      ")
	value("%d", sum.MaxApples)
	colorLabel.Print("Average duration: ")
	value("%v", sum.AverageDuration.Round(time.Second))

	colorTitle.Println("Recent games")
	for _, rec := range stats.Recent(10) {
		colorLabel.Printf("  %s  ", rec.StartTime.Format("2006-01-02 15:04"))
		value("score %d, apples %d, level %d", rec.Score, rec.ApplesEaten, rec.Level)
	}
}

func defaultStorePath(driver string) string {
	switch driver {
	case storage.DriverSQLite:
		return storage.DefaultSQLitePath
	case storage.DriverJSON:
		return storage.DefaultJSONPath
	default:
		return ""
	}
}

func fatal(format string, v ...interface{}) {
	color.Red(format, v...)
	os.Exit(1)
}
