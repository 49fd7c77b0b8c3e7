package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"snake-duel/config"
	"snake-duel/game"
	"snake-duel/logging"
	"snake-duel/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/go-kit/log"
	"github.com/go-kit/log/level"
)

// maxHeadlessTicks bounds a headless run.
const maxHeadlessTicks = 1_000_000

func main() {
	speed := flag.Int("speed", 0, "Tick interval in milliseconds (0 = use config)")
	turns := flag.Int("turns", 0, "Number of turns to play (0 = use config)")
	gridSize := flag.Int("grid", 0, "Grid width and height in cells (0 = use config)")
	seed := flag.Uint64("seed", 0, "Food placement seed (0 = use config, then clock)")
	envFile := flag.String("env", ".env", "Optional dotenv file")
	logLevel := flag.String("log-level", "", "debug, info, warn or error")
	headless := flag.Bool("headless", false, "Run without a window and print the report as JSON")
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if *speed > 0 {
		cfg.TickInterval = time.Duration(*speed) * time.Millisecond
	}
	if *turns > 0 {
		cfg.TotalTurns = *turns
	}
	if *gridSize > 0 {
		cfg.GridSize = *gridSize
	}
	if *seed > 0 {
		cfg.Seed = *seed
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	g, err := game.NewGame(cfg, logger)
	if err != nil {
		level.Error(logger).Log("msg", "failed to create game", "err", err)
		os.Exit(1)
	}

	if *headless {
		if err := runHeadless(g, logger); err != nil {
			level.Error(logger).Log("msg", "headless run failed", "err", err)
			os.Exit(1)
		}
		return
	}
	runWindow(g, logger, cfg.TickInterval)
}

func runHeadless(g *game.Game, logger log.Logger) error {
	for ticks := 0; !g.Complete(); ticks++ {
		if ticks >= maxHeadlessTicks {
			return errors.New("match did not complete")
		}
		if err := g.Tick(); err != nil {
			return err
		}
	}

	report := g.Report()
	level.Info(logger).Log("msg", "match finished", "outcome", report.Outcome)

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}

func runWindow(g *game.Game, logger log.Logger, interval time.Duration) {
	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(1280, 800, "Snake Duel - A* vs Dijkstra")
	rl.SetWindowState(rl.FlagWindowResizable)
	defer rl.CloseWindow()

	rl.SetTargetFPS(60)

	renderer := ui.NewRenderer()
	lastUpdate := time.Now()

	for !rl.WindowShouldClose() {
		if rl.IsKeyPressed(rl.KeyQ) {
			break
		}
		if rl.IsKeyPressed(rl.KeyR) {
			if err := g.Reset(); err != nil {
				level.Error(logger).Log("msg", "reset failed", "err", err)
			}
			lastUpdate = time.Now()
		}

		if rl.IsWindowResized() {
			renderer.UpdateDimensions()
		}

		// Update game state at fixed interval
		if time.Since(lastUpdate) >= interval {
			if err := g.Tick(); err != nil {
				level.Error(logger).Log("msg", "tick failed", "err", err)
			}
			lastUpdate = time.Now()
		}

		renderer.Draw(g.Snapshot())
	}

	report := g.Report()
	level.Info(logger).Log("msg", "window closed", "match", report.UUID,
		"turn", report.Turn, "outcome", report.Outcome)
}
