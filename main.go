package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"the-snake/game"
	"the-snake/ui"

	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

func main() {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(handler))

	if err := run(); err != nil {
		slog.Error("snake exited", slog.Any("err", err))
		os.Exit(1)
	}
}

func run() error {
	cfg := game.DefaultConfig()
	logger := slog.Default().With(slog.String("session", uuid.NewString()))

	rng := rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	g, err := game.NewGame(cfg, rng, logger)
	if err != nil {
		return fmt.Errorf("create game: %w", err)
	}

	rl.SetTraceLogLevel(rl.LogWarning)
	rl.InitWindow(int32(cfg.ScreenWidth), int32(cfg.ScreenHeight), cfg.Title)
	if !rl.IsWindowReady() {
		return errors.New("initialize window")
	}
	defer rl.CloseWindow()

	// Only closing the window quits; ESC is an ordinary ignored key.
	rl.SetExitKey(rl.KeyNull)
	rl.SetTargetFPS(int32(cfg.TickRate))

	logger.Info("game started",
		slog.Int("width", g.Grid.Width),
		slog.Int("height", g.Grid.Height),
		slog.Int("tickRate", cfg.TickRate))

	keyboard := ui.NewKeyboard()
	renderer := ui.NewRenderer(cfg)

	for {
		dirs, quit := keyboard.Poll()
		if quit {
			break
		}
		for _, dir := range dirs {
			g.Steer(dir)
		}

		g.Tick()
		renderer.Draw(g)
	}

	logger.Info("game closed",
		slog.Int("ticks", g.Ticks),
		slog.Int("rounds", g.Stats.GamesPlayed()),
		slog.Int("bestLength", max(g.Snake.Length, g.Stats.MaxLength())),
		slog.Float64("avgLength", g.Stats.AverageLength()))
	return nil
}
