package ui

import (
	"context"
	"log"
	"time"

	"snake-arcade/game"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RunDesktop opens a raylib window and drives g until the window closes,
// Escape/Q is pressed or ctx is cancelled.
func RunDesktop(ctx context.Context, g *game.Game, logger *log.Logger) error {
	cfg := g.Config()
	width, height := WindowSize(cfg)

	rl.InitWindow(width, height, "snake")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	rl.SetExitKey(rl.KeyEscape)

	renderer := NewRenderer(cfg.TileSize)
	logger.Printf("desktop window %dx%d opened", width, height)

	for !rl.WindowShouldClose() {
		if ctx.Err() != nil || rl.IsKeyPressed(rl.KeyQ) {
			break
		}

		for _, cmd := range PollCommands() {
			g.Apply(cmd)
		}

		dt := time.Duration(float64(rl.GetFrameTime()) * float64(time.Second))
		g.ApplyTick(dt)

		renderer.Draw(g.Snapshot(), g.Records())
	}

	logger.Printf("desktop window closed after %d games", g.Stats().GetGamesPlayed())
	return nil
}
