package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"snake-arcade/game"
	"snake-arcade/game/types"
	"snake-arcade/ui"
	"snake-arcade/ui/terminal"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"
)

const (
	frontendDesktop  = "desktop"
	frontendTerminal = "terminal"
)

func main() {
	// Load .env file if it exists (ignore error if not found)
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newCommand().Run(ctx, os.Args); err != nil {
		log.Fatalf("snake: %v", err)
	}
}

func newCommand() *cli.Command {
	def := game.DefaultConfig()

	return &cli.Command{
		Name:  "snake",
		Usage: "play snake in a window or a terminal",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "rows",
				Usage:   "board height in cells",
				Value:   def.Rows,
				Sources: cli.EnvVars("SNAKE_ROWS"),
			},
			&cli.IntFlag{
				Name:    "cols",
				Usage:   "board width in cells",
				Value:   def.Cols,
				Sources: cli.EnvVars("SNAKE_COLS"),
			},
			&cli.IntFlag{
				Name:    "tile-size",
				Usage:   "pixels per cell in the desktop window",
				Value:   def.TileSize,
				Sources: cli.EnvVars("SNAKE_TILE_SIZE"),
			},
			&cli.IntFlag{
				Name:    "length",
				Usage:   "starting snake length",
				Value:   def.InitialLength,
				Sources: cli.EnvVars("SNAKE_LENGTH"),
			},
			&cli.DurationFlag{
				Name:    "tick",
				Usage:   "time between snake steps",
				Value:   def.TickInterval,
				Sources: cli.EnvVars("SNAKE_TICK"),
			},
			&cli.StringFlag{
				Name:    "edge",
				Usage:   "edge policy: bounded or wrap",
				Value:   def.Edge.String(),
				Sources: cli.EnvVars("SNAKE_EDGE"),
				Validator: func(s string) error {
					_, err := types.ParseEdgePolicy(s)
					return err
				},
			},
			&cli.Uint64Flag{
				Name:    "seed",
				Usage:   "food placement seed, 0 for time based",
				Sources: cli.EnvVars("SNAKE_SEED"),
			},
			&cli.BoolFlag{
				Name:    "auto-restart",
				Usage:   "start a new round on the tick after game over",
				Value:   def.AutoRestart,
				Sources: cli.EnvVars("SNAKE_AUTO_RESTART"),
			},
			&cli.StringFlag{
				Name:    "frontend",
				Usage:   "desktop or terminal",
				Value:   frontendDesktop,
				Sources: cli.EnvVars("SNAKE_FRONTEND"),
				Validator: func(s string) error {
					if s != frontendDesktop && s != frontendTerminal {
						return fmt.Errorf("unknown frontend %q", s)
					}
					return nil
				},
			},
			&cli.BoolFlag{
				Name:    "debug",
				Usage:   "log round events to stderr",
				Sources: cli.EnvVars("SNAKE_DEBUG"),
			},
		},
		Action: run,
	}
}

func configFromCommand(cmd *cli.Command) (game.Config, error) {
	edge, err := types.ParseEdgePolicy(cmd.String("edge"))
	if err != nil {
		return game.Config{}, err
	}

	cfg := game.DefaultConfig()
	cfg.Rows = cmd.Int("rows")
	cfg.Cols = cmd.Int("cols")
	cfg.TileSize = cmd.Int("tile-size")
	cfg.InitialLength = cmd.Int("length")
	cfg.TickInterval = cmd.Duration("tick")
	cfg.Edge = edge
	cfg.Seed = cmd.Uint64("seed")
	cfg.AutoRestart = cmd.Bool("auto-restart")

	return cfg, cfg.Validate()
}

func run(ctx context.Context, cmd *cli.Command) error {
	cfg, err := configFromCommand(cmd)
	if err != nil {
		return err
	}

	logger := log.New(io.Discard, "", 0)
	if cmd.Bool("debug") {
		logger = log.New(os.Stderr, "snake: ", log.LstdFlags|log.Lmicroseconds)
	}

	frontend := cmd.String("frontend")
	if frontend == frontendTerminal && cmd.Bool("debug") {
		// tcell owns the terminal; stderr output would corrupt the board
		logger.SetOutput(io.Discard)
	}

	g, err := game.New(cfg, game.WithLogger(logger))
	if err != nil {
		return err
	}

	switch frontend {
	case frontendTerminal:
		return terminal.Run(ctx, g, logger)
	default:
		return ui.RunDesktop(ctx, g, logger)
	}
}
