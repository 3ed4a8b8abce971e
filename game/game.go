// Package game drives a single-player snake round: it advances the snake on
// a fixed tick, resolves collisions, respawns food and exposes a read-only
// Snapshot for whatever frontend draws it.
package game

import (
	"fmt"
	"io"
	"log"
	"time"

	"snake-arcade/game/entity"
	"snake-arcade/game/manager"
	"snake-arcade/game/types"

	"golang.org/x/exp/rand"
)

// Option customizes a Game at construction
type Option func(*Game)

// WithRand replaces the food placement source
func WithRand(rng manager.RandSource) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(g *Game) {
		g.logger = logger
	}
}

// WithClock replaces the wall clock used for round statistics
func WithClock(now func() time.Time) Option {
	return func(g *Game) {
		g.now = now
	}
}

// Game is owned by a single driving loop and is not safe for concurrent use
type Game struct {
	config  Config
	grid    types.Grid
	snake   *entity.Snake
	food    *entity.Food
	state   types.GameState
	outcome types.Outcome
	timer   time.Duration

	rng    manager.RandSource
	logger *log.Logger
	now    func() time.Time

	collisionMgr *manager.CollisionManager
	foodMgr      *manager.FoodManager
	spawnMgr     *manager.SpawnManager
	stateMgr     *manager.StateManager
}

func New(cfg Config, opts ...Option) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g := &Game{
		config: cfg,
		grid:   cfg.Grid(),
		logger: log.New(io.Discard, "", 0),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		seed := cfg.Seed
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		g.rng = rand.New(rand.NewSource(seed))
	}

	g.collisionMgr = manager.NewCollisionManager(g.grid, cfg.Edge)
	g.foodMgr = manager.NewFoodManager(g.grid, g.rng, g.collisionMgr)
	g.spawnMgr = manager.NewSpawnManager(g.grid, cfg.InitialLength)
	g.stateMgr = manager.NewStateManager()
	g.stateMgr.SetClock(g.now)

	g.food = entity.NewFood()
	g.startRound()

	return g, nil
}

// startRound puts a fresh snake and fruit on the board
func (g *Game) startRound() {
	g.snake = g.spawnMgr.ResetSnake()
	*g.food = *entity.NewFood()
	g.state = types.Playing
	g.outcome = types.OutcomeNone
	g.timer = 0

	round := g.stateMgr.StartRound()
	g.logger.Printf("round %s started on a %dx%d board (%s edges)", round, g.grid.Width, g.grid.Height, g.config.Edge)

	if !g.foodMgr.Spawn(g.food, g.snake) {
		g.endRound(types.OutcomeBoardFull)
	}
}

func (g *Game) endRound(outcome types.Outcome) {
	g.state = types.GameOver
	g.outcome = outcome
	record := g.stateMgr.EndRound(g.Score(), outcome)
	g.logger.Printf("round %s over: %s, score %d, length %d", record.Round, outcome, record.Score, g.snake.Len())
}

// ApplyTick advances the simulation by the real time elapsed since the
// previous frame. The snake moves at most once per call and only when the
// accumulated time reaches the tick interval.
func (g *Game) ApplyTick(dt time.Duration) {
	switch g.state {
	case types.Paused:
		return
	case types.GameOver:
		if g.config.AutoRestart {
			g.startRound()
		}
		return
	}

	g.timer += dt
	if g.timer < g.config.TickInterval {
		return
	}
	g.timer = 0

	next := g.collisionMgr.NextHead(g.snake)
	if outcome := g.collisionMgr.CheckCollision(next, g.snake); outcome != types.OutcomeNone {
		g.endRound(outcome)
		return
	}

	if g.snake.Heading == types.None {
		return
	}

	g.snake.Move(next)
	if g.collisionMgr.IsFoodCollision(next, g.food) {
		if !g.foodMgr.Spawn(g.food, g.snake) {
			g.endRound(types.OutcomeBoardFull)
		}
	} else {
		g.snake.RemoveTail()
	}

	g.checkInvariants()
}

func (g *Game) checkInvariants() {
	mustHold(g.snake.Len() >= 1, "snake body is empty")
	mustHold(g.grid.InBounds(g.snake.Head()), "head %s left the %dx%d grid", g.snake.Head(), g.grid.Width, g.grid.Height)
	mustHold(!g.snake.CollideWithTail(), "head %s overlaps the body", g.snake.Head())
}

func mustHold(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Errorf("%w: %s", ErrInvariant, fmt.Sprintf(format, args...)))
	}
}

// ApplyDirection steers the snake. Ignored unless a round is being played.
func (g *Game) ApplyDirection(dir types.Direction) {
	if g.state != types.Playing {
		return
	}
	g.snake.SetDirection(dir)
}

// TogglePause switches between Playing and Paused. It does nothing after
// the round has ended.
func (g *Game) TogglePause() {
	switch g.state {
	case types.Playing:
		g.state = types.Paused
	case types.Paused:
		g.state = types.Playing
	}
}

// Restart starts a new round. Honored only while Paused or GameOver.
func (g *Game) Restart() bool {
	if g.state == types.Playing {
		return false
	}
	g.logger.Printf("restart requested from %s", g.state)
	g.startRound()
	return true
}

// Apply dispatches an inbound command
func (g *Game) Apply(cmd types.Command) {
	if dir, ok := cmd.Direction(); ok {
		g.ApplyDirection(dir)
		return
	}
	switch cmd {
	case types.CmdTogglePause:
		g.TogglePause()
	case types.CmdRestart:
		g.Restart()
	}
}

func (g *Game) State() types.GameState {
	return g.state
}

func (g *Game) Outcome() types.Outcome {
	return g.outcome
}

// Score is the fruit eaten this round times the per-fruit value
func (g *Game) Score() int {
	return (g.snake.Len() - g.spawnMgr.InitialLength()) * g.config.ScorePerFruit
}

func (g *Game) Config() Config {
	return g.config
}

// Records returns the finished rounds of this session
func (g *Game) Records() []manager.GameRecord {
	return g.stateMgr.GetRecords()
}

// Stats exposes the session statistics
func (g *Game) Stats() *manager.StateManager {
	return g.stateMgr
}
