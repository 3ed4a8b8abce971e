package game

import (
	"errors"
	"fmt"
	"time"

	"snake-arcade/game/types"
)

const (
	MinGridSize = 2
	MaxGridSize = 512

	DefaultRows          = 30
	DefaultCols          = 30
	DefaultTileSize      = 20
	DefaultInitialLength = 6
	DefaultTickInterval  = 80 * time.Millisecond
	DefaultScorePerFruit = 50
)

var (
	// ErrInvalidConfig is wrapped by every Validate failure
	ErrInvalidConfig = errors.New("invalid config")
	// ErrInvariant marks a broken simulation invariant. It is only ever panicked.
	ErrInvariant = errors.New("invariant violated")
)

// Config holds everything that was a process-wide constant in older builds
type Config struct {
	Rows          int
	Cols          int
	TileSize      int
	InitialLength int
	TickInterval  time.Duration
	ScorePerFruit int
	Edge          types.EdgePolicy
	Seed          uint64 // 0 picks a time-based seed
	AutoRestart   bool   // leave GameOver on the next tick instead of waiting for Restart
}

func DefaultConfig() Config {
	return Config{
		Rows:          DefaultRows,
		Cols:          DefaultCols,
		TileSize:      DefaultTileSize,
		InitialLength: DefaultInitialLength,
		TickInterval:  DefaultTickInterval,
		ScorePerFruit: DefaultScorePerFruit,
		Edge:          types.EdgeBounded,
		AutoRestart:   true,
	}
}

// Grid returns the board described by the config
func (c Config) Grid() types.Grid {
	return types.Grid{Width: c.Cols, Height: c.Rows}
}

// Validate checks the config for a playable board
func (c Config) Validate() error {
	if c.Rows < MinGridSize || c.Rows > MaxGridSize {
		return fmt.Errorf("%w: rows must be between %d and %d, got %d", ErrInvalidConfig, MinGridSize, MaxGridSize, c.Rows)
	}
	if c.Cols < MinGridSize || c.Cols > MaxGridSize {
		return fmt.Errorf("%w: cols must be between %d and %d, got %d", ErrInvalidConfig, MinGridSize, MaxGridSize, c.Cols)
	}
	if c.TileSize < 1 {
		return fmt.Errorf("%w: tile size must be positive, got %d", ErrInvalidConfig, c.TileSize)
	}
	// the starting snake lies on row 0; rows >= 2 leaves room for the fruit
	if c.InitialLength < 1 || c.InitialLength > c.Cols {
		return fmt.Errorf("%w: initial length must be between 1 and cols (%d), got %d", ErrInvalidConfig, c.Cols, c.InitialLength)
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("%w: tick interval must be positive, got %s", ErrInvalidConfig, c.TickInterval)
	}
	if c.ScorePerFruit < 0 {
		return fmt.Errorf("%w: score per fruit must not be negative, got %d", ErrInvalidConfig, c.ScorePerFruit)
	}
	if c.Edge != types.EdgeBounded && c.Edge != types.EdgeWrap {
		return fmt.Errorf("%w: unknown edge policy %d", ErrInvalidConfig, c.Edge)
	}
	return nil
}
