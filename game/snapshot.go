package game

import "snake-arcade/game/types"

// Snapshot is the read-only view a renderer consumes
type Snapshot struct {
	State       types.GameState
	Outcome     types.Outcome
	Snake       []types.Point // head first
	Food        types.Point
	FoodType    types.FoodType
	Heading     types.Direction
	Score       int
	HighScore   int
	GamesPlayed int
	Round       string
	Grid        types.Grid
	TileSize    int
}

// Won reports whether the round ended with the board full
func (s Snapshot) Won() bool {
	return s.State == types.GameOver && s.Outcome.Won()
}

func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		State:       g.state,
		Outcome:     g.outcome,
		Snake:       g.snake.Segments(),
		Food:        g.food.Pos,
		FoodType:    g.food.Type,
		Heading:     g.snake.Heading,
		Score:       g.Score(),
		HighScore:   g.stateMgr.GetHighScore(),
		GamesPlayed: g.stateMgr.GetGamesPlayed(),
		Round:       g.stateMgr.CurrentRound(),
		Grid:        g.grid,
		TileSize:    g.config.TileSize,
	}
}
