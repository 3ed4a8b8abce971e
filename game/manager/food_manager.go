package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// RandSource is the only randomness the simulation needs.
// *rand.Rand from golang.org/x/exp/rand satisfies it.
type RandSource interface {
	Intn(n int) int
}

type FoodManager struct {
	grid         types.Grid
	rng          RandSource
	collisionMgr *CollisionManager
}

func NewFoodManager(grid types.Grid, rng RandSource, collisionMgr *CollisionManager) *FoodManager {
	return &FoodManager{
		grid:         grid,
		rng:          rng,
		collisionMgr: collisionMgr,
	}
}

// FreeCells lists every cell not covered by the snake, row by row
func (fm *FoodManager) FreeCells(snake *entity.Snake) []types.Point {
	free := make([]types.Point, 0, max(fm.grid.Cells()-snake.Len(), 0))
	for y := 0; y < fm.grid.Height; y++ {
		for x := 0; x < fm.grid.Width; x++ {
			p := types.Point{X: x, Y: y}
			if fm.collisionMgr.ValidateSpawnPosition(p, snake) {
				free = append(free, p)
			}
		}
	}
	return free
}

// Spawn moves food onto a uniformly drawn free cell and advances its flavor.
// It returns false, leaving food untouched, when the snake covers the board.
func (fm *FoodManager) Spawn(food *entity.Food, snake *entity.Snake) bool {
	free := fm.FreeCells(snake)
	if len(free) == 0 {
		return false
	}
	food.Pos = free[fm.rng.Intn(len(free))]
	food.Type = food.Type.Next()
	return true
}
