package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

type CollisionManager struct {
	grid types.Grid
	edge types.EdgePolicy
}

func NewCollisionManager(grid types.Grid, edge types.EdgePolicy) *CollisionManager {
	return &CollisionManager{
		grid: grid,
		edge: edge,
	}
}

// NextHead returns the candidate head for the snake's current heading.
// Under the wrap policy the candidate is folded back into the grid.
func (cm *CollisionManager) NextHead(snake *entity.Snake) types.Point {
	next := snake.AdvanceHead()
	if cm.edge == types.EdgeWrap {
		next = cm.grid.Wrap(next)
	}
	return next
}

// CheckCollision classifies a move of snake onto pos.
// Self collision is checked first, against every segment except the tail
// cell the move is about to vacate.
func (cm *CollisionManager) CheckCollision(pos types.Point, snake *entity.Snake) types.Outcome {
	if snake.Heading != types.None && snake.Occupies(pos, true) {
		return types.OutcomeSelfCollision
	}
	if cm.isWallCollision(pos) {
		return types.OutcomeWallCollision
	}
	return types.OutcomeNone
}

// isWallCollision checks if a position collides with walls
func (cm *CollisionManager) isWallCollision(pos types.Point) bool {
	if cm.edge == types.EdgeWrap {
		return false
	}
	return !cm.grid.InBounds(pos)
}

// IsFoodCollision checks if a position collides with food
func (cm *CollisionManager) IsFoodCollision(pos types.Point, food *entity.Food) bool {
	return pos == food.Pos
}

// ValidateSpawnPosition checks if a position can hold food
func (cm *CollisionManager) ValidateSpawnPosition(pos types.Point, snake *entity.Snake) bool {
	return cm.grid.InBounds(pos) && !snake.Occupies(pos, false)
}
