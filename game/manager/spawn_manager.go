package manager

import (
	"snake-arcade/game/entity"
	"snake-arcade/game/types"
)

// SpawnManager owns the player's snake and rebuilds it between rounds
type SpawnManager struct {
	grid          types.Grid
	initialLength int
	currentSnake  *entity.Snake
}

func NewSpawnManager(grid types.Grid, initialLength int) *SpawnManager {
	return &SpawnManager{
		grid:          grid,
		initialLength: initialLength,
	}
}

// ResetSnake creates the starting snake on row 0, or rebuilds the existing
// one in place so holders of the pointer see the fresh segment
func (sm *SpawnManager) ResetSnake() *entity.Snake {
	fresh := entity.NewSnake(sm.initialLength, 0)
	if sm.currentSnake == nil {
		sm.currentSnake = fresh
		return fresh
	}
	*sm.currentSnake = *fresh
	return sm.currentSnake
}

func (sm *SpawnManager) GetSnake() *entity.Snake {
	return sm.currentSnake
}

func (sm *SpawnManager) InitialLength() int {
	return sm.initialLength
}
