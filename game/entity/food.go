package entity

import "snake-arcade/game/types"

// Food is the single fruit on the board
type Food struct {
	Pos  types.Point
	Type types.FoodType
}

func NewFood() *Food {
	return &Food{
		Pos:  types.Point{X: 0, Y: 0},
		Type: types.Apple,
	}
}
