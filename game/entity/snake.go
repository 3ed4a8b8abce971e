package entity

import (
	"snake-arcade/game/types"

	"golang.org/x/exp/slices"
)

// Snake is an ordered list of segments, head first, plus the current heading
type Snake struct {
	Body    []types.Point
	Heading types.Direction
}

// NewSnake builds a straight horizontal snake on row y whose tail sits at
// x = 0 and whose head sits at x = length-1. The snake is not moving yet.
func NewSnake(length, y int) *Snake {
	if length < 1 {
		length = 1
	}
	body := make([]types.Point, 0, length)
	for x := length - 1; x >= 0; x-- {
		body = append(body, types.Point{X: x, Y: y})
	}
	return &Snake{
		Body:    body,
		Heading: types.None,
	}
}

func (s *Snake) Head() types.Point {
	return s.Body[0]
}

func (s *Snake) Tail() types.Point {
	return s.Body[len(s.Body)-1]
}

func (s *Snake) Len() int {
	return len(s.Body)
}

// Segments returns a copy of the body, head first
func (s *Snake) Segments() []types.Point {
	return slices.Clone(s.Body)
}

// CollideWithTail reports whether the head overlaps any other segment
func (s *Snake) CollideWithTail() bool {
	return slices.Contains(s.Body[1:], s.Head())
}

// CollideWithFood reports whether the head sits on the food
func (s *Snake) CollideWithFood(food *Food) bool {
	return s.Head() == food.Pos
}

// CollideWithEdge reports whether the head is outside the grid
func (s *Snake) CollideWithEdge(grid types.Grid) bool {
	return !grid.InBounds(s.Head())
}

// Occupies reports whether p is covered by the body. With skipTail the last
// segment is ignored, since it is vacated by a move that does not eat.
func (s *Snake) Occupies(p types.Point, skipTail bool) bool {
	body := s.Body
	if skipTail {
		body = body[:len(body)-1]
	}
	return slices.Contains(body, p)
}

// SetDirection changes the heading unless dir is the exact reverse of the
// current one. None never rejects a successor and is never rejected.
func (s *Snake) SetDirection(dir types.Direction) {
	if dir != types.None && s.Heading != types.None && dir == s.Heading.Opposite() {
		return
	}
	s.Heading = dir
}

// AdvanceHead returns where the head would land after one step
func (s *Snake) AdvanceHead() types.Point {
	return s.Head().Add(s.Heading.ToPoint())
}

// Move pushes a new head
func (s *Snake) Move(newHead types.Point) {
	s.Body = slices.Insert(s.Body, 0, newHead)
}

// RemoveTail drops the last segment. A single-segment snake is left intact.
func (s *Snake) RemoveTail() {
	if len(s.Body) > 1 {
		s.Body = s.Body[:len(s.Body)-1]
	}
}
