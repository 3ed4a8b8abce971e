package entity

import (
	"testing"

	"snake-arcade/game/types"
)

func TestNewSnake(t *testing.T) {
	s := NewSnake(6, 0)

	if s.Len() != 6 {
		t.Fatalf("Len() = %d, want 6", s.Len())
	}
	if s.Head() != (types.Point{X: 5, Y: 0}) {
		t.Errorf("Head() = %s, want (5,0)", s.Head())
	}
	if s.Tail() != (types.Point{X: 0, Y: 0}) {
		t.Errorf("Tail() = %s, want (0,0)", s.Tail())
	}
	if s.Heading != types.None {
		t.Errorf("Heading = %s, want none", s.Heading)
	}
	if s.CollideWithTail() {
		t.Error("fresh snake should not overlap itself")
	}
}

func TestSetDirectionRejectsReverse(t *testing.T) {
	s := NewSnake(4, 0)

	s.SetDirection(types.Up)
	s.SetDirection(types.Down)
	if s.Heading != types.Up {
		t.Errorf("Up then Down: heading = %s, want up", s.Heading)
	}

	s.SetDirection(types.Up)
	if s.Heading != types.Up {
		t.Errorf("same direction should be accepted, got %s", s.Heading)
	}

	s.SetDirection(types.Left)
	if s.Heading != types.Left {
		t.Errorf("perpendicular turn should be accepted, got %s", s.Heading)
	}
}

func TestSetDirectionFromNone(t *testing.T) {
	for _, d := range []types.Direction{types.Up, types.Right, types.Down, types.Left} {
		s := NewSnake(3, 0)
		s.SetDirection(d)
		if s.Heading != d {
			t.Errorf("from none: heading = %s, want %s", s.Heading, d)
		}
	}
}

func TestMoveAndRemoveTail(t *testing.T) {
	s := NewSnake(3, 2)
	s.SetDirection(types.Right)

	next := s.AdvanceHead()
	if next != (types.Point{X: 3, Y: 2}) {
		t.Fatalf("AdvanceHead() = %s, want (3,2)", next)
	}

	s.Move(next)
	if s.Len() != 4 || s.Head() != next {
		t.Fatalf("after Move: len %d head %s", s.Len(), s.Head())
	}

	s.RemoveTail()
	if s.Len() != 3 || s.Tail() != (types.Point{X: 1, Y: 2}) {
		t.Errorf("after RemoveTail: len %d tail %s", s.Len(), s.Tail())
	}
}

func TestRemoveTailKeepsOneSegment(t *testing.T) {
	s := NewSnake(1, 0)
	s.RemoveTail()
	if s.Len() != 1 {
		t.Errorf("Len() = %d, want 1", s.Len())
	}
}

func TestOccupies(t *testing.T) {
	s := NewSnake(3, 0)
	tail := s.Tail()

	if !s.Occupies(tail, false) {
		t.Error("tail should be occupied")
	}
	if s.Occupies(tail, true) {
		t.Error("tail should be free when skipped")
	}
	if s.Occupies(types.Point{X: 9, Y: 9}, false) {
		t.Error("(9,9) should be free")
	}
}

func TestSegmentsIsACopy(t *testing.T) {
	s := NewSnake(3, 0)
	seg := s.Segments()
	seg[0] = types.Point{X: 42, Y: 42}
	if s.Head() == seg[0] {
		t.Error("mutating Segments() changed the snake")
	}
}

func TestCollideWithEdgeAndFood(t *testing.T) {
	grid := types.Grid{Width: 4, Height: 4}
	s := NewSnake(2, 0)
	food := &Food{Pos: types.Point{X: 1, Y: 0}}

	if !s.CollideWithFood(food) {
		t.Error("head is on the food")
	}
	if s.CollideWithEdge(grid) {
		t.Error("head is inside the grid")
	}

	s.Move(types.Point{X: -1, Y: 0})
	if !s.CollideWithEdge(grid) {
		t.Error("head left the grid")
	}
}
