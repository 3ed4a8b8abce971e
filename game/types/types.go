package types

import "fmt"

// Point is a cell coordinate on the grid
type Point struct {
	X, Y int
}

// Add returns p offset by d
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid represents the game grid dimensions.
// Width is the number of columns, Height the number of rows.
type Grid struct {
	Width  int
	Height int
}

// InBounds reports whether p lies inside [0, Width) x [0, Height)
func (g Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Wrap folds p back into the grid, treating both axes as toroidal
func (g Grid) Wrap(p Point) Point {
	return Point{X: mod(p.X, g.Width), Y: mod(p.Y, g.Height)}
}

// Cells returns the number of cells on the grid
func (g Grid) Cells() int {
	return g.Width * g.Height
}

func mod(a, n int) int {
	r := a % n
	if r < 0 {
		r += n
	}
	return r
}

// EdgePolicy decides what happens when the head leaves the grid
type EdgePolicy int

const (
	EdgeBounded EdgePolicy = iota // leaving the grid ends the round
	EdgeWrap                      // the head re-enters on the opposite edge
)

func (e EdgePolicy) String() string {
	switch e {
	case EdgeBounded:
		return "bounded"
	case EdgeWrap:
		return "wrap"
	default:
		return "unknown"
	}
}

// ParseEdgePolicy maps a flag value to an EdgePolicy
func ParseEdgePolicy(s string) (EdgePolicy, error) {
	switch s {
	case "bounded", "wall":
		return EdgeBounded, nil
	case "wrap", "torus":
		return EdgeWrap, nil
	default:
		return EdgeBounded, fmt.Errorf("unknown edge policy %q", s)
	}
}
