package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrNegativeWeight indicates a weighted cell with a negative surcharge.
	ErrNegativeWeight = errors.New("grid: weight surcharge must be non-negative")
	// ErrBrokenChain indicates predecessor links that never reach a root.
	ErrBrokenChain = errors.New("grid: predecessor chain does not terminate")
)

// Kind classifies a cell as passable or not.
type Kind uint8

const (
	// Open cells can be traversed.
	Open Kind = iota
	// Wall cells block traversal.
	Wall
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case Open:
		return "open"
	case Wall:
		return "wall"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Point is an integer cell coordinate. X is the column, Y is the row.
type Point struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Add returns p translated by d.
func (p Point) Add(d Point) Point {
	return Point{X: p.X + d.X, Y: p.Y + d.Y}
}

// String formats p as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Steps is the neighbor enumeration order shared by every algorithm:
// next row, previous row, next column, previous column.
var Steps = [4]Point{{X: 0, Y: 1}, {X: 0, Y: -1}, {X: 1, Y: 0}, {X: -1, Y: 0}}

// Path is an ordered sequence of cells from start to end inclusive.
type Path []Point

// Len returns the number of cells in the path.
func (p Path) Len() int { return len(p) }

// Contains reports whether q lies on the path.
func (p Path) Contains(q Point) bool {
	for _, c := range p {
		if c == q {
			return true
		}
	}
	return false
}
