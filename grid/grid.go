package grid

import "strings"

// Grid is an immutable rectangular occupancy grid. Cells are stored
// row-major: the cell at (x,y) lives at index y*Width()+x.
type Grid struct {
	width, height int
	cells         []Kind
}

// New constructs a Grid from a non-empty, rectangular 2D slice where 0 marks
// an open cell and any other value a wall. The input is copied.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	for _, row := range values {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}
	cells := make([]Kind, w*h)
	for y, row := range values {
		for x, v := range row {
			if v != 0 {
				cells[y*w+x] = Wall
			}
		}
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// NewOpen returns a w×h grid with no walls. Non-positive sizes yield ErrEmptyGrid.
func NewOpen(w, h int) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid{width: w, height: h, cells: make([]Kind, w*h)}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Size returns the number of cells.
func (g *Grid) Size() int { return len(g.cells) }

// InBounds reports whether p lies within [0,Width)×[0,Height).
// Complexity: O(1).
func (g *Grid) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// KindAt returns the kind of the cell at p. Out-of-range points are walls.
func (g *Grid) KindAt(p Point) Kind {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[g.Index(p)]
}

// IsOpen reports whether p is in range and not a wall.
func (g *Grid) IsOpen(p Point) bool {
	return g.KindAt(p) == Open
}

// Index maps p to its row-major index. p must be in bounds.
// Complexity: O(1).
func (g *Grid) Index(p Point) int {
	return p.Y*g.width + p.X
}

// PointAt converts a row-major index back to a Point.
// Complexity: O(1).
func (g *Grid) PointAt(i int) Point {
	return Point{X: i % g.width, Y: i / g.width}
}

// Neighbors returns the in-bounds 4-neighbors of p in Steps order.
// Walls are not filtered; use IsOpen for that.
func (g *Grid) Neighbors(p Point) []Point {
	out := make([]Point, 0, len(Steps))
	for _, d := range Steps {
		if q := p.Add(d); g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Values returns a fresh [][]int copy of the grid using 0 for open and 1 for wall.
func (g *Grid) Values() [][]int {
	out := make([][]int, g.height)
	for y := range out {
		out[y] = make([]int, g.width)
		for x := range out[y] {
			if g.cells[y*g.width+x] == Wall {
				out[y][x] = 1
			}
		}
	}
	return out
}

// String renders the grid with '.' for open and '#' for wall cells, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow((g.width + 1) * g.height)
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if g.cells[y*g.width+x] == Wall {
				b.WriteByte('#')
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
