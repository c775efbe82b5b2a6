package maze

import (
	"errors"
	"fmt"
	"math"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/gridsearch/animate"
	"github.com/katalvlaran/gridsearch/grid"
)

// ErrTooSmall indicates a maze narrower or shorter than two cells.
var ErrTooSmall = errors.New("maze: width and height must be at least 2")

// Maze is a generated grid with its endpoints. Path lists the carved cells
// in carving order, from Start to End; together they connect the endpoints.
type Maze struct {
	Grid    *grid.Grid
	Start   grid.Point
	End     grid.Point
	Path    grid.Path
	Weights grid.Weights
}

// Values returns the raw 0/1 matrix of the maze.
func (m *Maze) Values() [][]int { return m.Grid.Values() }

// Generate builds a width×height maze. See the package documentation.
// Complexity: O(W×H) expected time and memory.
func Generate(width, height int, opts ...Option) (*Maze, error) {
	if width < 2 || height < 2 {
		return nil, fmt.Errorf("%w: got %dx%d", ErrTooSmall, width, height)
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	rng := cfg.random()

	cells := make([][]int, height)
	for y := range cells {
		cells[y] = make([]int, width)
		for x := range cells[y] {
			if rng.Float64() >= cfg.open {
				cells[y][x] = 1
			}
		}
	}

	start := grid.Point{X: rng.Intn((width + 1) / 2), Y: rng.Intn((height + 1) / 2)}
	end := start
	for end == start {
		end = grid.Point{X: width/2 + rng.Intn(width-width/2), Y: height/2 + rng.Intn(height-height/2)}
	}

	path, corridor := carve(cells, start, end, cfg)

	g, err := grid.New(cells)
	if err != nil {
		return nil, err
	}
	m := &Maze{Grid: g, Start: start, End: end, Path: path}
	m.Weights = markWeights(m, corridor, cfg)

	return m, nil
}

// carve walks from start to end, opening every newly entered cell. It
// returns the corridor in carving order and the set of its cells.
func carve(cells [][]int, start, end grid.Point, cfg config) (grid.Path, mapset.Set[grid.Point]) {
	width, height := len(cells[0]), len(cells)
	inRange := func(p grid.Point) bool {
		return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
	}
	rng := cfg.rng
	seen := mapset.New[grid.Point]()
	seen.Put(start)
	cells[start.Y][start.X] = 0
	path := grid.Path{start}

	cur, p := start, greedyStart
	for cur != end {
		var step grid.Point
		if rng.Float64() > p {
			step = grid.Steps[rng.Intn(len(grid.Steps))]
		} else {
			step = toward(cur, end, rng.Float64() < 0.5)
		}
		if next := cur.Add(step); inRange(next) {
			if !seen.Has(next) {
				seen.Put(next)
				cells[next.Y][next.X] = 0
				path = append(path, next)
			}
			cur = next
		}
		p += greedyGrowth
	}

	return path, seen
}

// toward returns a unit step closing the x gap (preferX) or the y gap to end.
// When only one gap remains it is closed regardless of preferX.
func toward(cur, end grid.Point, preferX bool) grid.Point {
	dx, dy := sign(end.X-cur.X), sign(end.Y-cur.Y)
	if dx != 0 && (preferX || dy == 0) {
		return grid.Point{X: dx}
	}
	return grid.Point{Y: dy}
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// markWeights picks round(fraction×candidates) open cells off the corridor.
func markWeights(m *Maze, corridor mapset.Set[grid.Point], cfg config) grid.Weights {
	if cfg.fraction == 0 {
		return grid.Weights{}
	}
	var candidates []grid.Point
	for i := 0; i < m.Grid.Size(); i++ {
		p := m.Grid.PointAt(i)
		if m.Grid.IsOpen(p) && !corridor.Has(p) {
			candidates = append(candidates, p)
		}
	}
	cfg.rng.Shuffle(len(candidates), func(i, j int) {
		candidates[i], candidates[j] = candidates[j], candidates[i]
	})
	n := int(math.Round(cfg.fraction * float64(len(candidates))))

	w := make(grid.Weights, n)
	for _, p := range candidates[:n] {
		w[p] = cfg.surcharge
		cfg.weightSink(p.Y, p.X, animate.Weighted)
	}

	return w
}
