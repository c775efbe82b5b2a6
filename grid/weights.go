package grid

import "fmt"

// Weights maps weighted cells to the extra cost paid when entering them.
// A missing entry means no surcharge.
type Weights map[Point]int

// UniformWeights assigns the same surcharge to every point in pts.
// Returns ErrNegativeWeight if surcharge < 0.
func UniformWeights(pts []Point, surcharge int) (Weights, error) {
	if surcharge < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeWeight, surcharge)
	}
	w := make(Weights, len(pts))
	for _, p := range pts {
		w[p] = surcharge
	}
	return w, nil
}

// Surcharge returns the extra cost of entering p (0 if unweighted).
func (w Weights) Surcharge(p Point) int {
	return w[p]
}

// StepCost returns the cost of moving into p: one unit plus its surcharge.
func (w Weights) StepCost(p Point) int {
	return 1 + w[p]
}

// Validate checks that every surcharge is non-negative.
func (w Weights) Validate() error {
	for p, s := range w {
		if s < 0 {
			return fmt.Errorf("%w: %d at %v", ErrNegativeWeight, s, p)
		}
	}
	return nil
}

// Points returns the weighted cells in row-major order for the given grid.
func (w Weights) Points(g *Grid) []Point {
	out := make([]Point, 0, len(w))
	for i := 0; i < g.Size(); i++ {
		p := g.PointAt(i)
		if _, ok := w[p]; ok {
			out = append(out, p)
		}
	}
	return out
}
