package grid

// Heuristic estimates the remaining cost from a to b. Implementations used
// for goal testing must be non-negative and zero exactly when a == b.
type Heuristic func(a, b Point) int

// Manhattan returns |Δx| + |Δy|. It never overestimates the cost of a
// 4-connected path with unit-or-greater step costs.
func Manhattan(a, b Point) int {
	return abs(a.X-b.X) + abs(a.Y-b.Y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
