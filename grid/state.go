package grid

import (
	"fmt"
	"math"
)

// Unreached is the cost of a cell no path has reached yet.
const Unreached = math.MaxInt

// noPrev marks a cell without predecessor (the start, or unreached cells).
const noPrev = -1

// State is the per-run traversal bookkeeping for every cell of a Grid:
// visited flag, best-known accumulated cost and predecessor index.
// It is owned by a single run and must not be shared between goroutines.
type State struct {
	g       *Grid
	visited []bool
	cost    []int
	prev    []int32
}

// NewState allocates a fresh State for g with every cost set to Unreached
// except start, whose cost is 0. start must be in bounds.
// Complexity: O(W×H).
func NewState(g *Grid, start Point) *State {
	n := g.Size()
	s := &State{
		g:       g,
		visited: make([]bool, n),
		cost:    make([]int, n),
		prev:    make([]int32, n),
	}
	for i := 0; i < n; i++ {
		s.cost[i] = Unreached
		s.prev[i] = noPrev
	}
	s.cost[g.Index(start)] = 0

	return s
}

// Visit marks p visited.
func (s *State) Visit(p Point) { s.visited[s.g.Index(p)] = true }

// Visited reports whether p has been marked visited.
func (s *State) Visited(p Point) bool { return s.visited[s.g.Index(p)] }

// Cost returns the best-known accumulated cost of p.
func (s *State) Cost(p Point) int { return s.cost[s.g.Index(p)] }

// SetPrev records from as the predecessor of p.
func (s *State) SetPrev(p, from Point) {
	s.prev[s.g.Index(p)] = int32(s.g.Index(from))
}

// Prev returns the predecessor of p, if any.
func (s *State) Prev(p Point) (Point, bool) {
	i := s.prev[s.g.Index(p)]
	if i == noPrev {
		return Point{}, false
	}
	return s.g.PointAt(int(i)), true
}

// Relax lowers the cost of p to cost via from. It reports false and leaves
// the state untouched unless cost is strictly lower than the recorded one.
func (s *State) Relax(p, from Point, cost int) bool {
	i := s.g.Index(p)
	if cost >= s.cost[i] {
		return false
	}
	s.cost[i] = cost
	s.prev[i] = int32(s.g.Index(from))
	return true
}

// Path reconstructs the path ending at goal by following predecessor links
// back to a cell without predecessor and reversing. The walk is bounded by
// the number of cells; exceeding it yields ErrBrokenChain.
func (s *State) Path(goal Point) (Path, error) {
	path := Path{goal}
	for cur := s.g.Index(goal); s.prev[cur] != noPrev; {
		if len(path) > s.g.Size() {
			return nil, fmt.Errorf("%w: from %v", ErrBrokenChain, goal)
		}
		cur = int(s.prev[cur])
		path = append(path, s.g.PointAt(cur))
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
