package dijkstra

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/gridsearch/grid"
)

// ErrUnknownMode indicates a Mode value with no comparator.
var ErrUnknownMode = errors.New("dijkstra: unknown mode")

// Mode selects the frontier priority.
type Mode int

const (
	// ModeDijkstra orders the frontier by accumulated cost.
	ModeDijkstra Mode = iota

	// ModeAStar orders the frontier by accumulated cost plus heuristic estimate.
	ModeAStar
)

// String implements fmt.Stringer.
func (m Mode) String() string {
	switch m {
	case ModeDijkstra:
		return "dijkstra"
	case ModeAStar:
		return "astar"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Comparator computes the frontier priority of a cell from its accumulated
// cost and its heuristic estimate to the end. Lower pops first.
type Comparator func(cost, estimate int) int

// Comparator returns the priority function of m, or ErrUnknownMode.
func (m Mode) Comparator() (Comparator, error) {
	switch m {
	case ModeDijkstra:
		return func(cost, _ int) int { return cost }, nil
	case ModeAStar:
		return func(cost, estimate int) int { return cost + estimate }, nil
	}
	return nil, fmt.Errorf("%w: %d", ErrUnknownMode, int(m))
}

// entry is a frontier element. Duplicates per cell are allowed; only the one
// whose cost matches the cell's best-known cost is live.
type entry struct {
	p        grid.Point
	cost     int
	priority int
	seq      int
}

func lessEntry(a, b entry) bool {
	if a.priority != b.priority {
		return a.priority < b.priority
	}
	return a.seq < b.seq
}
