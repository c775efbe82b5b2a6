package search

import "github.com/katalvlaran/gridsearch/grid"

// Result is the outcome of a search run.
//
// Found reports whether end was reached; Path runs start→end inclusive;
// Cost is the accumulated entry cost of the path (start excluded, one unit
// per step plus surcharges). Order lists cells in Visited emission order.
// Done closes once every animation event of the run has been delivered.
type Result struct {
	Found bool
	Path  grid.Path
	Cost  int
	Order []grid.Point
	Done  <-chan struct{}
}

// Length returns the number of cells on the path, or 0 when not found.
func (r Result) Length() int {
	if !r.Found {
		return 0
	}
	return r.Path.Len()
}

var closed = func() chan struct{} {
	c := make(chan struct{})
	close(c)
	return c
}()

// Delivered returns an already-closed channel, the Done value of runs whose
// events were all delivered before returning.
func Delivered() <-chan struct{} { return closed }

// PathCost sums the entry cost of every path cell after the first.
func PathCost(path grid.Path, w grid.Weights) int {
	cost := 0
	for i := 1; i < len(path); i++ {
		cost += w.StepCost(path[i])
	}
	return cost
}
