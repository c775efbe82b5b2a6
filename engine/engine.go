package engine

import (
	"context"
	"fmt"

	"github.com/katalvlaran/gridsearch/animate"
	"github.com/katalvlaran/gridsearch/bfs"
	"github.com/katalvlaran/gridsearch/dfs"
	"github.com/katalvlaran/gridsearch/dijkstra"
	"github.com/katalvlaran/gridsearch/gbfs"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// Request describes one run as the UI submits it: a 0/1 matrix (0 open),
// endpoints, the cells carrying the uniform surcharge WeightCost, and the
// animation speed (delay floor(100/Speed) ms).
type Request struct {
	Algorithm  Algorithm    `json:"algorithm"`
	Grid       [][]int      `json:"grid"`
	Start      grid.Point   `json:"start"`
	End        grid.Point   `json:"end"`
	Weighted   []grid.Point `json:"weights,omitempty"`
	WeightCost int          `json:"weightCost,omitempty"`
	Speed      int          `json:"speed"`
}

type strategy func(*grid.Grid, grid.Point, grid.Point, ...search.Option) (search.Result, error)

var strategies = map[Algorithm]strategy{
	BFS:      bfs.Search,
	DFS:      dfs.Search,
	GBFS:     gbfs.Search,
	Dijkstra: dijkstra.Search,
	AStar:    dijkstra.AStar,
}

// Run validates req and executes it, reporting events to sink (nil means
// animate.Discard). Validation errors are returned before any event.
func Run(ctx context.Context, req Request, sink animate.Sink) (search.Result, error) {
	run, ok := strategies[req.Algorithm]
	if !ok {
		return search.Result{}, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, req.Algorithm)
	}
	opts, g, err := prepare(ctx, req, sink)
	if err != nil {
		return search.Result{}, err
	}

	return run(g, req.Start, req.End, opts...)
}

// prepare builds the grid and the option set of req.
func prepare(ctx context.Context, req Request, sink animate.Sink) ([]search.Option, *grid.Grid, error) {
	g, err := grid.New(req.Grid)
	if err != nil {
		return nil, nil, err
	}
	delay, err := animate.DelayForSpeed(req.Speed)
	if err != nil {
		return nil, nil, err
	}
	w, err := grid.UniformWeights(req.Weighted, req.WeightCost)
	if err != nil {
		return nil, nil, err
	}
	if err = search.Validate(g, req.Start, req.End); err != nil {
		return nil, nil, err
	}

	return []search.Option{
		search.WithContext(ctx),
		search.WithSink(sink),
		search.WithDelay(delay),
		search.WithWeights(w),
	}, g, nil
}
