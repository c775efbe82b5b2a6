package dijkstra

import (
	"github.com/zyedidia/generic/heap"

	"github.com/katalvlaran/gridsearch/animate"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// Search runs Dijkstra's algorithm on g from start to end.
// Surcharges come from search.WithWeights.
func Search(g *grid.Grid, start, end grid.Point, opts ...search.Option) (search.Result, error) {
	return Run(ModeDijkstra, g, start, end, opts...)
}

// AStar runs A* on g from start to end, estimating the remaining cost with
// the configured heuristic (Manhattan by default).
func AStar(g *grid.Grid, start, end grid.Point, opts ...search.Option) (search.Result, error) {
	return Run(ModeAStar, g, start, end, opts...)
}

// Run executes the shared engine with the comparator of mode.
//
// Preconditions and validation (in order):
//  1. mode must be known (ErrUnknownMode).
//  2. search.Validate(g, start, end).
func Run(mode Mode, g *grid.Grid, start, end grid.Point, opts ...search.Option) (search.Result, error) {
	cmp, err := mode.Comparator()
	if err != nil {
		return search.Result{}, err
	}
	if err = search.Validate(g, start, end); err != nil {
		return search.Result{}, err
	}
	o := search.Apply(opts...)
	pace := o.Pacer()
	state := grid.NewState(g, start)
	frontier := heap.New[entry](lessEntry)
	seq := 0
	push := func(p grid.Point, cost int) {
		frontier.Push(entry{p: p, cost: cost, priority: cmp(cost, o.Heuristic(p, end)), seq: seq})
		seq++
	}
	var order []grid.Point

	if start == end {
		state.Visit(start)
		if err = pace.Emit(start, animate.Visited); err != nil {
			return search.Result{}, err
		}
		return finish(pace, state, end, []grid.Point{start})
	}
	push(start, 0)

	for frontier.Size() > 0 {
		if err = o.Ctx.Err(); err != nil {
			return search.Result{}, err
		}
		cur, _ := frontier.Pop()
		if cur.cost != state.Cost(cur.p) {
			continue // stale
		}
		state.Visit(cur.p)
		order = append(order, cur.p)
		if err = pace.Emit(cur.p, animate.Visited); err != nil {
			return search.Result{}, err
		}

		for _, nb := range g.Neighbors(cur.p) {
			if !g.IsOpen(nb) {
				continue
			}
			next := cur.cost + o.Weights.StepCost(nb)
			if !state.Relax(nb, cur.p, next) {
				continue
			}
			if err = pace.Emit(nb, animate.Queued); err != nil {
				return search.Result{}, err
			}
			if nb == end {
				return finish(pace, state, end, order)
			}
			push(nb, next)
		}
	}

	return search.Result{Order: order, Done: search.Delivered()}, nil
}

// finish reconstructs and animates the path to end.
func finish(pace *animate.Pacer, state *grid.State, end grid.Point, order []grid.Point) (search.Result, error) {
	path, err := state.Path(end)
	if err != nil {
		return search.Result{}, err
	}
	if err = pace.EmitPath(path); err != nil {
		return search.Result{}, err
	}

	return search.Result{
		Found: true,
		Path:  path,
		Cost:  state.Cost(end),
		Order: order,
		Done:  search.Delivered(),
	}, nil
}
