package gbfs

import (
	"github.com/zyedidia/generic/heap"

	"github.com/katalvlaran/gridsearch/animate"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// item is a frontier entry: h is the heuristic distance to the end and seq
// the insertion rank used to break ties.
type item struct {
	p   grid.Point
	h   int
	seq int
}

func less(a, b item) bool {
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

// Search runs greedy best-first search on g from start to end, ordering the
// frontier with the configured heuristic (search.WithHeuristic).
func Search(g *grid.Grid, start, end grid.Point, opts ...search.Option) (search.Result, error) {
	if err := search.Validate(g, start, end); err != nil {
		return search.Result{}, err
	}
	o := search.Apply(opts...)
	pace := o.Pacer()
	state := grid.NewState(g, start)
	frontier := heap.New[item](less)
	var (
		order []grid.Point
		seq   int
	)

	discover := func(p grid.Point) (bool, error) {
		state.Visit(p)
		h := o.Heuristic(p, end)
		frontier.Push(item{p: p, h: h, seq: seq})
		seq++
		order = append(order, p)
		if err := pace.Emit(p, animate.Visited); err != nil {
			return false, err
		}
		return h == 0, nil
	}

	if _, err := discover(start); err != nil {
		return search.Result{}, err
	}
	if start == end {
		return finish(pace, state, start, order, o.Weights)
	}

	for frontier.Size() > 0 {
		if err := o.Ctx.Err(); err != nil {
			return search.Result{}, err
		}
		cur, _ := frontier.Pop()
		for _, nb := range g.Neighbors(cur.p) {
			if !g.IsOpen(nb) || state.Visited(nb) {
				continue
			}
			state.SetPrev(nb, cur.p)
			atGoal, err := discover(nb)
			if err != nil {
				return search.Result{}, err
			}
			if atGoal {
				return finish(pace, state, nb, order, o.Weights)
			}
		}
	}

	return search.Result{Order: order, Done: search.Delivered()}, nil
}

// finish reconstructs and animates the path ending at goal.
func finish(pace *animate.Pacer, state *grid.State, goal grid.Point, order []grid.Point, w grid.Weights) (search.Result, error) {
	path, err := state.Path(goal)
	if err != nil {
		return search.Result{}, err
	}
	if err = pace.EmitPath(path); err != nil {
		return search.Result{}, err
	}

	return search.Result{
		Found: true,
		Path:  path,
		Cost:  search.PathCost(path, w),
		Order: order,
		Done:  search.Delivered(),
	}, nil
}
