package dfs

import (
	"github.com/zyedidia/generic/stack"

	"github.com/katalvlaran/gridsearch/animate"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// walker holds the mutable state of one DFS run.
type walker struct {
	g       *grid.Grid
	end     grid.Point
	opts    search.Options
	sched   *animate.Scheduler
	state   *grid.State
	color   []CellState
	stack   *stack.Stack[grid.Point]
	counter int
	order   []grid.Point
}

// Search runs iterative depth-first search on g from start to end.
// The returned Result is final, but its animation may still be in flight:
// wait on Result.Done to observe the last event.
func Search(g *grid.Grid, start, end grid.Point, opts ...search.Option) (search.Result, error) {
	if err := search.Validate(g, start, end); err != nil {
		return search.Result{}, err
	}
	o := search.Apply(opts...)
	w := &walker{
		g:     g,
		end:   end,
		opts:  o,
		sched: o.Scheduler(),
		state: grid.NewState(g, start),
		color: make([]CellState, g.Size()),
		stack: stack.New[grid.Point](),
	}
	defer w.sched.Close()

	res, err := w.run(start)
	if err != nil {
		return search.Result{}, err
	}
	res.Order = w.order
	res.Done = w.sched.Done()

	return res, nil
}

func (w *walker) run(start grid.Point) (search.Result, error) {
	w.discover(start)
	if start == w.end {
		return w.finish()
	}
	w.stack.Push(start)

	for w.stack.Size() > 0 {
		if err := w.opts.Ctx.Err(); err != nil {
			return search.Result{}, err
		}
		cur := w.stack.Peek()
		ci := w.g.Index(cur)
		if w.color[ci] == Black {
			w.stack.Pop()
			continue
		}
		w.color[ci] = Black

		for _, nb := range w.g.Neighbors(cur) {
			if !w.g.IsOpen(nb) || w.state.Visited(nb) {
				continue
			}
			w.state.SetPrev(nb, cur)
			w.discover(nb)
			if nb == w.end {
				return w.finish()
			}
			w.counter++
			w.stack.Push(nb)
			w.color[ci] = Gray
			break
		}
	}

	return search.Result{}, nil
}

// discover marks p visited and schedules its event at the current tick.
func (w *walker) discover(p grid.Point) {
	w.state.Visit(p)
	w.order = append(w.order, p)
	w.sched.Schedule(p, animate.Visited, w.counter)
}

// finish schedules the path cells one tick apart after the end cell.
func (w *walker) finish() (search.Result, error) {
	path, err := w.state.Path(w.end)
	if err != nil {
		return search.Result{}, err
	}
	for _, p := range path {
		w.counter++
		w.sched.Schedule(p, animate.Path, w.counter)
	}

	return search.Result{
		Found: true,
		Path:  path,
		Cost:  search.PathCost(path, w.opts.Weights),
	}, nil
}
