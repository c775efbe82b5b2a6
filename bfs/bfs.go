package bfs

import (
	"github.com/zyedidia/generic/queue"

	"github.com/katalvlaran/gridsearch/animate"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

// walker encapsulates mutable BFS state for a single run.
type walker struct {
	g     *grid.Grid
	end   grid.Point
	opts  search.Options
	pace  *animate.Pacer
	state *grid.State
	queue *queue.Queue[grid.Point]
	order []grid.Point
}

// Search runs breadth-first search on g from start to end.
// See the package documentation for emitted events and errors.
func Search(g *grid.Grid, start, end grid.Point, opts ...search.Option) (search.Result, error) {
	if err := search.Validate(g, start, end); err != nil {
		return search.Result{}, err
	}
	o := search.Apply(opts...)
	w := &walker{
		g:     g,
		end:   end,
		opts:  o,
		pace:  o.Pacer(),
		state: grid.NewState(g, start),
		queue: queue.New[grid.Point](),
	}

	return w.run(start)
}

// run seeds the queue with start and drains it until end is discovered.
func (w *walker) run(start grid.Point) (search.Result, error) {
	if err := w.discover(start); err != nil {
		return search.Result{}, err
	}
	if start == w.end {
		return w.finish()
	}
	w.queue.Enqueue(start)

	for !w.queue.Empty() {
		if err := w.opts.Ctx.Err(); err != nil {
			return search.Result{}, err
		}
		cur := w.queue.Dequeue()
		for _, nb := range w.g.Neighbors(cur) {
			if !w.g.IsOpen(nb) || w.state.Visited(nb) {
				continue
			}
			w.state.SetPrev(nb, cur)
			if err := w.discover(nb); err != nil {
				return search.Result{}, err
			}
			if nb == w.end {
				return w.finish()
			}
			w.queue.Enqueue(nb)
		}
	}

	return search.Result{Order: w.order, Done: search.Delivered()}, nil
}

// discover marks p visited and reports it.
func (w *walker) discover(p grid.Point) error {
	w.state.Visit(p)
	w.order = append(w.order, p)
	return w.pace.Emit(p, animate.Visited)
}

// finish reconstructs the path to end and animates it.
func (w *walker) finish() (search.Result, error) {
	path, err := w.state.Path(w.end)
	if err != nil {
		return search.Result{}, err
	}
	if err = w.pace.EmitPath(path); err != nil {
		return search.Result{}, err
	}

	return search.Result{
		Found: true,
		Path:  path,
		Cost:  search.PathCost(path, w.opts.Weights),
		Order: w.order,
		Done:  search.Delivered(),
	}, nil
}
