package engine

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridsearch/animate"
	"github.com/katalvlaran/gridsearch/search"
)

var (
	// ErrBusy indicates that the Runner is still executing or animating a run.
	ErrBusy = errors.New("engine: a run is already in progress")

	// ErrTooLarge indicates a grid with more cells than the Runner allows.
	ErrTooLarge = errors.New("engine: grid exceeds the cell limit")
)

// RunSink receives the events of a Runner run tagged with its ID, so that a
// caller can drop late events of runs it no longer follows.
type RunSink func(run uuid.UUID, row, col int, kind animate.Kind)

// Outcome is the result of a Runner run.
type Outcome struct {
	ID        uuid.UUID
	Algorithm Algorithm
	Result    search.Result
}

// Runner executes at most one run at a time. The zero value is ready to
// use and has no cell limit.
type Runner struct {
	busy     atomic.Bool
	maxCells int
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithMaxCells limits the grid size accepted by Start. Panics if n < 0;
// 0 disables the limit.
func WithMaxCells(n int) RunnerOption {
	if n < 0 {
		panic(fmt.Sprintf("engine: WithMaxCells(%d)", n))
	}
	return func(r *Runner) {
		r.maxCells = n
	}
}

// NewRunner returns a Runner configured by opts.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Busy reports whether a run (or its animation) is in flight.
func (r *Runner) Busy() bool { return r.busy.Load() }

// Start executes req under a fresh run ID. The Runner stays busy until the
// run's Result.Done closes, so for DFS it may outlive Start.
// Returns ErrBusy without running if another run is in flight.
func (r *Runner) Start(ctx context.Context, req Request, sink RunSink) (Outcome, error) {
	if cells := len(req.Grid) * rowLen(req.Grid); r.maxCells > 0 && cells > r.maxCells {
		return Outcome{}, fmt.Errorf("%w: %d > %d", ErrTooLarge, cells, r.maxCells)
	}
	if !r.busy.CompareAndSwap(false, true) {
		return Outcome{}, ErrBusy
	}

	id := uuid.New()
	var inner animate.Sink
	if sink != nil {
		inner = func(row, col int, kind animate.Kind) { sink(id, row, col, kind) }
	}
	res, err := Run(ctx, req, inner)
	if err != nil {
		r.busy.Store(false)
		return Outcome{}, err
	}
	r.releaseAfter(res.Done)

	return Outcome{ID: id, Algorithm: req.Algorithm, Result: res}, nil
}

// releaseAfter clears the busy flag once done closes, synchronously when it
// already has.
func (r *Runner) releaseAfter(done <-chan struct{}) {
	if done == nil {
		r.busy.Store(false)
		return
	}
	select {
	case <-done:
		r.busy.Store(false)
	default:
		go func() {
			<-done
			r.busy.Store(false)
		}()
	}
}

func rowLen(rows [][]int) int {
	if len(rows) == 0 {
		return 0
	}
	return len(rows[0])
}
