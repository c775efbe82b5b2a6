package animate

import (
	"context"
	"time"

	"github.com/katalvlaran/gridsearch/grid"
)

// Pacer delivers events in the awaited model: every Emit waits the fixed
// delay and then calls the sink before returning to the algorithm.
type Pacer struct {
	ctx   context.Context
	sink  Sink
	delay time.Duration
}

// NewPacer returns a Pacer. A nil ctx means context.Background, a nil sink
// means Discard, and a non-positive delay disables waiting.
func NewPacer(ctx context.Context, sink Sink, delay time.Duration) *Pacer {
	if ctx == nil {
		ctx = context.Background()
	}
	if sink == nil {
		sink = Discard
	}
	return &Pacer{ctx: ctx, sink: sink, delay: delay}
}

// Emit suspends for the inter-step delay and then reports kind for p.
// It returns the context error, without emitting, if the run was cancelled
// before or during the wait.
func (pc *Pacer) Emit(p grid.Point, kind Kind) error {
	if err := pc.ctx.Err(); err != nil {
		return err
	}
	if pc.delay > 0 {
		t := time.NewTimer(pc.delay)
		select {
		case <-pc.ctx.Done():
			t.Stop()
			return pc.ctx.Err()
		case <-t.C:
		}
	}
	pc.sink(p.Y, p.X, kind)
	return nil
}

// EmitPath reports every cell of path as Path, start to end.
func (pc *Pacer) EmitPath(path grid.Path) error {
	for _, p := range path {
		if err := pc.Emit(p, Path); err != nil {
			return err
		}
	}
	return nil
}
