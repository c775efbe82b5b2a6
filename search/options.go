package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/gridsearch/animate"
	"github.com/katalvlaran/gridsearch/grid"
)

// Sentinel errors shared by every search strategy.
var (
	// ErrNilGrid indicates that a nil *grid.Grid was passed.
	ErrNilGrid = errors.New("search: grid is nil")

	// ErrOutOfBounds indicates a start or end point outside the grid.
	ErrOutOfBounds = errors.New("search: point outside grid")

	// ErrBlocked indicates a start or end point placed on a wall.
	ErrBlocked = errors.New("search: point is a wall")

	// ErrBadDelay indicates a negative inter-step delay.
	ErrBadDelay = errors.New("search: delay must be non-negative")
)

// Options configures a search run.
type Options struct {
	Ctx       context.Context // cancellation between steps
	Sink      animate.Sink    // animation event receiver
	Delay     time.Duration   // pause before every event
	Heuristic grid.Heuristic  // goal-distance estimate (GBFS, A*)
	Weights   grid.Weights    // entry surcharges (Dijkstra, A*)
}

// Option represents a functional option for configuring a search run.
type Option func(*Options)

// DefaultOptions returns the defaults: background context, Discard sink,
// no delay, Manhattan heuristic and no weights.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Sink:      animate.Discard,
		Delay:     0,
		Heuristic: grid.Manhattan,
		Weights:   nil,
	}
}

// Apply builds Options from DefaultOptions and opts, in order.
func Apply(opts ...Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithContext sets the run context. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithSink sets the animation sink. A nil sink is ignored.
func WithSink(s animate.Sink) Option {
	return func(o *Options) {
		if s != nil {
			o.Sink = s
		}
	}
}

// WithDelay sets the fixed inter-step delay. Panics if d < 0.
func WithDelay(d time.Duration) Option {
	if d < 0 {
		panic(fmt.Sprintf("%v: %v", ErrBadDelay, d))
	}
	return func(o *Options) {
		o.Delay = d
	}
}

// WithSpeed sets the delay from a UI speed value, floor(100/speed) ms.
// Panics if speed <= 0.
func WithSpeed(speed int) Option {
	d, err := animate.DelayForSpeed(speed)
	if err != nil {
		panic(err.Error())
	}
	return WithDelay(d)
}

// WithHeuristic sets the goal-distance estimate. A nil h is ignored.
// h must be non-negative and zero exactly at the goal.
func WithHeuristic(h grid.Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithWeights sets the per-cell entry surcharges. Panics on a negative surcharge.
func WithWeights(w grid.Weights) Option {
	if err := w.Validate(); err != nil {
		panic(err.Error())
	}
	return func(o *Options) {
		o.Weights = w
	}
}

// Pacer returns an awaited-model emitter bound to o.
func (o Options) Pacer() *animate.Pacer {
	return animate.NewPacer(o.Ctx, o.Sink, o.Delay)
}

// Scheduler returns a fire-and-forget emitter bound to o. Its time origin is now.
func (o Options) Scheduler() *animate.Scheduler {
	return animate.NewScheduler(o.Ctx, o.Sink, o.Delay)
}

// Validate checks the preconditions common to every strategy, in order:
// non-nil grid, start and end in bounds, start and end open.
func Validate(g *grid.Grid, start, end grid.Point) error {
	if g == nil {
		return ErrNilGrid
	}
	for _, p := range [...]grid.Point{start, end} {
		if !g.InBounds(p) {
			return fmt.Errorf("%w: %v in %dx%d", ErrOutOfBounds, p, g.Width(), g.Height())
		}
	}
	for _, p := range [...]grid.Point{start, end} {
		if !g.IsOpen(p) {
			return fmt.Errorf("%w: %v", ErrBlocked, p)
		}
	}
	return nil
}
