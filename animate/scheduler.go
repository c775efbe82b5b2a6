package animate

import (
	"context"
	"sync"
	"time"

	"github.com/zyedidia/generic/heap"

	"github.com/katalvlaran/gridsearch/grid"
)

// scheduled is one pending event: it fires at origin + tick×delay; seq keeps
// insertion order among equal ticks.
type scheduled struct {
	p    grid.Point
	kind Kind
	tick int
	seq  int
}

// Scheduler delivers events in the fire-and-forget model. Schedule never
// blocks; a single dispatcher goroutine fires events in (tick, insertion)
// order at tick×delay after the scheduler was created.
type Scheduler struct {
	ctx    context.Context
	sink   Sink
	delay  time.Duration
	origin time.Time

	mu      sync.Mutex
	pending *heap.Heap[scheduled]
	seq     int
	closed  bool

	wake chan struct{}
	done chan struct{}
}

// NewScheduler starts a Scheduler whose time origin is now. A nil ctx means
// context.Background, a nil sink means Discard. Cancelling ctx drops every
// event that has not fired yet.
func NewScheduler(ctx context.Context, sink Sink, delay time.Duration) *Scheduler {
	if ctx == nil {
		ctx = context.Background()
	}
	if sink == nil {
		sink = Discard
	}
	if delay < 0 {
		delay = 0
	}
	s := &Scheduler{
		ctx:    ctx,
		sink:   sink,
		delay:  delay,
		origin: time.Now(),
		pending: heap.New[scheduled](func(a, b scheduled) bool {
			if a.tick != b.tick {
				return a.tick < b.tick
			}
			return a.seq < b.seq
		}),
		wake: make(chan struct{}, 1),
		done: make(chan struct{}),
	}
	go s.dispatch()

	return s
}

// Schedule queues kind for p to fire at tick×delay after the origin.
// Calls after Close are ignored.
func (s *Scheduler) Schedule(p grid.Point, kind Kind, tick int) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.pending.Push(scheduled{p: p, kind: kind, tick: tick, seq: s.seq})
	s.seq++
	s.mu.Unlock()
	s.notify()
}

// Close declares that no more events will be scheduled. Done closes once
// the already-scheduled events have fired.
func (s *Scheduler) Close() {
	s.mu.Lock()
	s.closed = true
	s.mu.Unlock()
	s.notify()
}

// Done is closed when every scheduled event has fired after Close, or when
// the context is cancelled.
func (s *Scheduler) Done() <-chan struct{} { return s.done }

// Wait blocks until Done is closed.
func (s *Scheduler) Wait() { <-s.done }

func (s *Scheduler) notify() {
	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *Scheduler) dispatch() {
	defer close(s.done)
	for {
		s.mu.Lock()
		next, ok := s.pending.Peek()
		var due time.Time
		if ok {
			due = s.origin.Add(time.Duration(next.tick) * s.delay)
			if !due.After(time.Now()) {
				s.pending.Pop()
				s.mu.Unlock()
				if s.ctx.Err() != nil {
					return
				}
				s.sink(next.p.Y, next.p.X, next.kind)
				continue
			}
		}
		closed := s.closed
		s.mu.Unlock()
		if !ok && closed {
			return
		}

		var (
			timer  *time.Timer
			timerC <-chan time.Time
		)
		if ok {
			timer = time.NewTimer(time.Until(due))
			timerC = timer.C
		}
		select {
		case <-timerC:
		case <-s.wake:
		case <-s.ctx.Done():
		}
		if timer != nil {
			timer.Stop()
		}
		if s.ctx.Err() != nil {
			return
		}
	}
}
