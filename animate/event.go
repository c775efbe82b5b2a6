package animate

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"
)

// Sentinel errors for the animate package.
var (
	// ErrBadSpeed indicates a non-positive animation speed.
	ErrBadSpeed = errors.New("animate: speed must be positive")
	// ErrUnknownKind indicates an event kind name that ParseKind does not know.
	ErrUnknownKind = errors.New("animate: unknown event kind")
)

// Kind is the cell-state transition reported by an event.
type Kind uint8

const (
	// Queued marks a cell admitted to a cost/priority frontier.
	Queued Kind = iota + 1
	// Visited marks a finalized or expanded cell.
	Visited
	// Path marks a cell of the final path.
	Path
	// Weighted marks a cell designated weighted during maze generation.
	Weighted
)

var kindNames = map[Kind]string{
	Queued:   "queued",
	Visited:  "visited",
	Path:     "path",
	Weighted: "weighted",
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// ParseKind is the inverse of Kind.String (case-insensitive).
func ParseKind(s string) (Kind, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for k, name := range kindNames {
		if name == s {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	if _, ok := kindNames[k]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, uint8(k))
	}
	return []byte(k.String()), nil
}

// UnmarshalText decodes a kind name.
func (k *Kind) UnmarshalText(b []byte) error {
	v, err := ParseKind(string(b))
	if err != nil {
		return err
	}
	*k = v
	return nil
}

// Sink receives one event per cell-state transition.
type Sink func(row, col int, kind Kind)

// Discard is a Sink that drops every event.
func Discard(int, int, Kind) {}

// Event is a recorded sink invocation. Seq numbers events from 0 in
// delivery order.
type Event struct {
	Row  int  `json:"row"`
	Col  int  `json:"col"`
	Kind Kind `json:"kind"`
	Seq  int  `json:"seq"`
}

// Recorder collects events in delivery order. It is safe for concurrent use.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

// Sink returns a Sink appending to r.
func (r *Recorder) Sink() Sink {
	return func(row, col int, kind Kind) {
		r.mu.Lock()
		r.events = append(r.events, Event{Row: row, Col: col, Kind: kind, Seq: len(r.events)})
		r.mu.Unlock()
	}
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

// OfKind returns the recorded events of kind k, in delivery order.
func (r *Recorder) OfKind(k Kind) []Event {
	var out []Event
	for _, e := range r.Events() {
		if e.Kind == k {
			out = append(out, e)
		}
	}
	return out
}

// baseSpeedDelay is the delay at speed 1.
const baseSpeedDelay = 100 * time.Millisecond

// DelayForSpeed converts a UI speed setting into the inter-step delay
// floor(100/speed) milliseconds. Returns ErrBadSpeed for speed <= 0.
func DelayForSpeed(speed int) (time.Duration, error) {
	if speed <= 0 {
		return 0, fmt.Errorf("%w: %d", ErrBadSpeed, speed)
	}
	return time.Duration(int64(baseSpeedDelay/time.Millisecond)/int64(speed)) * time.Millisecond, nil
}
