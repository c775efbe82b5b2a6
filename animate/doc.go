// Package animate defines the contract by which search algorithms report
// cell-state transitions to a caller, and the two pacing models used to
// deliver them.
//
// Events are delivered to a Sink as (row, column, kind). Kinds:
//
//   - Queued:   a cell admitted to a cost/priority frontier (Dijkstra/A* only).
//   - Visited:  a cell whose state has been finalized or expanded.
//   - Path:     a cell of the reconstructed path, emitted start → end.
//   - Weighted: a cell designated as weighted by the maze generator.
//
// Pacing models:
//
//   - Pacer (awaited): Emit waits the inter-step delay, then calls the sink
//     before returning. Step order, emission order and real-time order agree,
//     and the algorithm cannot outrun its animation.
//   - Scheduler (fire-and-forget): the algorithm computes eagerly and
//     schedules each event at tick×delay after the scheduler started. The
//     algorithm may finish long before its events have fired; Done reports
//     when the last one has.
//
// Cancellation: both models honour a context. A cancelled Pacer returns the
// context error to the algorithm; a cancelled Scheduler drops every event
// still pending.
package animate
