// Package search holds what every grid path-finding strategy shares:
// the run options, the precondition check and the Result type.
//
// What
//
//   - Options: context, animation sink, inter-step delay, heuristic and
//     per-cell weights, configured through functional Option values.
//   - Validate: rejects a nil grid, endpoints outside the grid and
//     endpoints placed on walls before any event is emitted.
//   - Result: found flag, start→end path, accumulated cost, visitation
//     order and a Done channel that closes once the run's animation has
//     been fully delivered.
//
// Options
//
//   - DefaultOptions(): background context, Discard sink, no delay,
//     Manhattan heuristic, no weights.
//   - WithContext(ctx):   cancellation between steps.
//   - WithSink(s):        receives (row, col, kind) for every transition.
//   - WithDelay(d):       fixed pause before every event (panics if d < 0).
//   - WithSpeed(n):       delay of floor(100/n) ms (panics if n <= 0).
//   - WithHeuristic(h):   goal-distance estimate for GBFS and A*.
//   - WithWeights(w):     entry surcharges for Dijkstra and A* (panics on a
//     negative surcharge).
//
// Errors
//
//   - ErrNilGrid      if the grid pointer is nil.
//   - ErrOutOfBounds  if start or end lies outside the grid.
//   - ErrBlocked      if start or end is a wall.
//
// An unreachable end is not an error: it is reported as Result.Found == false.
package search
