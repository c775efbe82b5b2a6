// Package engine is the caller-facing facade of gridsearch: it selects a
// strategy by name, turns a raw request (0/1 matrix, endpoints, weighted
// cells, speed) into a validated run, and guards the single
// run-in-progress rule.
//
// What
//
//   - Algorithm: BFS, DFS, GBFS, Dijkstra, AStar with ParseAlgorithm and
//     text (JSON) encoding.
//   - Run(ctx, req, sink): one-shot dispatch.
//   - Runner: serializes runs (ErrBusy while a run or its animation is in
//     flight), tags each one with a random RunID and enforces an optional
//     cell limit.
//
// Only Dijkstra and AStar route by weights. The other strategies ignore
// them for routing, although Result.Cost still prices their path.
//
// Errors
//
//   - ErrUnknownAlgorithm for unknown names or values.
//   - ErrBusy if a Runner is already executing.
//   - ErrTooLarge if the grid exceeds the Runner's cell limit.
//   - grid, animate and search sentinel errors for malformed requests.
package engine
