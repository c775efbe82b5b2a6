// Package dijkstra implements cost-optimal path search on a grid.Grid with
// per-cell entry surcharges. One engine serves both Dijkstra's algorithm and
// A*: the only difference is the frontier priority (Mode).
//
//   - ModeDijkstra: priority = accumulated cost.
//   - ModeAStar:    priority = accumulated cost + heuristic estimate to the end.
//
// Entering a cell costs one unit plus its surcharge (grid.Weights.StepCost),
// so with no weights the result is the fewest-cells path, like BFS.
//
// Notes on implementation choices:
//
//   - Lazy decrease-key: a relaxed cell is pushed again; an entry whose cost
//     no longer matches the cell's best-known cost is stale and skipped.
//   - The search stops as soon as the end is relaxed. Entry cost depends only
//     on the entered cell, so the first relaxation of the end comes from a
//     cost-minimal predecessor (for A* this needs a consistent heuristic,
//     which Manhattan distance is).
//   - Ties are broken by insertion order.
//
// Events (awaited): Visited when a cell is popped, Queued when a cell's cost
// is lowered, then Path for the final path. The end cell is reported Queued,
// never Visited.
//
// Complexity:
//
//   - Time:  O(N log N), N = W×H (at most 4 relaxations per cell).
//   - Space: O(N) for the traversal state and the frontier.
//
// Errors:
//
//   - search.ErrNilGrid, search.ErrOutOfBounds, search.ErrBlocked.
//   - ErrUnknownMode for a Mode outside ModeDijkstra/ModeAStar.
//   - the context error when cancelled between steps.
package dijkstra
