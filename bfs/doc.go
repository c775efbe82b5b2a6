// Package bfs finds a fewest-cells path between two cells of a grid.Grid by
// breadth-first search, animating the exploration as it goes.
//
// What
//
//   - Explores open cells in non-decreasing step distance from the start,
//     enumerating neighbors in grid.Steps order.
//   - Every newly discovered cell is reported as animate.Visited, then
//     the final path as animate.Path from start to end.
//   - Events are awaited: each one is delivered after the configured delay
//     and before the search continues (animate.Pacer).
//   - Weights are ignored for routing; Result.Cost still prices the path
//     found with the supplied weights.
//
// Why
//
//   - On a uniform-cost grid the first time the end is discovered the path
//     is shortest in cells, so the search stops right there.
//
// Complexity (N = W×H cells)
//
//   - Time:   O(N) (each cell is enqueued at most once)
//   - Memory: O(N) for the queue and the traversal state
//
// Errors
//
//   - search.ErrNilGrid, search.ErrOutOfBounds, search.ErrBlocked from
//     precondition checks, before any event is emitted.
//   - The context error if the run is cancelled between steps.
//
// An unreachable end yields Result.Found == false and a nil error.
package bfs
