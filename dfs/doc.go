// Package dfs finds some path (not necessarily shortest) between two cells
// of a grid.Grid by iterative depth-first search.
//
// What:
//
//   - Explicit stack of cells with White/Gray/Black coloring: a cell turns
//     Black when it is scanned, Gray when it is suspended under a freshly
//     pushed child, and Black again when it is resumed and rescanned.
//   - From the top of the stack the first open, unvisited neighbor in
//     grid.Steps order is taken; a dead end is popped.
//   - Events are fire-and-forget (animate.Scheduler): each discovered cell is
//     scheduled at tick counter, the path cells at the ticks after the one of
//     the end cell. Search returns as soon as the outcome is known and
//     Result.Done closes when the last scheduled event has fired.
//
// Why:
//
//   - Cheapest strategy in memory; useful as a contrast in the visualizer.
//
// Complexity:
//
//   - Time O(N) scans amortized over 4 neighbors each, Memory O(N), N = W×H.
//
// Errors:
//
//   - search.ErrNilGrid, search.ErrOutOfBounds, search.ErrBlocked.
//   - context.Canceled (or the deadline error) if cancelled between steps;
//     pending events are dropped.
package dfs
