// Package gbfs implements greedy best-first search on a grid.Grid: the
// frontier is ordered by the heuristic distance to the end only, so the
// search heads straight for the goal and returns a path that is usually,
// but not always, the shortest.
//
// Frontier ties are broken by insertion order, which keeps runs
// reproducible. The goal test is heuristic(cell, end) == 0, applied when a
// cell is discovered; with the default Manhattan heuristic that is exactly
// the end cell.
//
// Events (awaited, animate.Pacer): Visited for the start and for every
// discovered cell, then Path for the final path, start to end.
//
// Complexity: O(N log N) time, O(N) memory, N = W×H.
package gbfs
