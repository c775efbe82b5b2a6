// Package grid models a rectangular 2-D occupancy grid as an implicit
// 4-connected graph and holds the per-run traversal bookkeeping that every
// search strategy in gridsearch shares.
//
// What:
//
//   - Grid wraps a rectangular [][]int of wall/open cells (0 = open,
//     anything else = wall). It is immutable once built.
//   - Neighbors enumerates the in-bounds axis-aligned neighbors of a cell in
//     the fixed Steps order, so every algorithm breaks ties identically.
//   - Weights is a sparse Point → surcharge map; StepCost(p) = 1 + surcharge.
//   - State is an arena of visited flags, accumulated costs and predecessor
//     indices, addressed by the flattened row-major cell index.
//   - State.Path walks predecessor indices from a goal back to the start.
//
// Why:
//
//   - Predecessors are stored as indices, not pointers, so the search tree
//     has no cyclic references and path reconstruction is index-following.
//   - A single Steps order keeps visitation order reproducible run to run.
//
// Complexity:
//
//   - New:       O(W×H) time and memory (deep copy).
//   - Neighbors: O(1).
//   - NewState:  O(W×H).
//   - Path:      O(len(path)), bounded by W×H.
//
// Errors:
//
//   - ErrEmptyGrid:      input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrNegativeWeight: a weight surcharge is negative.
//   - ErrBrokenChain:    predecessor links do not lead back to a root.
package grid
