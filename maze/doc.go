// Package maze procedurally generates solvable obstacle grids.
//
// What
//
//   - Random fill: every cell is open with probability WithOpenProbability
//     (0.5 by default), a wall otherwise.
//   - Start is drawn in the top-left quadrant, end in the bottom-right one
//     (redrawn while it equals start).
//   - A biased random walk carves a guaranteed corridor from start to end.
//     With probability p the walk steps toward the end, otherwise in a
//     uniformly random direction; p starts at 0.75 and grows by 0.02 per
//     iteration, so the walk ends up purely greedy and always terminates.
//   - Optionally (WithWeights) a fraction of the open cells off the corridor
//     is marked weighted and reported through an animate.Sink as
//     animate.Weighted.
//
// Determinism
//
//	All randomness flows through one *rand.Rand; WithSeed makes the output
//	reproducible.
//
// Errors
//
//   - ErrTooSmall if width or height is below 2.
//
// Option constructors panic on meaningless input; Generate never panics.
package maze
