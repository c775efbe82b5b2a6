// Package gridsearch computes and animates paths on 2-D occupancy grids and
// generates solvable mazes to run them on.
//
// What is gridsearch?
//
//	An engine behind a path-finding visualizer:
//		• Grid model: immutable open/wall cells, 4-neighborhood, weights
//		• Strategies: BFS, DFS, greedy best-first, Dijkstra, A*
//		• Animation: every cell-state change is reported to a sink, paced by
//		  a fixed delay (awaited) or scheduled on a timeline (fire-and-forget)
//		• Maze generator: random fill plus a biased random walk that always
//		  connects start and end
//		• Service: gridsearchd streams runs as NDJSON over HTTP
//
// Under the hood, everything is organized in subpackages:
//
//	grid/       Grid, Point, Steps, Weights, traversal State, Manhattan
//	animate/    event kinds, Sink, Recorder, Pacer, Scheduler, speed→delay
//	search/     shared options, precondition checks, Result
//	bfs/        breadth-first search
//	dfs/        iterative three-color depth-first search
//	gbfs/       greedy best-first search
//	dijkstra/   Dijkstra and A* on one engine
//	maze/       maze generation
//	engine/     algorithm registry, request dispatch, single-run Runner
//	config/     .env / environment configuration
//	server/     gin HTTP API
//
// Quick ASCII example (S start, E end, # wall):
//
//	S . # .
//	. . # .
//	. . . E
//
//	BFS, Dijkstra and A* all return a 6-cell path; DFS may wander longer.
//
//	go get github.com/katalvlaran/gridsearch
package gridsearch
