package engine_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/animate"
	"github.com/katalvlaran/gridsearch/engine"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/maze"
	"github.com/katalvlaran/gridsearch/search"
)

// fast is a speed whose delay rounds down to zero.
const fast = 1000

func run(t *testing.T, req engine.Request) search.Result {
	t.Helper()
	res, err := engine.Run(context.Background(), req, nil)
	require.NoError(t, err)
	select {
	case <-res.Done:
	case <-time.After(5 * time.Second):
		t.Fatal("animation did not complete")
	}
	return res
}

func open(w, h int) [][]int {
	rows := make([][]int, h)
	for y := range rows {
		rows[y] = make([]int, w)
	}
	return rows
}

// ------------------------------------------------------------------------
// 1. Algorithm names
// ------------------------------------------------------------------------

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]engine.Algorithm{
		"bfs": engine.BFS, "DFS": engine.DFS, " gbfs ": engine.GBFS,
		"Dijkstra": engine.Dijkstra, "astar": engine.AStar, "A*": engine.AStar,
	}
	for in, want := range cases {
		got, err := engine.ParseAlgorithm(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := engine.ParseAlgorithm("bellman-ford")
	assert.ErrorIs(t, err, engine.ErrUnknownAlgorithm)
}

func TestAlgorithm_TextRoundTrip(t *testing.T) {
	for _, a := range engine.Algorithms() {
		b, err := json.Marshal(a)
		require.NoError(t, err)
		var back engine.Algorithm
		require.NoError(t, json.Unmarshal(b, &back))
		assert.Equal(t, a, back)
	}
	_, err := json.Marshal(engine.Algorithm(0))
	assert.Error(t, err)
	assert.True(t, engine.AStar.Weighted())
	assert.False(t, engine.GBFS.Weighted())
}

// ------------------------------------------------------------------------
// 2. Scenarios shared by every algorithm
// ------------------------------------------------------------------------

func TestRun_Scenarios(t *testing.T) {
	wallRow := [][]int{
		{0, 0, 0, 0},
		{0, 0, 0, 0},
		{1, 1, 1, 1},
		{0, 0, 0, 0},
	}
	for _, a := range engine.Algorithms() {
		t.Run(a.String(), func(t *testing.T) {
			res := run(t, engine.Request{Algorithm: a, Grid: open(3, 3), End: grid.Point{X: 2, Y: 2}, Speed: fast})
			assert.GreaterOrEqual(t, res.Length(), 5)
			if a != engine.DFS {
				assert.Equal(t, 5, res.Length())
			}

			res = run(t, engine.Request{Algorithm: a, Grid: open(2, 1), End: grid.Point{X: 1}, Speed: fast})
			assert.Equal(t, 2, res.Length())

			res = run(t, engine.Request{Algorithm: a, Grid: wallRow, End: grid.Point{X: 3, Y: 3}, Speed: fast})
			assert.False(t, res.Found)
			assert.Zero(t, res.Length())
		})
	}
}

func TestRun_WeightedCorridor(t *testing.T) {
	req := engine.Request{
		Grid:       open(5, 1),
		End:        grid.Point{X: 4},
		Weighted:   []grid.Point{{X: 2}},
		WeightCost: 3,
		Speed:      fast,
	}
	for _, a := range []engine.Algorithm{engine.Dijkstra, engine.AStar} {
		req.Algorithm = a
		res := run(t, req)
		assert.Equal(t, 5, res.Length(), a)
		assert.Equal(t, 7, res.Cost, a)
	}
}

// ------------------------------------------------------------------------
// 3. Cross-algorithm properties on generated mazes
// ------------------------------------------------------------------------

func TestRun_Properties(t *testing.T) {
	for seed := int64(1); seed <= 25; seed++ {
		m, err := maze.Generate(14, 10, maze.WithSeed(seed), maze.WithWeights(0.3, 4, nil))
		require.NoError(t, err)
		base := engine.Request{Grid: m.Values(), Start: m.Start, End: m.End, Speed: fast}

		results := map[engine.Algorithm]search.Result{}
		for _, a := range engine.Algorithms() {
			req := base
			req.Algorithm = a
			results[a] = run(t, req)
			require.True(t, results[a].Found, "seed %d %v", seed, a)
		}
		optimum := results[engine.BFS].Length()
		assert.Equal(t, optimum, results[engine.Dijkstra].Length(), "seed %d", seed)
		assert.Equal(t, optimum, results[engine.AStar].Length(), "seed %d", seed)
		assert.GreaterOrEqual(t, results[engine.GBFS].Length(), optimum, "seed %d", seed)
		assert.GreaterOrEqual(t, results[engine.DFS].Length(), optimum, "seed %d", seed)

		// Weighted: A* and Dijkstra agree on the optimal cost, which no
		// weight-blind strategy beats.
		weighted := base
		weighted.Weighted = m.Weights.Points(m.Grid)
		weighted.WeightCost = 4
		costs := map[engine.Algorithm]int{}
		for _, a := range engine.Algorithms() {
			req := weighted
			req.Algorithm = a
			costs[a] = run(t, req).Cost
		}
		assert.Equal(t, costs[engine.Dijkstra], costs[engine.AStar], "seed %d", seed)
		for _, a := range []engine.Algorithm{engine.BFS, engine.DFS, engine.GBFS} {
			assert.GreaterOrEqual(t, costs[a], costs[engine.Dijkstra], "seed %d %v", seed, a)
		}
	}
}

func TestRun_Idempotent(t *testing.T) {
	m, err := maze.Generate(12, 12, maze.WithSeed(11))
	require.NoError(t, err)
	for _, a := range engine.Algorithms() {
		req := engine.Request{Algorithm: a, Grid: m.Values(), Start: m.Start, End: m.End, Speed: fast}
		first, second := run(t, req), run(t, req)
		assert.Equal(t, first.Order, second.Order, a)
		assert.Equal(t, first.Path, second.Path, a)
	}
}

func TestRun_OpenGridLength(t *testing.T) {
	for _, size := range [][2]int{{2, 2}, {7, 3}, {12, 9}} {
		w, h := size[0], size[1]
		for _, a := range []engine.Algorithm{engine.BFS, engine.GBFS, engine.Dijkstra, engine.AStar} {
			res := run(t, engine.Request{Algorithm: a, Grid: open(w, h), End: grid.Point{X: w - 1, Y: h - 1}, Speed: fast})
			assert.Equal(t, (w-1)+(h-1)+1, res.Length(), "%v %v", a, size)
		}
	}
}

// ------------------------------------------------------------------------
// 4. Errors
// ------------------------------------------------------------------------

func TestRun_Errors(t *testing.T) {
	ok := engine.Request{Algorithm: engine.BFS, Grid: open(3, 3), End: grid.Point{X: 2, Y: 2}, Speed: fast}
	cases := []struct {
		name   string
		mutate func(*engine.Request)
		want   error
	}{
		{"unknown algorithm", func(r *engine.Request) { r.Algorithm = 0 }, engine.ErrUnknownAlgorithm},
		{"empty grid", func(r *engine.Request) { r.Grid = nil }, grid.ErrEmptyGrid},
		{"ragged grid", func(r *engine.Request) { r.Grid = [][]int{{0, 0}, {0}} }, grid.ErrNonRectangular},
		{"zero speed", func(r *engine.Request) { r.Speed = 0 }, animate.ErrBadSpeed},
		{"negative surcharge", func(r *engine.Request) { r.WeightCost = -1 }, grid.ErrNegativeWeight},
		{"end outside", func(r *engine.Request) { r.End = grid.Point{X: 3} }, search.ErrOutOfBounds},
		{"start on wall", func(r *engine.Request) { r.Grid, r.End = [][]int{{1, 0}}, grid.Point{X: 1} }, search.ErrBlocked},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := ok
			tc.mutate(&req)
			var rec animate.Recorder
			_, err := engine.Run(context.Background(), req, rec.Sink())
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, rec.Events())
		})
	}
}

// ------------------------------------------------------------------------
// 5. Runner
// ------------------------------------------------------------------------

func TestRunner_TagsEventsWithRunID(t *testing.T) {
	r := engine.NewRunner()
	var ids []uuid.UUID
	sink := func(id uuid.UUID, _, _ int, _ animate.Kind) { ids = append(ids, id) }

	out, err := r.Start(context.Background(),
		engine.Request{Algorithm: engine.BFS, Grid: open(3, 1), End: grid.Point{X: 2}, Speed: fast}, sink)
	require.NoError(t, err)
	assert.Equal(t, engine.BFS, out.Algorithm)
	assert.Equal(t, 3, out.Result.Length())
	require.NotEmpty(t, ids)
	for _, id := range ids {
		assert.Equal(t, out.ID, id)
	}
	assert.False(t, r.Busy(), "awaited runs release the runner on return")

	again, err := r.Start(context.Background(),
		engine.Request{Algorithm: engine.BFS, Grid: open(3, 1), End: grid.Point{X: 2}, Speed: fast}, nil)
	require.NoError(t, err)
	assert.NotEqual(t, out.ID, again.ID)
}

// TestRunner_BusyDuringAnimation keeps a DFS animation in flight and checks
// that a concurrent run is refused until it completes.
func TestRunner_BusyDuringAnimation(t *testing.T) {
	r := engine.NewRunner()
	slow := engine.Request{Algorithm: engine.DFS, Grid: open(5, 1), End: grid.Point{X: 4}, Speed: 4}

	out, err := r.Start(context.Background(), slow, nil)
	require.NoError(t, err)
	assert.True(t, r.Busy())

	_, err = r.Start(context.Background(), slow, nil)
	assert.ErrorIs(t, err, engine.ErrBusy)

	<-out.Result.Done
	assert.Eventually(t, func() bool { return !r.Busy() }, time.Second, 5*time.Millisecond)
}

func TestRunner_Limits(t *testing.T) {
	r := engine.NewRunner(engine.WithMaxCells(8))
	_, err := r.Start(context.Background(), engine.Request{Algorithm: engine.BFS, Grid: open(3, 3), Speed: fast}, nil)
	assert.ErrorIs(t, err, engine.ErrTooLarge)
	assert.False(t, r.Busy())

	_, err = r.Start(context.Background(), engine.Request{Algorithm: engine.BFS, Grid: open(3, 3), Speed: 0}, nil)
	assert.ErrorIs(t, err, engine.ErrTooLarge)

	r = engine.NewRunner(engine.WithMaxCells(9))
	_, err = r.Start(context.Background(), engine.Request{Algorithm: engine.BFS, Grid: open(3, 3), Speed: 0}, nil)
	assert.ErrorIs(t, err, animate.ErrBadSpeed)
	assert.False(t, r.Busy(), "a failed run releases the runner")

	assert.Panics(t, func() { engine.WithMaxCells(-1) })
}
