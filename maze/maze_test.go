package maze_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/animate"
	"github.com/katalvlaran/gridsearch/bfs"
	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/maze"
)

func TestGenerate_TooSmall(t *testing.T) {
	for _, size := range [][2]int{{0, 0}, {1, 5}, {5, 1}, {-3, 4}} {
		_, err := maze.Generate(size[0], size[1])
		assert.ErrorIs(t, err, maze.ErrTooSmall, "size %v", size)
	}
}

// TestGenerate_AlwaysSolvable checks, over many seeds and sizes, that the
// endpoints sit in their quadrants and BFS connects them.
func TestGenerate_AlwaysSolvable(t *testing.T) {
	sizes := [][2]int{{2, 2}, {3, 2}, {3, 7}, {10, 10}, {25, 15}}
	for _, size := range sizes {
		w, h := size[0], size[1]
		for seed := int64(1); seed <= 40; seed++ {
			m, err := maze.Generate(w, h, maze.WithSeed(seed))
			require.NoError(t, err)

			assert.NotEqual(t, m.Start, m.End)
			assert.Less(t, m.Start.X, (w+1)/2)
			assert.Less(t, m.Start.Y, (h+1)/2)
			assert.GreaterOrEqual(t, m.End.X, w/2)
			assert.GreaterOrEqual(t, m.End.Y, h/2)

			require.NotEmpty(t, m.Path)
			assert.Equal(t, m.Start, m.Path[0])
			assert.Equal(t, m.End, m.Path[len(m.Path)-1])
			for _, p := range m.Path {
				assert.True(t, m.Grid.IsOpen(p), "corridor cell %v is a wall", p)
			}

			res, err := bfs.Search(m.Grid, m.Start, m.End)
			require.NoError(t, err)
			assert.True(t, res.Found, "%dx%d seed %d:\n%s", w, h, seed, m.Grid)
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	a, err := maze.Generate(12, 9, maze.WithSeed(42))
	require.NoError(t, err)
	b, err := maze.Generate(12, 9, maze.WithRand(rand.New(rand.NewSource(42))))
	require.NoError(t, err)

	assert.Equal(t, a.Values(), b.Values())
	assert.Equal(t, a.Start, b.Start)
	assert.Equal(t, a.End, b.End)
	assert.Equal(t, a.Path, b.Path)
}

func TestGenerate_OpenProbabilityExtremes(t *testing.T) {
	m, err := maze.Generate(8, 6, maze.WithSeed(3), maze.WithOpenProbability(0))
	require.NoError(t, err)
	open := 0
	for i := 0; i < m.Grid.Size(); i++ {
		if m.Grid.IsOpen(m.Grid.PointAt(i)) {
			open++
		}
	}
	assert.Equal(t, len(m.Path), open, "only the corridor is open")

	m, err = maze.Generate(8, 6, maze.WithSeed(3), maze.WithOpenProbability(1))
	require.NoError(t, err)
	for _, row := range m.Values() {
		for _, v := range row {
			assert.Zero(t, v)
		}
	}
}

func TestGenerate_Weights(t *testing.T) {
	var rec animate.Recorder
	m, err := maze.Generate(10, 10, maze.WithSeed(9), maze.WithOpenProbability(1),
		maze.WithWeights(1, 4, rec.Sink()))
	require.NoError(t, err)

	assert.Len(t, m.Weights, 100-len(m.Path))
	events := rec.Events()
	require.Len(t, events, len(m.Weights))
	for _, e := range events {
		p := grid.Point{X: e.Col, Y: e.Row}
		assert.Equal(t, animate.Weighted, e.Kind)
		assert.Equal(t, 4, m.Weights.Surcharge(p))
		assert.False(t, m.Path.Contains(p))
	}

	half, err := maze.Generate(10, 10, maze.WithSeed(9), maze.WithOpenProbability(1),
		maze.WithWeights(0.5, 2, nil))
	require.NoError(t, err)
	assert.InDelta(t, float64(100-len(half.Path))/2, float64(len(half.Weights)), 0.5)

	none, err := maze.Generate(10, 10, maze.WithSeed(9))
	require.NoError(t, err)
	assert.Empty(t, none.Weights)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { maze.WithRand(nil) })
	assert.Panics(t, func() { maze.WithOpenProbability(1.5) })
	assert.Panics(t, func() { maze.WithOpenProbability(-0.1) })
	assert.Panics(t, func() { maze.WithWeights(2, 1, nil) })
	assert.Panics(t, func() { maze.WithWeights(0.5, -1, nil) })
}
