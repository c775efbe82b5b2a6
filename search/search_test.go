package search_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/grid"
	"github.com/katalvlaran/gridsearch/search"
)

func TestValidate(t *testing.T) {
	g, err := grid.New([][]int{
		{0, 1},
		{0, 0},
	})
	require.NoError(t, err)

	cases := []struct {
		name       string
		g          *grid.Grid
		start, end grid.Point
		want       error
	}{
		{"nil grid", nil, grid.Point{}, grid.Point{}, search.ErrNilGrid},
		{"start outside", g, grid.Point{X: -1}, grid.Point{}, search.ErrOutOfBounds},
		{"end outside", g, grid.Point{}, grid.Point{X: 0, Y: 2}, search.ErrOutOfBounds},
		{"end on wall", g, grid.Point{}, grid.Point{X: 1, Y: 0}, search.ErrBlocked},
		{"ok", g, grid.Point{}, grid.Point{X: 1, Y: 1}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := search.Validate(tc.g, tc.start, tc.end)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestOptions_Defaults(t *testing.T) {
	o := search.Apply()
	assert.NotNil(t, o.Ctx)
	assert.NotNil(t, o.Sink)
	assert.Zero(t, o.Delay)
	assert.Equal(t, 4, o.Heuristic(grid.Point{}, grid.Point{X: 1, Y: 3}))
	assert.Nil(t, o.Weights)
}

func TestOptions_Apply(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	w := grid.Weights{{X: 1}: 2}

	o := search.Apply(
		search.WithContext(ctx),
		search.WithSpeed(4),
		search.WithWeights(w),
		search.WithHeuristic(func(a, b grid.Point) int { return 0 }),
		search.WithSink(nil),
		search.WithContext(nil),
	)
	assert.Equal(t, ctx, o.Ctx)
	assert.Equal(t, 25*time.Millisecond, o.Delay)
	assert.Equal(t, 3, o.Weights.StepCost(grid.Point{X: 1}))
	assert.Zero(t, o.Heuristic(grid.Point{}, grid.Point{X: 5}))
	assert.NotNil(t, o.Sink)
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { search.WithSpeed(0) })
	assert.Panics(t, func() { search.WithDelay(-time.Millisecond) })
	assert.Panics(t, func() { search.WithWeights(grid.Weights{{}: -1}) })
}

func TestResult_Length(t *testing.T) {
	r := search.Result{Found: true, Path: grid.Path{{}, {X: 1}}}
	assert.Equal(t, 2, r.Length())
	assert.Zero(t, search.Result{Path: grid.Path{{}}}.Length())
}

func TestPathCost(t *testing.T) {
	path := grid.Path{{X: 0}, {X: 1}, {X: 2}}
	assert.Equal(t, 2, search.PathCost(path, nil))
	assert.Equal(t, 5, search.PathCost(path, grid.Weights{{X: 1}: 3, {X: 0}: 9}))
}

func TestDelivered(t *testing.T) {
	select {
	case <-search.Delivered():
	default:
		t.Fatal("Delivered channel must be closed")
	}
}
