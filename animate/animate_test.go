package animate_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridsearch/animate"
	"github.com/katalvlaran/gridsearch/grid"
)

func TestKind_StringAndParse(t *testing.T) {
	for _, k := range []animate.Kind{animate.Queued, animate.Visited, animate.Path, animate.Weighted} {
		got, err := animate.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	got, err := animate.ParseKind(" VISITED ")
	require.NoError(t, err)
	assert.Equal(t, animate.Visited, got)

	_, err = animate.ParseKind("wall")
	assert.ErrorIs(t, err, animate.ErrUnknownKind)
	assert.Equal(t, "Kind(0)", animate.Kind(0).String())
}

func TestEvent_JSON(t *testing.T) {
	b, err := json.Marshal(animate.Event{Row: 2, Col: 3, Kind: animate.Path, Seq: 7})
	require.NoError(t, err)
	assert.JSONEq(t, `{"row":2,"col":3,"kind":"path","seq":7}`, string(b))

	var e animate.Event
	require.NoError(t, json.Unmarshal(b, &e))
	assert.Equal(t, animate.Path, e.Kind)
}

func TestDelayForSpeed(t *testing.T) {
	cases := []struct {
		speed int
		want  time.Duration
	}{
		{1, 100 * time.Millisecond},
		{3, 33 * time.Millisecond},
		{5, 20 * time.Millisecond},
		{200, 0},
	}
	for _, tc := range cases {
		got, err := animate.DelayForSpeed(tc.speed)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "speed %d", tc.speed)
	}
	for _, bad := range []int{0, -4} {
		_, err := animate.DelayForSpeed(bad)
		assert.True(t, errors.Is(err, animate.ErrBadSpeed), "speed %d: %v", bad, err)
	}
}

// TestPacer_OrderAndRowCol verifies the (row, col) convention and synchronous delivery.
func TestPacer_OrderAndRowCol(t *testing.T) {
	var rec animate.Recorder
	pc := animate.NewPacer(context.Background(), rec.Sink(), 0)

	require.NoError(t, pc.Emit(grid.Point{X: 3, Y: 1}, animate.Visited))
	require.Len(t, rec.Events(), 1, "Emit must deliver before returning")
	require.NoError(t, pc.EmitPath(grid.Path{{X: 0, Y: 0}, {X: 1, Y: 0}}))

	assert.Equal(t, []animate.Event{
		{Row: 1, Col: 3, Kind: animate.Visited, Seq: 0},
		{Row: 0, Col: 0, Kind: animate.Path, Seq: 1},
		{Row: 0, Col: 1, Kind: animate.Path, Seq: 2},
	}, rec.Events())
}

func TestPacer_WaitsDelay(t *testing.T) {
	pc := animate.NewPacer(nil, nil, 5*time.Millisecond)
	begin := time.Now()
	for i := 0; i < 3; i++ {
		require.NoError(t, pc.Emit(grid.Point{}, animate.Visited))
	}
	assert.GreaterOrEqual(t, time.Since(begin), 15*time.Millisecond)
}

func TestPacer_Cancelled(t *testing.T) {
	var rec animate.Recorder
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	pc := animate.NewPacer(ctx, rec.Sink(), time.Hour)

	err := pc.Emit(grid.Point{}, animate.Visited)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, rec.Events())
}

// TestScheduler_TickOrder schedules out of tick order and expects delivery
// sorted by tick, insertion order breaking ties.
func TestScheduler_TickOrder(t *testing.T) {
	var rec animate.Recorder
	s := animate.NewScheduler(context.Background(), rec.Sink(), 20*time.Millisecond)
	s.Schedule(grid.Point{X: 2}, animate.Visited, 2)
	s.Schedule(grid.Point{X: 0}, animate.Visited, 0)
	s.Schedule(grid.Point{X: 1}, animate.Visited, 1)
	s.Schedule(grid.Point{X: 3}, animate.Path, 1)
	s.Close()

	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("scheduler did not drain")
	}

	var cols []int
	for _, e := range rec.Events() {
		cols = append(cols, e.Col)
	}
	assert.Equal(t, []int{0, 1, 3, 2}, cols)

	// Scheduling after Close is ignored.
	s.Schedule(grid.Point{}, animate.Visited, 0)
	assert.Len(t, rec.Events(), 4)
}

// TestScheduler_ReturnsBeforeFiring shows the fire-and-forget contract:
// Schedule returns immediately, events arrive later.
func TestScheduler_ReturnsBeforeFiring(t *testing.T) {
	var rec animate.Recorder
	s := animate.NewScheduler(context.Background(), rec.Sink(), 50*time.Millisecond)
	s.Schedule(grid.Point{}, animate.Visited, 10)
	s.Close()

	assert.Empty(t, rec.Events(), "nothing may fire before its offset")
	s.Wait()
	assert.Len(t, rec.Events(), 1)
}

func TestScheduler_CancelDropsPending(t *testing.T) {
	var rec animate.Recorder
	ctx, cancel := context.WithCancel(context.Background())
	s := animate.NewScheduler(ctx, rec.Sink(), time.Hour)
	s.Schedule(grid.Point{}, animate.Visited, 1)
	cancel()

	select {
	case <-s.Done():
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled scheduler did not stop")
	}
	assert.Empty(t, rec.Events())
}

func TestRecorder_OfKind(t *testing.T) {
	var rec animate.Recorder
	sink := rec.Sink()
	sink(0, 0, animate.Visited)
	sink(0, 1, animate.Queued)
	sink(0, 2, animate.Visited)

	got := rec.OfKind(animate.Visited)
	require.Len(t, got, 2)
	assert.Equal(t, 2, got[1].Col)
	assert.Equal(t, 2, got[1].Seq)
}
