package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/katalvlaran/gridsearch/animate"
	"github.com/katalvlaran/gridsearch/engine"
)

// startRun streams one search as NDJSON: an eventLine per animation event, then
// a resultLine once the animation has been fully delivered.
func (s *Server) startRun(ctx *gin.Context) {
	var req engine.Request
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Speed == 0 {
		req.Speed = s.defaultSpeed
	}

	st := newStream(ctx.Writer, s.log)
	out, err := s.runner.Start(ctx.Request.Context(), req, st.event)
	if err != nil {
		s.log.Warn("run rejected", "algorithm", req.Algorithm, "error", err)
		if st.isStarted() {
			st.finish(resultLine{Run: st.runID(), Error: err.Error()})
			return
		}
		ctx.JSON(statusOf(err), gin.H{"error": err.Error()})
		return
	}

	<-out.Result.Done
	res := out.Result
	st.finish(resultLine{Run: out.ID, Found: res.Found, Length: res.Length(), Cost: res.Cost})
	s.log.Info("run finished",
		"run", out.ID,
		"algorithm", out.Algorithm,
		"found", res.Found,
		"length", res.Length(),
		"weighted", out.Algorithm.Weighted(),
		"visited", len(res.Order),
	)
}

func statusOf(err error) int {
	switch {
	case errors.Is(err, engine.ErrBusy):
		return http.StatusConflict
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	}
	return http.StatusBadRequest
}

// stream serializes NDJSON writes coming from the handler goroutine and,
// for fire-and-forget runs, from the scheduler goroutine. After finish, or
// after the first failed write, every later write is dropped.
type stream struct {
	mu      sync.Mutex
	w       gin.ResponseWriter
	enc     *json.Encoder
	log     *slog.Logger
	seq     int
	run     uuid.UUID
	started bool
	closed  bool
	err     error
}

func newStream(w gin.ResponseWriter, log *slog.Logger) *stream {
	return &stream{w: w, enc: json.NewEncoder(w), log: log}
}

func (st *stream) begin() {
	if st.started {
		return
	}
	st.started = true
	st.w.Header().Set("Content-Type", "application/x-ndjson")
	st.w.WriteHeader(http.StatusOK)
}

// write encodes one line; callers hold st.mu.
func (st *stream) write(v any) {
	if st.err != nil {
		return
	}
	if err := st.enc.Encode(v); err != nil {
		st.err = err
		st.log.Debug("stream write failed", "run", st.run, "error", err)
		return
	}
	st.w.Flush()
}

func (st *stream) event(run uuid.UUID, row, col int, kind animate.Kind) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.closed {
		return
	}
	st.begin()
	st.run = run
	st.write(eventLine{Run: run, Row: row, Col: col, Kind: kind, Seq: st.seq})
	st.seq++
}

func (st *stream) finish(line resultLine) {
	st.mu.Lock()
	defer st.mu.Unlock()
	if st.closed {
		return
	}
	st.begin()
	st.write(line)
	st.closed = true
}

func (st *stream) isStarted() bool {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.started
}

func (st *stream) runID() uuid.UUID {
	st.mu.Lock()
	defer st.mu.Unlock()
	return st.run
}
