// Package server exposes the search engine and the maze generator over
// HTTP/JSON for the visualizer UI.
package server

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridsearch/engine"
)

// shutdownTimeout bounds the graceful drain of in-flight requests.
const shutdownTimeout = 5 * time.Second

// Config holds configuration settings for creating a new Server instance.
type Config struct {
	Addr         string         // address to listen on
	Runner       *engine.Runner // executes runs, one at a time
	Logger       *slog.Logger   // request and lifecycle logs
	DefaultSpeed int            // speed used when a run request omits it
	MaxCells     int            // largest maze accepted by /v1/mazes
}

// Server serves the gridsearch HTTP API.
type Server struct {
	addr         string
	runner       *engine.Runner
	log          *slog.Logger
	defaultSpeed int
	maxCells     int
	router       *gin.Engine
}

// New creates a Server and registers its routes.
func New(cfg Config) *Server {
	s := &Server{
		addr:         cfg.Addr,
		runner:       cfg.Runner,
		log:          cfg.Logger,
		defaultSpeed: cfg.DefaultSpeed,
		maxCells:     cfg.MaxCells,
	}
	if s.runner == nil {
		s.runner = engine.NewRunner(engine.WithMaxCells(cfg.MaxCells))
	}
	if s.log == nil {
		s.log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if s.defaultSpeed <= 0 {
		s.defaultSpeed = 5
	}

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(s.log))
	router.GET("/healthz", s.health)
	v1 := router.Group("/v1")
	{
		v1.GET("/algorithms", s.algorithms)
		v1.POST("/runs", s.startRun)
		v1.POST("/mazes", s.generateMaze)
	}
	s.router = router

	return s
}

// Handler returns the HTTP handler of s.
func (s *Server) Handler() http.Handler { return s.router }

// Run listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	errc := make(chan error, 1)
	go func() {
		s.log.Info("listening", "addr", s.addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) health(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"status": "ok", "busy": s.runner.Busy()})
}

func (s *Server) algorithms(ctx *gin.Context) {
	names := make([]string, 0, len(engine.Algorithms()))
	for _, a := range engine.Algorithms() {
		names = append(names, a.String())
	}
	ctx.JSON(http.StatusOK, gin.H{"algorithms": names})
}

// requestLogger logs one line per request.
func requestLogger(log *slog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()
		ctx.Next()
		log.Info("request",
			"method", ctx.Request.Method,
			"path", ctx.FullPath(),
			"status", ctx.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}
