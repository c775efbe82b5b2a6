package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/katalvlaran/gridsearch/engine"
	"github.com/katalvlaran/gridsearch/maze"
)

// generateMaze generates a solvable maze.
func (s *Server) generateMaze(ctx *gin.Context) {
	var req MazeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if !withinCells(req.Width, req.Height, s.maxCells) {
		err := fmt.Errorf("%w: %dx%d > %d cells", engine.ErrTooLarge, req.Width, req.Height, s.maxCells)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	opts := []maze.Option{maze.WithWeights(req.WeightFraction, req.WeightCost, nil)}
	if req.Seed != nil {
		opts = append(opts, maze.WithSeed(*req.Seed))
	}
	if req.OpenProbability != nil {
		opts = append(opts, maze.WithOpenProbability(*req.OpenProbability))
	}
	m, err := maze.Generate(req.Width, req.Height, opts...)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.log.Debug("maze generated", "width", req.Width, "height", req.Height, "weights", len(m.Weights))
	ctx.JSON(http.StatusOK, MazeResponse{
		Grid:       m.Values(),
		Start:      m.Start,
		End:        m.End,
		Weights:    m.Weights.Points(m.Grid),
		WeightCost: req.WeightCost,
	})
}

// withinCells reports whether a w×h maze fits in limit cells without
// computing w*h, which may overflow. limit ≤ 0 means no limit; h ≥ 2.
func withinCells(w, h, limit int) bool {
	if limit <= 0 {
		return true
	}
	return w <= limit/h
}
