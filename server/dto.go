package server

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/gridsearch/animate"
	"github.com/katalvlaran/gridsearch/grid"
)

// eventLine is one NDJSON line per animation event of a run.
type eventLine struct {
	Run  uuid.UUID    `json:"run"`
	Row  int          `json:"row"`
	Col  int          `json:"col"`
	Kind animate.Kind `json:"kind"`
	Seq  int          `json:"seq"`
}

// resultLine closes a run stream once its animation has been delivered.
type resultLine struct {
	Run    uuid.UUID `json:"run"`
	Found  bool      `json:"found"`
	Length int       `json:"length"`
	Cost   int       `json:"cost"`
	Error  string    `json:"error,omitempty"`
}

// MazeRequest is the body of POST /v1/mazes.
type MazeRequest struct {
	Width           int      `json:"width" binding:"required,min=2,max=4096"`
	Height          int      `json:"height" binding:"required,min=2,max=4096"`
	Seed            *int64   `json:"seed"`
	OpenProbability *float64 `json:"openProbability" binding:"omitempty,min=0,max=1"`
	WeightFraction  float64  `json:"weightFraction" binding:"min=0,max=1"`
	WeightCost      int      `json:"weightCost" binding:"min=0"`
}

// MazeResponse is a generated maze in the UI's raw form.
type MazeResponse struct {
	Grid       [][]int      `json:"grid"`
	Start      grid.Point   `json:"start"`
	End        grid.Point   `json:"end"`
	Weights    []grid.Point `json:"weights"`
	WeightCost int          `json:"weightCost"`
}
