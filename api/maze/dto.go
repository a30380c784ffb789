// Package mazeapi provides structures and utilities for maze generation
// requests and responses.
package mazeapi

import (
	"time"

	dmn "github.com/codeprimate/webmaze-api/domain"
	"github.com/codeprimate/webmaze-api/mazegen"
	"github.com/codeprimate/webmaze-api/service/i"
	"github.com/google/uuid"
)

// EnhanceParamsRequest carries the optional tuning knobs for enhanced
// generation. All values are fractions in [0, 1]; out-of-range values
// are clamped by the generator.
type EnhanceParamsRequest struct {
	WallRemovalFactor      float64 `json:"wallRemovalFactor"`
	DeadEndBias            float64 `json:"deadEndBias"`
	DirectionalPersistence float64 `json:"directionalPersistence"`
	ComplexityBalance      float64 `json:"complexityBalance"`
}

// CreateMazeRequest represents a request to generate a new maze. Mode
// selects the pipeline: "plain", "enhanced", or "optimized" (empty means
// plain). A zero seed lets the server pick one; the chosen seed comes
// back in the response so the maze can be reproduced.
type CreateMazeRequest struct {
	Width    int                   `json:"width" binding:"required"`
	Height   int                   `json:"height" binding:"required"`
	CellSize int                   `json:"cellSize"`
	Seed     int64                 `json:"seed"`
	Mode     string                `json:"mode"`
	Attempts int                   `json:"attempts"`
	Params   *EnhanceParamsRequest `json:"params"`
}

// CreateBatchRequest represents a request to generate several mazes on
// seeds derived from the base request's seed.
type CreateBatchRequest struct {
	CreateMazeRequest
	Count int `json:"count" binding:"required"`
}

// toServiceRequest maps the DTO onto the service-layer request.
func (r *CreateMazeRequest) toServiceRequest(owner uuid.UUID) *i.CreateMazeRequest {
	req := &i.CreateMazeRequest{
		Width:    r.Width,
		Height:   r.Height,
		CellSize: r.CellSize,
		Seed:     r.Seed,
		Mode:     r.Mode,
		Attempts: r.Attempts,
		OwnerID:  owner,
	}
	if r.Params != nil {
		req.Params = &mazegen.EnhanceParams{
			WallRemovalFactor:      r.Params.WallRemovalFactor,
			DeadEndBias:            r.Params.DeadEndBias,
			DirectionalPersistence: r.Params.DirectionalPersistence,
			ComplexityBalance:      r.Params.ComplexityBalance,
		}
	}
	return req
}

// MazeResponse carries a stored maze for rendering clients. Walls holds
// one bitmask per cell in row-major order (north=1, east=2, south=4,
// west=8); clients validate moves against exactly these bits. The
// solution is included only where the endpoint says so.
type MazeResponse struct {
	ID         string          `json:"id"`
	Width      int             `json:"width"`
	Height     int             `json:"height"`
	CellSize   int             `json:"cellSize"`
	Seed       int64           `json:"seed"`
	Walls      []int32         `json:"walls"`
	Entrance   dmn.Opening     `json:"entrance"`
	Exit       dmn.Opening     `json:"exit"`
	Difficulty dmn.Difficulty  `json:"difficulty"`
	Solution   []dmn.PathPoint `json:"solution,omitempty"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// SolutionResponse carries just the solution path of a stored maze.
type SolutionResponse struct {
	ID       string          `json:"id"`
	Solution []dmn.PathPoint `json:"solution"`
}

// newMazeResponse converts a stored maze into its response form,
// withholding the solution unless asked for it.
func newMazeResponse(m *dmn.Maze, withSolution bool) *MazeResponse {
	response := &MazeResponse{
		ID:         m.ID.String(),
		Width:      m.Width,
		Height:     m.Height,
		CellSize:   m.CellSize,
		Seed:       m.Seed,
		Walls:      m.Walls,
		Entrance:   m.Entrance,
		Exit:       m.Exit,
		Difficulty: m.Difficulty,
		CreatedAt:  m.CreatedAt,
	}
	if withSolution {
		response.Solution = m.Solution
	}
	return response
}

// newMazeResponses converts a slice of stored mazes, solutions withheld.
func newMazeResponses(mazes []*dmn.Maze) []*MazeResponse {
	responses := make([]*MazeResponse, 0, len(mazes))
	for _, m := range mazes {
		responses = append(responses, newMazeResponse(m, false))
	}
	return responses
}
