package i

import (
	"context"

	dmn "github.com/codeprimate/webmaze-api/domain"
	"github.com/codeprimate/webmaze-api/mazegen"
	"github.com/google/uuid"
)

// Generation modes accepted by CreateMazeRequest.
const (
	ModePlain     = "plain"
	ModeEnhanced  = "enhanced"
	ModeOptimized = "optimized"
)

// CreateMazeRequest carries everything one generation call needs. A zero
// Seed asks the service to pick one; a zero OwnerID marks the maze as
// anonymously created.
type CreateMazeRequest struct {
	Width    int
	Height   int
	CellSize int
	Seed     int64
	Mode     string
	Params   *mazegen.EnhanceParams // enhanced mode only, nil means defaults
	Attempts int                    // optimized mode only, 0 means the service default
	OwnerID  uuid.UUID
}

// MazeManager orchestrates maze generation, persistence, and the
// hardest-maze board.
type MazeManager interface {
	// CreateMaze generates one maze in the requested mode, persists it,
	// and submits its difficulty to the hardest-maze board.
	CreateMaze(ctx context.Context, req *CreateMazeRequest) (*dmn.Maze, error)

	// CreateBatch generates count mazes on seeds derived from the
	// request's seed, concurrently.
	CreateBatch(ctx context.Context, req *CreateMazeRequest, count int) ([]*dmn.Maze, error)

	// MazeByID retrieves a stored maze by its unique ID.
	MazeByID(id uuid.UUID) (*dmn.Maze, error)

	// RecentMazes retrieves up to limit stored mazes, newest first.
	RecentMazes(limit int) ([]*dmn.Maze, error)

	// HardestMazes retrieves up to limit stored mazes with the highest
	// difficulty scores, hardest first.
	HardestMazes(ctx context.Context, limit int) ([]*dmn.Maze, error)
}
