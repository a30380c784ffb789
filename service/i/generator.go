package i

import (
	"github.com/codeprimate/webmaze-api/mazegen"
)

// MazeGenerator produces mazes for the service layer. Implementations
// own any per-call generation state, so concurrent calls with distinct
// seeds are independent.
type MazeGenerator interface {
	// Plain builds an unenhanced maze.
	Plain(width, height, cellSize int, seed int64) (*mazegen.Maze, error)

	// Enhanced builds a maze with persistent carving and strategic wall
	// removal driven by the given parameters.
	Enhanced(width, height, cellSize int, seed int64, params mazegen.EnhanceParams) (*mazegen.Maze, error)

	// Optimized runs the best-of-N parameter search and returns the
	// winning maze.
	Optimized(width, height, cellSize int, seed int64, attempts int) (*mazegen.Maze, error)
}
