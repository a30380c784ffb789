package domain

import (
	"errors"
	"time"

	"github.com/codeprimate/webmaze-api/mazegen"
	"github.com/google/uuid"
)

// Wall bits for the packed per-cell wall encoding.
const (
	WallNorth = 1 << 0
	WallEast  = 1 << 1
	WallSouth = 1 << 2
	WallWest  = 1 << 3
)

var (
	// ErrNoGeneratedMaze is returned when a record is created without a maze.
	ErrNoGeneratedMaze = errors.New("no generated maze to store")
	// ErrUnfinishedMaze is returned when the maze is missing openings or a solution.
	ErrUnfinishedMaze = errors.New("maze is missing openings or a solution")
)

// Opening is one entrance or exit on the maze boundary.
type Opening struct {
	Row  int    `bson:"row" json:"row"`
	Col  int    `bson:"col" json:"col"`
	Side string `bson:"side" json:"side"`
}

// PathPoint is one cell on the solution path.
type PathPoint struct {
	Row int `bson:"row" json:"row"`
	Col int `bson:"col" json:"col"`
}

// Difficulty mirrors the scorer's component breakdown for storage.
type Difficulty struct {
	SolutionLength     int     `bson:"solutionLength" json:"solutionLength"`
	MinimumLength      int     `bson:"minimumLength" json:"minimumLength"`
	LengthFactor       float64 `bson:"lengthFactor" json:"lengthFactor"`
	DecisionPoints     int     `bson:"decisionPoints" json:"decisionPoints"`
	PathDecisionPoints int     `bson:"pathDecisionPoints" json:"pathDecisionPoints"`
	BranchComplexity   float64 `bson:"branchComplexity" json:"branchComplexity"`
	SizeAdjustment     float64 `bson:"sizeAdjustment" json:"sizeAdjustment"`
	AbsoluteAdjustment float64 `bson:"absoluteAdjustment" json:"absoluteAdjustment"`
	Score              float64 `bson:"score" json:"score"`
}

// Maze represents the BSON version of a generated maze for database
// storage. Walls holds one bitmask per cell in row-major order, so
// clients can validate moves against the exact wall layout the
// generator produced.
type Maze struct {
	ID         uuid.UUID   `bson:"_id"`
	OwnerID    uuid.UUID   `bson:"ownerId"`
	Width      int         `bson:"width"`
	Height     int         `bson:"height"`
	CellSize   int         `bson:"cellSize"`
	Seed       int64       `bson:"seed"`
	Walls      []int32     `bson:"walls"`
	Entrance   Opening     `bson:"entrance"`
	Exit       Opening     `bson:"exit"`
	Solution   []PathPoint `bson:"solution"`
	Difficulty Difficulty  `bson:"difficulty"`
	CreatedAt  time.Time   `bson:"createdAt"`
}

// MazeConfig holds parameters for creating a stored Maze from a
// generated one. A zero OwnerID marks an anonymously created maze.
type MazeConfig struct {
	ID        uuid.UUID
	OwnerID   uuid.UUID
	Generated *mazegen.Maze
}

// NewMaze creates a storable maze record from a fully generated maze.
func NewMaze(config MazeConfig) (*Maze, error) {
	g := config.Generated
	if g == nil {
		return nil, ErrNoGeneratedMaze
	}
	if g.Entrance() == nil || g.Exit() == nil || len(g.SolutionPath()) == 0 {
		return nil, ErrUnfinishedMaze
	}

	return &Maze{
		ID:         config.ID,
		OwnerID:    config.OwnerID,
		Width:      g.Width(),
		Height:     g.Height(),
		CellSize:   g.CellSize(),
		Seed:       g.Seed(),
		Walls:      packWalls(g),
		Entrance:   packOpening(g.Entrance()),
		Exit:       packOpening(g.Exit()),
		Solution:   packPath(g.SolutionPath()),
		Difficulty: packDifficulty(g.Difficulty()),
		CreatedAt:  time.Now().UTC(),
	}, nil
}

// HasWall reports whether the stored cell has a wall toward the given
// side. Out-of-range positions and unknown sides count as walls.
func (m *Maze) HasWall(row, col int, side string) bool {
	if row < 0 || row >= m.Height || col < 0 || col >= m.Width {
		return true
	}

	mask := m.Walls[row*m.Width+col]
	switch mazegen.Direction(side) {
	case mazegen.North:
		return mask&WallNorth != 0
	case mazegen.East:
		return mask&WallEast != 0
	case mazegen.South:
		return mask&WallSouth != 0
	case mazegen.West:
		return mask&WallWest != 0
	}
	return true
}

func packWalls(g *mazegen.Maze) []int32 {
	walls := make([]int32, 0, g.Width()*g.Height())
	for row := 0; row < g.Height(); row++ {
		for col := 0; col < g.Width(); col++ {
			cell := g.CellAt(row, col)
			var mask int32
			if cell.HasNorthWall() {
				mask |= WallNorth
			}
			if cell.HasEastWall() {
				mask |= WallEast
			}
			if cell.HasSouthWall() {
				mask |= WallSouth
			}
			if cell.HasWestWall() {
				mask |= WallWest
			}
			walls = append(walls, mask)
		}
	}
	return walls
}

func packOpening(o *mazegen.Opening) Opening {
	return Opening{Row: o.Pos.Row, Col: o.Pos.Col, Side: string(o.Side)}
}

func packPath(path []mazegen.CellPosition) []PathPoint {
	points := make([]PathPoint, len(path))
	for i, p := range path {
		points[i] = PathPoint{Row: p.Row, Col: p.Col}
	}
	return points
}

func packDifficulty(b *mazegen.DifficultyBreakdown) Difficulty {
	if b == nil {
		return Difficulty{}
	}
	return Difficulty{
		SolutionLength:     b.SolutionLength,
		MinimumLength:      b.MinimumLength,
		LengthFactor:       b.LengthFactor,
		DecisionPoints:     b.DecisionPoints,
		PathDecisionPoints: b.PathDecisionPoints,
		BranchComplexity:   b.BranchComplexity,
		SizeAdjustment:     b.SizeAdjustment,
		AbsoluteAdjustment: b.AbsoluteAdjustment,
		Score:              b.Score,
	}
}
