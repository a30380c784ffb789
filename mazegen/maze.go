/*
Package mazegen generates rectangular grid mazes, scores how hard they are
to solve, and searches a small parameter space for a harder maze than a
plain carve would yield.

It defines the `Maze` structure, composed of `Cell` objects that carry the
wall configuration the rendering and path-drawing collaborators read.

The package includes a perfect-maze generator (randomized iterative
depth-first carve), entrance/exit placement, a breadth-first solution
pathfinder, a multi-factor difficulty scorer, an enhanced generator with
directional persistence and strategic loop insertion, and a best-of-N
optimizer. All randomness flows through one seeded stream per Session, so
identical inputs reproduce identical mazes bit for bit.
*/
package mazegen

import (
	"errors"
	"fmt"
	"strings"
)

// Bounds for maze dimensions. The lower bound leaves room to place
// entrance and exit away from corners.
const (
	MinDimension = 5
	MaxDimension = 100
)

// Generation errors.
var (
	ErrInvalidDimensions = errors.New("maze dimensions out of range")
	ErrNoOpeningSlot     = errors.New("side too short for a non-corner opening")
)

// Opening marks an entrance or exit cell on the maze boundary and the
// exterior side its wall was removed from.
type Opening struct {
	Pos  CellPosition
	Side Direction
}

// clone returns a copy of the opening, nil-safe.
func (o *Opening) clone() *Opening {
	if o == nil {
		return nil
	}
	dup := *o
	return &dup
}

// Maze is a rectangular grid of cells with an entrance, an exit, and the
// solution path between them. It is created once and generated once; after
// generation completes only the enhancer's snapshot/restore cycle may
// mutate it.
type Maze struct {
	width      int
	height     int
	cellSize   int // rendering pass-through, no effect on generation
	seed       int64
	grid       [][]*Cell
	entrance   *Opening
	exit       *Opening
	solution   []CellPosition
	difficulty *DifficultyBreakdown
}

// newMaze initializes a fully walled, unvisited grid of the given size.
// Dimension validation happens in the exported entry points.
func newMaze(width, height, cellSize int, seed int64) *Maze {
	grid := make([][]*Cell, height)
	for r := range grid {
		grid[r] = make([]*Cell, width)
		for c := range grid[r] {
			grid[r][c] = newWalledCell()
		}
	}

	return &Maze{
		width:    width,
		height:   height,
		cellSize: cellSize,
		seed:     seed,
		grid:     grid,
	}
}

// validateDimensions rejects sizes the pipeline cannot handle.
func validateDimensions(width, height int) error {
	if min(width, height) < MinDimension || max(width, height) > MaxDimension {
		return fmt.Errorf("%w: %dx%d not in [%d, %d]", ErrInvalidDimensions, width, height, MinDimension, MaxDimension)
	}
	return nil
}

// Width returns the number of columns.
func (m *Maze) Width() int { return m.width }

// Height returns the number of rows.
func (m *Maze) Height() int { return m.height }

// CellSize returns the rendering cell size the maze was created with.
// It has no effect on generation.
func (m *Maze) CellSize() int { return m.cellSize }

// Seed returns the seed the maze was generated from.
func (m *Maze) Seed() int64 { return m.seed }

// Entrance returns the entrance opening, nil before placement.
func (m *Maze) Entrance() *Opening { return m.entrance }

// Exit returns the exit opening, nil before placement.
func (m *Maze) Exit() *Opening { return m.exit }

// SolutionPath returns the ordered cells from entrance to exit.
func (m *Maze) SolutionPath() []CellPosition {
	path := make([]CellPosition, len(m.solution))
	copy(path, m.solution)
	return path
}

// Difficulty returns the breakdown attached at generation time,
// nil if the maze has not been scored.
func (m *Maze) Difficulty() *DifficultyBreakdown { return m.difficulty }

// InBound reports whether the row and column lie inside the grid.
func (m *Maze) InBound(row, col int) bool {
	return row >= 0 && row < m.height && col >= 0 && col < m.width
}

// CellAt returns the cell at the given position, nil when out of bounds.
// Callers treat the cell as read-only; wall mutation goes through
// OpenWall so facing flags stay consistent.
func (m *Maze) CellAt(row, col int) *Cell {
	if !m.InBound(row, col) {
		return nil
	}
	return m.grid[row][col]
}

func (m *Maze) cellAt(p CellPosition) *Cell {
	return m.grid[p.Row][p.Col]
}

// Neighbor returns the adjacent position in the given direction and
// whether it lies inside the grid.
func (m *Maze) Neighbor(p CellPosition, d Direction) (CellPosition, bool) {
	next := p.Translate(d)
	return next, m.InBound(next.Row, next.Col)
}

// IsExteriorWall reports whether the wall of the cell toward d lies on
// the grid boundary.
func (m *Maze) IsExteriorWall(p CellPosition, d Direction) bool {
	_, inside := m.Neighbor(p, d)
	return !inside
}

// OpenWall removes the wall between a cell and its neighbor in the given
// direction, clearing the matching flags on both sides. Removing an
// already open wall is a no-op; walls on the grid boundary are ignored
// since there is no facing cell to keep consistent.
func (m *Maze) OpenWall(p CellPosition, d Direction) {
	next, inside := m.Neighbor(p, d)
	if !inside {
		return
	}
	m.cellAt(p).SetWall(d, false)
	m.cellAt(next).SetWall(d.Opposite(), false)
}

// closeWall is the symmetric inverse of OpenWall.
func (m *Maze) closeWall(p CellPosition, d Direction) {
	next, inside := m.Neighbor(p, d)
	if !inside {
		return
	}
	m.cellAt(p).SetWall(d, true)
	m.cellAt(next).SetWall(d.Opposite(), true)
}

// IsValidMove checks whether a solver may step between two positions:
// they must be adjacent grid cells and the wall between them must be
// down on both sides. The path-drawing collaborator relies on exactly
// this check, so its semantics must not drift.
func (m *Maze) IsValidMove(from, to CellPosition) bool {
	if !m.InBound(from.Row, from.Col) || !m.InBound(to.Row, to.Col) {
		return false
	}

	for _, d := range directionOrder {
		if from.Translate(d) != to {
			continue
		}
		return !m.cellAt(from).HasWall(d) && !m.cellAt(to).HasWall(d.Opposite())
	}
	return false
}

// openSideCount counts the open sides of the cell at p. Entrance and
// exit cells include their boundary opening, since the opening is a
// cleared exterior wall flag.
func (m *Maze) openSideCount(p CellPosition) int {
	return m.cellAt(p).OpenSideCount()
}

// isDeadEnd reports whether the cell at p has exactly one open side.
func (m *Maze) isDeadEnd(p CellPosition) bool {
	return m.openSideCount(p) == 1
}

// sealExterior re-asserts every boundary wall that is not the entrance
// or exit opening. Wall removal never targets exterior walls, so this is
// a final sweep guaranteeing the invariant that exactly two exterior
// walls are open.
func (m *Maze) sealExterior() {
	isOpening := func(p CellPosition, d Direction) bool {
		if m.entrance != nil && m.entrance.Pos == p && m.entrance.Side == d {
			return true
		}
		if m.exit != nil && m.exit.Pos == p && m.exit.Side == d {
			return true
		}
		return false
	}

	for col := 0; col < m.width; col++ {
		top := CellPosition{Row: 0, Col: col}
		if !isOpening(top, North) {
			m.cellAt(top).SetWall(North, true)
		}
		bottom := CellPosition{Row: m.height - 1, Col: col}
		if !isOpening(bottom, South) {
			m.cellAt(bottom).SetWall(South, true)
		}
	}
	for row := 0; row < m.height; row++ {
		left := CellPosition{Row: row, Col: 0}
		if !isOpening(left, West) {
			m.cellAt(left).SetWall(West, true)
		}
		right := CellPosition{Row: row, Col: m.width - 1}
		if !isOpening(right, East) {
			m.cellAt(right).SetWall(East, true)
		}
	}
}

// openExteriorWalls counts boundary wall flags that are cleared.
func (m *Maze) openExteriorWalls() int {
	open := 0
	for col := 0; col < m.width; col++ {
		if !m.grid[0][col].HasNorthWall() {
			open++
		}
		if !m.grid[m.height-1][col].HasSouthWall() {
			open++
		}
	}
	for row := 0; row < m.height; row++ {
		if !m.grid[row][0].HasWestWall() {
			open++
		}
		if !m.grid[row][m.width-1].HasEastWall() {
			open++
		}
	}
	return open
}

// mazeSnapshot is a deep value copy of everything the enhancer may
// mutate. Restoring moves the copies back wholesale instead of patching
// in place.
type mazeSnapshot struct {
	grid       [][]Cell
	entrance   *Opening
	exit       *Opening
	solution   []CellPosition
	difficulty *DifficultyBreakdown
}

// snapshot captures the maze state for a possible revert.
func (m *Maze) snapshot() *mazeSnapshot {
	grid := make([][]Cell, m.height)
	for r := range m.grid {
		grid[r] = make([]Cell, m.width)
		for c := range m.grid[r] {
			grid[r][c] = *m.grid[r][c]
		}
	}

	return &mazeSnapshot{
		grid:       grid,
		entrance:   m.entrance.clone(),
		exit:       m.exit.clone(),
		solution:   append([]CellPosition(nil), m.solution...),
		difficulty: m.difficulty.clone(),
	}
}

// restore discards the current state in favor of the snapshot.
func (m *Maze) restore(s *mazeSnapshot) {
	for r := range m.grid {
		for c := range m.grid[r] {
			*m.grid[r][c] = s.grid[r][c]
		}
	}
	m.entrance = s.entrance.clone()
	m.exit = s.exit.clone()
	m.solution = append([]CellPosition(nil), s.solution...)
	m.difficulty = s.difficulty.clone()
}

// String provides a textual representation of the maze with entrance,
// exit, and solution markers.
func (m *Maze) String() string {
	onSolution := make(map[CellPosition]bool, len(m.solution))
	for _, p := range m.solution {
		onSolution[p] = true
	}

	var output strings.Builder

	// Top boundary, leaving a gap at a north opening
	output.WriteString("+")
	for col := 0; col < m.width; col++ {
		if m.grid[0][col].HasNorthWall() {
			output.WriteString("---+")
		} else {
			output.WriteString("   +")
		}
	}
	output.WriteString("\n")

	for row := 0; row < m.height; row++ {
		// Cell rows
		cellRow := ""
		if m.grid[row][0].HasWestWall() {
			cellRow += "|"
		} else {
			cellRow += " "
		}
		for col := 0; col < m.width; col++ {
			cell := m.grid[row][col]
			pos := CellPosition{Row: row, Col: col}

			marker := " "
			switch {
			case m.entrance != nil && m.entrance.Pos == pos:
				marker = "S"
			case m.exit != nil && m.exit.Pos == pos:
				marker = "E"
			case onSolution[pos]:
				marker = "*"
			}
			cellRow += " " + marker + " "

			// Add east wall or space
			if cell.HasEastWall() {
				cellRow += "|"
			} else {
				cellRow += " "
			}
		}
		output.WriteString(cellRow + "\n")

		// Wall rows
		wallRow := "+"
		for col := 0; col < m.width; col++ {
			cell := m.grid[row][col]
			if cell.HasSouthWall() {
				wallRow += "---+"
			} else {
				wallRow += "   +"
			}
		}
		output.WriteString(wallRow + "\n")
	}

	return output.String()
}
