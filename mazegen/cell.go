package mazegen

// Direction identifies one of the four cardinal sides of a cell.
type Direction string

// The four cardinal directions used for walls, moves, and openings.
const (
	North Direction = "North"
	South Direction = "South"
	East  Direction = "East"
	West  Direction = "West"
)

// directionOrder fixes the order in which neighbors are enumerated.
// Generation consumes the session PRNG while walking this slice, so the
// order must never depend on map iteration.
var directionOrder = []Direction{North, South, East, West}

// AllDirections returns the four directions in their fixed enumeration order.
func AllDirections() []Direction {
	dirs := make([]Direction, len(directionOrder))
	copy(dirs, directionOrder)
	return dirs
}

// Opposite returns the geometrically opposite direction.
func (d Direction) Opposite() Direction {
	switch d {
	case North:
		return South
	case South:
		return North
	case East:
		return West
	case West:
		return East
	}
	return d
}

// delta returns the row and column offsets of a single step in d.
func (d Direction) delta() (rowDelta, colDelta int) {
	switch d {
	case North:
		return -1, 0
	case South:
		return 1, 0
	case East:
		return 0, 1
	case West:
		return 0, -1
	}
	return 0, 0
}

// CellPosition identifies a cell by its row and column in the maze grid.
type CellPosition struct {
	Row int // Row index of the cell
	Col int // Column index of the cell
}

// Translate returns the position one step away in the given direction.
// The result may lie outside the grid; callers bound-check it.
func (p CellPosition) Translate(d Direction) CellPosition {
	dr, dc := d.delta()
	return CellPosition{Row: p.Row + dr, Col: p.Col + dc}
}

// ManhattanTo returns the Manhattan distance to another position.
func (p CellPosition) ManhattanTo(other CellPosition) int {
	return abs(p.Row-other.Row) + abs(p.Col-other.Col)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Cell represents a single cell in a maze grid.
// It includes properties for walls on each side and a generation-time
// visited flag that carries no meaning once the carve is finished.
type Cell struct {
	NorthWall bool // NorthWall indicates whether there is a wall on the north side of the cell.
	SouthWall bool // SouthWall indicates whether there is a wall on the south side of the cell.
	EastWall  bool // EastWall indicates whether there is a wall on the east side of the cell.
	WestWall  bool // WestWall indicates whether there is a wall on the west side of the cell.
	Visited   bool // Visited marks the cell as reached during generation.
}

// HasNorthWall returns true if there is a wall on the north side of the cell.
func (c *Cell) HasNorthWall() bool {
	return c.NorthWall
}

// HasSouthWall returns true if there is a wall on the south side of the cell.
func (c *Cell) HasSouthWall() bool {
	return c.SouthWall
}

// HasEastWall returns true if there is a wall on the east side of the cell.
func (c *Cell) HasEastWall() bool {
	return c.EastWall
}

// HasWestWall returns true if there is a wall on the west side of the cell.
func (c *Cell) HasWestWall() bool {
	return c.WestWall
}

// HasWall returns true if there is a wall on the given side of the cell.
func (c *Cell) HasWall(d Direction) bool {
	switch d {
	case North:
		return c.NorthWall
	case South:
		return c.SouthWall
	case East:
		return c.EastWall
	case West:
		return c.WestWall
	}
	return true
}

// SetWall sets the presence of a wall on the given side of the cell.
func (c *Cell) SetWall(d Direction, present bool) {
	switch d {
	case North:
		c.NorthWall = present
	case South:
		c.SouthWall = present
	case East:
		c.EastWall = present
	case West:
		c.WestWall = present
	}
}

// OpenSideCount returns the number of sides without a wall.
// A cell with exactly one open side is a dead end; a cell with more than
// two open sides is a decision point.
func (c *Cell) OpenSideCount() int {
	count := 0
	for _, d := range directionOrder {
		if !c.HasWall(d) {
			count++
		}
	}
	return count
}

// newWalledCell returns a cell with all four walls present and unvisited.
func newWalledCell() *Cell {
	return &Cell{
		NorthWall: true,
		SouthWall: true,
		EastWall:  true,
		WestWall:  true,
	}
}
