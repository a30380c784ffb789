package mazegen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGridModel(t *testing.T) {
	t.Run("New grid starts fully walled and unvisited", func(t *testing.T) {
		m := newMaze(6, 5, 20, 1)

		assert.Equal(t, 6, m.Width())
		assert.Equal(t, 5, m.Height())
		for row := 0; row < m.Height(); row++ {
			for col := 0; col < m.Width(); col++ {
				cell := m.CellAt(row, col)
				assert.True(t, cell.HasNorthWall())
				assert.True(t, cell.HasSouthWall())
				assert.True(t, cell.HasEastWall())
				assert.True(t, cell.HasWestWall())
				assert.False(t, cell.Visited)
			}
		}
	})

	t.Run("OpenWall clears both facing flags", func(t *testing.T) {
		m := newMaze(5, 5, 20, 1)
		a := CellPosition{Row: 2, Col: 2}
		b := CellPosition{Row: 2, Col: 3}

		m.OpenWall(a, East)

		assert.False(t, m.CellAt(2, 2).HasEastWall())
		assert.False(t, m.CellAt(2, 3).HasWestWall())
		assert.True(t, m.CellAt(2, 2).HasNorthWall())
		assert.True(t, m.IsValidMove(a, b))
		assert.True(t, m.IsValidMove(b, a))

		// Opening twice changes nothing.
		m.OpenWall(a, East)
		assert.False(t, m.CellAt(2, 2).HasEastWall())
		assert.False(t, m.CellAt(2, 3).HasWestWall())
	})

	t.Run("OpenWall on the boundary is a no-op", func(t *testing.T) {
		m := newMaze(5, 5, 20, 1)

		m.OpenWall(CellPosition{Row: 0, Col: 0}, North)
		m.OpenWall(CellPosition{Row: 0, Col: 0}, West)

		assert.True(t, m.CellAt(0, 0).HasNorthWall())
		assert.True(t, m.CellAt(0, 0).HasWestWall())
		assert.Zero(t, m.openExteriorWalls())
	})

	t.Run("Wall consistency holds for every adjacent pair", func(t *testing.T) {
		m, err := Generate(12, 9, 20, 77)
		assert.NoError(t, err)

		for row := 0; row < m.Height(); row++ {
			for col := 0; col < m.Width(); col++ {
				pos := CellPosition{Row: row, Col: col}
				for _, d := range AllDirections() {
					next, inside := m.Neighbor(pos, d)
					if !inside {
						continue
					}
					assert.Equal(t,
						m.CellAt(pos.Row, pos.Col).HasWall(d),
						m.CellAt(next.Row, next.Col).HasWall(d.Opposite()),
						"wall between %v and %v desynchronized", pos, next)
				}
			}
		}
	})

	t.Run("IsValidMove requires adjacency and an open wall", func(t *testing.T) {
		m := newMaze(5, 5, 20, 1)
		m.OpenWall(CellPosition{Row: 1, Col: 1}, South)

		assert.True(t, m.IsValidMove(CellPosition{Row: 1, Col: 1}, CellPosition{Row: 2, Col: 1}))
		assert.False(t, m.IsValidMove(CellPosition{Row: 1, Col: 1}, CellPosition{Row: 1, Col: 2}), "wall still present")
		assert.False(t, m.IsValidMove(CellPosition{Row: 1, Col: 1}, CellPosition{Row: 3, Col: 1}), "not adjacent")
		assert.False(t, m.IsValidMove(CellPosition{Row: 0, Col: 0}, CellPosition{Row: -1, Col: 0}), "out of bounds")
	})

	t.Run("CellAt returns nil out of bounds", func(t *testing.T) {
		m := newMaze(5, 5, 20, 1)

		assert.Nil(t, m.CellAt(-1, 0))
		assert.Nil(t, m.CellAt(0, 5))
		assert.NotNil(t, m.CellAt(4, 4))
	})

	t.Run("SolutionPath returns a defensive copy", func(t *testing.T) {
		m, err := Generate(8, 8, 20, 3)
		assert.NoError(t, err)

		path := m.SolutionPath()
		assert.NotEmpty(t, path)
		path[0] = CellPosition{Row: -99, Col: -99}
		assert.NotEqual(t, path[0], m.SolutionPath()[0])
	})

	t.Run("Snapshot and restore round-trip", func(t *testing.T) {
		m, err := Generate(10, 10, 20, 5)
		assert.NoError(t, err)

		before := m.String()
		beforeScore := m.Difficulty().Score
		snap := m.snapshot()

		// Mutate walls, openings, and derived data.
		m.OpenWall(CellPosition{Row: 4, Col: 4}, East)
		m.OpenWall(CellPosition{Row: 5, Col: 5}, South)
		m.entrance = nil
		m.solution = nil
		m.difficulty = nil

		m.restore(snap)

		assert.Equal(t, before, m.String())
		assert.Equal(t, beforeScore, m.Difficulty().Score)
		assert.NotNil(t, m.Entrance())
		assert.NotEmpty(t, m.SolutionPath())
	})

	t.Run("String renders openings and solution markers", func(t *testing.T) {
		m, err := Generate(7, 7, 20, 11)
		assert.NoError(t, err)

		rendered := m.String()
		assert.True(t, strings.Contains(rendered, "S"))
		assert.True(t, strings.Contains(rendered, "E"))
		assert.True(t, strings.Contains(rendered, "+"))
	})
}
