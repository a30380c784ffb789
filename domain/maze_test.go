package domain

import (
	"testing"

	"github.com/codeprimate/webmaze-api/mazegen"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewMaze(t *testing.T) {
	generated, err := mazegen.Generate(10, 8, 20, 42)
	assert.NoError(t, err)

	t.Run("Record mirrors the generated maze", func(t *testing.T) {
		id := uuid.New()
		owner := uuid.New()

		record, err := NewMaze(MazeConfig{ID: id, OwnerID: owner, Generated: generated})
		assert.NoError(t, err)

		assert.Equal(t, id, record.ID)
		assert.Equal(t, owner, record.OwnerID)
		assert.Equal(t, 10, record.Width)
		assert.Equal(t, 8, record.Height)
		assert.Equal(t, 20, record.CellSize)
		assert.Equal(t, int64(42), record.Seed)
		assert.Len(t, record.Walls, 10*8)
		assert.Len(t, record.Solution, len(generated.SolutionPath()))
		assert.Equal(t, generated.Difficulty().Score, record.Difficulty.Score)
		assert.False(t, record.CreatedAt.IsZero())
	})

	t.Run("Packed walls agree with the grid", func(t *testing.T) {
		record, err := NewMaze(MazeConfig{ID: uuid.New(), Generated: generated})
		assert.NoError(t, err)

		for row := 0; row < record.Height; row++ {
			for col := 0; col < record.Width; col++ {
				cell := generated.CellAt(row, col)
				assert.Equal(t, cell.HasNorthWall(), record.HasWall(row, col, "North"), "(%d,%d) north", row, col)
				assert.Equal(t, cell.HasEastWall(), record.HasWall(row, col, "East"), "(%d,%d) east", row, col)
				assert.Equal(t, cell.HasSouthWall(), record.HasWall(row, col, "South"), "(%d,%d) south", row, col)
				assert.Equal(t, cell.HasWestWall(), record.HasWall(row, col, "West"), "(%d,%d) west", row, col)
			}
		}
	})

	t.Run("Openings map onto cleared wall bits", func(t *testing.T) {
		record, err := NewMaze(MazeConfig{ID: uuid.New(), Generated: generated})
		assert.NoError(t, err)

		entrance := record.Entrance
		assert.False(t, record.HasWall(entrance.Row, entrance.Col, entrance.Side))
		exit := record.Exit
		assert.False(t, record.HasWall(exit.Row, exit.Col, exit.Side))
	})

	t.Run("Out-of-range lookups count as walls", func(t *testing.T) {
		record, err := NewMaze(MazeConfig{ID: uuid.New(), Generated: generated})
		assert.NoError(t, err)

		assert.True(t, record.HasWall(-1, 0, "North"))
		assert.True(t, record.HasWall(0, record.Width, "East"))
		assert.True(t, record.HasWall(0, 0, "Sideways"))
	})

	t.Run("Missing maze is rejected", func(t *testing.T) {
		_, err := NewMaze(MazeConfig{ID: uuid.New()})
		assert.ErrorIs(t, err, ErrNoGeneratedMaze)
	})
}
