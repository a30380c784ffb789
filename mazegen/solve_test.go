package mazegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindSolutionPath(t *testing.T) {
	t.Run("Path connects entrance to exit", func(t *testing.T) {
		m, err := Generate(10, 10, 20, 42)
		assert.NoError(t, err)

		path := FindSolutionPath(m)
		assert.NotEmpty(t, path)
		assert.Equal(t, m.Entrance().Pos, path[0])
		assert.Equal(t, m.Exit().Pos, path[len(path)-1])
	})

	t.Run("Every step is a legal move", func(t *testing.T) {
		m, err := Generate(14, 9, 20, 7)
		assert.NoError(t, err)

		path := FindSolutionPath(m)
		for i := 1; i < len(path); i++ {
			assert.True(t, m.IsValidMove(path[i-1], path[i]), "step %d: %v -> %v", i, path[i-1], path[i])
		}
	})

	t.Run("Path is shortest and simple", func(t *testing.T) {
		m, err := Generate(12, 12, 20, 5)
		assert.NoError(t, err)

		path := FindSolutionPath(m)
		assert.GreaterOrEqual(t, len(path), m.minimumPathLength())

		seen := make(map[CellPosition]bool, len(path))
		for _, p := range path {
			assert.False(t, seen[p], "cell %v visited twice", p)
			seen[p] = true
		}

		// BFS distance to the exit must agree with the path length.
		distances := m.distancesFrom(m.Entrance().Pos)
		exit := m.Exit().Pos
		assert.Equal(t, distances[exit.Row][exit.Col]+1, len(path))
	})

	t.Run("Maze without openings yields an empty path", func(t *testing.T) {
		m := newMaze(6, 6, 20, 1)

		assert.Empty(t, FindSolutionPath(m))
	})

	t.Run("Distances mark unreachable cells", func(t *testing.T) {
		// A fully walled grid has no passages at all.
		m := newMaze(5, 5, 20, 1)

		distances := m.distancesFrom(CellPosition{Row: 2, Col: 2})
		assert.Equal(t, 0, distances[2][2])
		assert.Equal(t, -1, distances[0][0])
		assert.Equal(t, -1, distances[4][4])
	})

	t.Run("Solving twice returns the same path", func(t *testing.T) {
		m, err := Generate(10, 10, 20, 314)
		assert.NoError(t, err)

		assert.Equal(t, FindSolutionPath(m), FindSolutionPath(m))
	})
}
