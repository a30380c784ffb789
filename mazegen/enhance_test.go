package mazegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateEnhanced(t *testing.T) {
	t.Run("Same seed and parameters reproduce the maze", func(t *testing.T) {
		params := DefaultEnhanceParams()

		first, err := GenerateEnhanced(12, 12, 20, 42, params)
		assert.NoError(t, err)
		second, err := GenerateEnhanced(12, 12, 20, 42, params)
		assert.NoError(t, err)

		assertIdenticalMazes(t, first, second)
		assert.Equal(t, first.Difficulty().Score, second.Difficulty().Score)
	})

	t.Run("Wall removal never lowers the score", func(t *testing.T) {
		// With a zero removal factor the carve is identical, so the
		// contrast isolates the removal-and-revert stage.
		for _, seed := range []int64{1, 7, 42, 99, 1234} {
			params := DefaultEnhanceParams()
			params.WallRemovalFactor = 0
			withoutRemoval, err := GenerateEnhanced(12, 12, 20, seed, params)
			assert.NoError(t, err)

			params.WallRemovalFactor = 0.3
			withRemoval, err := GenerateEnhanced(12, 12, 20, seed, params)
			assert.NoError(t, err)

			assert.GreaterOrEqual(t, withRemoval.Difficulty().Score, withoutRemoval.Difficulty().Score, "seed %d", seed)
		}
	})

	t.Run("Enhanced maze stays solvable with an intact exterior", func(t *testing.T) {
		for _, seed := range []int64{3, 17, 256} {
			m, err := GenerateEnhanced(15, 11, 20, seed, DefaultEnhanceParams())
			assert.NoError(t, err)

			path := m.SolutionPath()
			assert.NotEmpty(t, path)
			assert.Equal(t, m.Entrance().Pos, path[0])
			assert.Equal(t, m.Exit().Pos, path[len(path)-1])
			assert.Equal(t, 2, m.openExteriorWalls(), "seed %d", seed)
		}
	})

	t.Run("Wall removal stays within budget", func(t *testing.T) {
		params := DefaultEnhanceParams()
		params.WallRemovalFactor = 0.4

		m, err := GenerateEnhanced(15, 15, 20, 5, params)
		assert.NoError(t, err)

		// sqrt(225) * 0.4 rounds to 6 removable walls on top of the
		// spanning tree; a revert drops back to the tree exactly.
		open := countOpenInteriorWalls(m)
		assert.GreaterOrEqual(t, open, 15*15-1)
		assert.LessOrEqual(t, open, 15*15-1+6)
	})

	t.Run("Entrance and exit cells keep their walls", func(t *testing.T) {
		params := DefaultEnhanceParams()
		params.WallRemovalFactor = 0.45

		plain := DefaultEnhanceParams()
		plain.WallRemovalFactor = 0

		for _, seed := range []int64{2, 20, 200} {
			before, err := GenerateEnhanced(13, 13, 20, seed, plain)
			assert.NoError(t, err)
			after, err := GenerateEnhanced(13, 13, 20, seed, params)
			assert.NoError(t, err)

			// Identical carve, so any difference at the entrance or exit
			// cell would come from an illegal removal.
			assert.Equal(t, before.Entrance(), after.Entrance(), "seed %d", seed)
			assert.Equal(t, before.Exit(), after.Exit(), "seed %d", seed)
			entrance, exit := before.Entrance().Pos, before.Exit().Pos
			assert.Equal(t, *before.CellAt(entrance.Row, entrance.Col), *after.CellAt(entrance.Row, entrance.Col), "seed %d", seed)
			assert.Equal(t, *before.CellAt(exit.Row, exit.Col), *after.CellAt(exit.Row, exit.Col), "seed %d", seed)
		}
	})

	t.Run("Out-of-range parameters are clamped", func(t *testing.T) {
		clamped := EnhanceParams{
			WallRemovalFactor:      5,
			DeadEndBias:            -2,
			DirectionalPersistence: 3,
			ComplexityBalance:      9,
		}.normalized()

		assert.Equal(t, 1.0, clamped.WallRemovalFactor)
		assert.Equal(t, 0.0, clamped.DeadEndBias)
		assert.Equal(t, 1.0, clamped.DirectionalPersistence)
		assert.Equal(t, 1.0, clamped.ComplexityBalance)

		m, err := GenerateEnhanced(10, 10, 20, 1, EnhanceParams{
			WallRemovalFactor:      5,
			DeadEndBias:            -2,
			DirectionalPersistence: 3,
			ComplexityBalance:      9,
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, m.SolutionPath())
	})

	t.Run("Persistence favors longer corridors", func(t *testing.T) {
		straight := EnhanceParams{DirectionalPersistence: 1}
		twisty := EnhanceParams{DirectionalPersistence: 0}

		longestRun := func(m *Maze) int {
			longest := 0
			for row := 0; row < m.Height(); row++ {
				run := 0
				for col := 0; col < m.Width(); col++ {
					if !m.CellAt(row, col).HasEastWall() {
						run++
					} else {
						run = 0
					}
					if run > longest {
						longest = run
					}
				}
			}
			return longest
		}

		// Averaged over seeds so a single unlucky draw cannot flip the
		// comparison.
		totalStraight, totalTwisty := 0, 0
		for _, seed := range []int64{1, 2, 3, 4, 5, 6, 7, 8} {
			s, err := GenerateEnhanced(20, 20, 20, seed, straight)
			assert.NoError(t, err)
			w, err := GenerateEnhanced(20, 20, 20, seed, twisty)
			assert.NoError(t, err)
			totalStraight += longestRun(s)
			totalTwisty += longestRun(w)
		}
		assert.Greater(t, totalStraight, totalTwisty)
	})

	t.Run("Dimensions outside the supported range are rejected", func(t *testing.T) {
		_, err := GenerateEnhanced(4, 10, 20, 1, DefaultEnhanceParams())
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})
}
