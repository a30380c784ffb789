package mazegen

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptimize(t *testing.T) {
	t.Run("Never returns a result dominated by the baseline", func(t *testing.T) {
		for _, seed := range []int64{1, 7, 42, 99} {
			baseline, err := Generate(12, 12, 20, seed)
			assert.NoError(t, err)
			optimized, err := Optimize(12, 12, 20, seed, 6)
			assert.NoError(t, err)

			betterScore := optimized.Difficulty().Score >= baseline.Difficulty().Score
			longerPath := len(optimized.SolutionPath()) > len(baseline.SolutionPath())
			assert.True(t, betterScore || longerPath,
				"seed %d: optimized score %.1f path %d vs baseline score %.1f path %d",
				seed, optimized.Difficulty().Score, len(optimized.SolutionPath()),
				baseline.Difficulty().Score, len(baseline.SolutionPath()))
		}
	})

	t.Run("Result is always a valid solvable maze", func(t *testing.T) {
		m, err := Optimize(10, 14, 20, 5, 4)
		assert.NoError(t, err)

		path := m.SolutionPath()
		assert.NotEmpty(t, path)
		assert.Equal(t, m.Entrance().Pos, path[0])
		assert.Equal(t, m.Exit().Pos, path[len(path)-1])
		assert.Equal(t, 2, m.openExteriorWalls())
		assert.NotNil(t, m.Difficulty())
	})

	t.Run("Optimization is deterministic", func(t *testing.T) {
		first, err := Optimize(10, 10, 20, 42, 5)
		assert.NoError(t, err)
		second, err := Optimize(10, 10, 20, 42, 5)
		assert.NoError(t, err)

		assertIdenticalMazes(t, first, second)
		assert.Equal(t, first.Difficulty().Score, second.Difficulty().Score)
	})

	t.Run("Zero attempts returns the plain baseline", func(t *testing.T) {
		baseline, err := Generate(10, 10, 20, 8)
		assert.NoError(t, err)
		optimized, err := Optimize(10, 10, 20, 8, 0)
		assert.NoError(t, err)

		assertIdenticalMazes(t, baseline, optimized)
	})

	t.Run("Good enough baseline skips the trial loop", func(t *testing.T) {
		s, err := NewSession(&SessionConfig{Seed: 8, GoodEnoughScore: 1})
		assert.NoError(t, err)

		optimized, err := s.Optimize(10, 10, 20, 6)
		assert.NoError(t, err)

		baseline, err := Generate(10, 10, 20, 8)
		assert.NoError(t, err)
		assertIdenticalMazes(t, baseline, optimized)
	})

	t.Run("Dimensions outside the supported range are rejected", func(t *testing.T) {
		_, err := Optimize(3, 3, 20, 1, 5)
		assert.ErrorIs(t, err, ErrInvalidDimensions)
	})
}

func TestSessionConfig(t *testing.T) {
	t.Run("Nil config falls back to defaults", func(t *testing.T) {
		s, err := NewSession(nil)
		assert.NoError(t, err)

		m, err := s.Generate(8, 8, 20)
		assert.NoError(t, err)
		assert.NotEmpty(t, m.SolutionPath())
	})

	t.Run("Invalid thresholds are rejected", func(t *testing.T) {
		_, err := NewSession(&SessionConfig{GoodEnoughScore: 150})
		assert.ErrorIs(t, err, ErrInvalidThreshold)

		_, err = NewSession(&SessionConfig{ExcellentScore: -3})
		assert.ErrorIs(t, err, ErrInvalidThreshold)

		_, err = NewSession(&SessionConfig{PathLengthWeight: 2})
		assert.ErrorIs(t, err, ErrInvalidPathWeight)
	})

	t.Run("Sessions with the same seed are interchangeable", func(t *testing.T) {
		a, err := NewSession(&SessionConfig{Seed: 42})
		assert.NoError(t, err)
		b, err := NewSession(&SessionConfig{Seed: 42})
		assert.NoError(t, err)

		first, err := a.Generate(10, 10, 20)
		assert.NoError(t, err)
		second, err := b.Generate(10, 10, 20)
		assert.NoError(t, err)

		assertIdenticalMazes(t, first, second)
	})
}
