package applog

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComponentLogger(t *testing.T) {
	t.Run("Empty prefix is rejected", func(t *testing.T) {
		_, err := New("", "", &bytes.Buffer{})
		assert.ErrorIs(t, err, ErrEmptyPrefix)
	})

	t.Run("Entries carry the component prefix", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New("MAZE", "", &buf)
		assert.NoError(t, err)

		logger.Info("generation finished")

		out := buf.String()
		assert.True(t, strings.Contains(out, "[MAZE]"))
		assert.True(t, strings.Contains(out, "generation finished"))
	})

	t.Run("Color codes wrap the prefix", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New("API", "\033[36m", &buf)
		assert.NoError(t, err)

		logger.Error("boom")

		out := buf.String()
		assert.True(t, strings.Contains(out, "\033[36m[API]"+colorReset))
	})

	t.Run("Every level is emitted", func(t *testing.T) {
		var buf bytes.Buffer
		logger, err := New("APP", "", &buf)
		assert.NoError(t, err)

		logger.Debug("d")
		logger.Info("i")
		logger.Warning("w")
		logger.Error("e")

		out := buf.String()
		for _, level := range []string{"debug", "info", "warning", "error"} {
			assert.True(t, strings.Contains(strings.ToLower(out), level), "missing %s entry", level)
		}
	})
}
