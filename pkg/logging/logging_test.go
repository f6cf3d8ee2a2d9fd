package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestNew(t *testing.T) {
	t.Run("Should hide debug and info entries when not verbose", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(false, &buf)

		logger.Debug("debug entry")
		logger.Info("info entry")
		logger.Warn("warn entry", zap.String("file", "a.txt"))

		out := buf.String()
		assert.NotContains(t, out, "debug entry")
		assert.NotContains(t, out, "info entry")
		assert.Contains(t, out, "WARN")
		assert.Contains(t, out, "warn entry")
		assert.Contains(t, out, `"file": "a.txt"`)
	})

	t.Run("Should show debug entries when verbose", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(true, &buf)

		logger.Debug("Parsing file.")

		assert.Contains(t, buf.String(), "DEBUG")
		assert.Contains(t, buf.String(), "Parsing file.")
	})
}

func TestSetup(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup(true, &buf)
	t.Cleanup(func() { Setup(false, nil) })

	assert.Same(t, logger, Logger)
	zap.L().Debug("through globals")
	assert.Contains(t, buf.String(), "through globals")
}
