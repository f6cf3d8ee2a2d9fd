// Package combine packs a list of files into a single bundle.
package combine

import (
	"strings"

	"biner/pkg/bundle"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Combiner frames input files into one bundle held in memory.
type Combiner struct {
	fs       afero.Fs
	settings bundle.Settings
	logger   *zap.Logger
}

// New returns a Combiner reading from fs.
func New(fs afero.Fs, settings bundle.Settings, logger *zap.Logger) *Combiner {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Combiner{fs: fs, settings: settings, logger: logger}
}

// Combine returns the concatenation of one section per file, in the order
// given. The path text in each marker line is the caller's token verbatim.
// Any failing file aborts the whole combine and no partial bundle is returned.
func (c *Combiner) Combine(files []string) (string, error) {
	markers := c.settings.Markers()
	var sb strings.Builder

	for _, path := range files {
		c.logger.Debug("Adding file to buffer", zap.String("file", path))

		payload, err := ReadPayload(c.fs, path, c.logger)
		if err != nil {
			return "", err
		}
		markers.Frame(&sb, path, payload)

		c.logger.Debug("Added file to buffer",
			zap.String("file", path),
			zap.Int("payloadBytes", len(payload)))
	}

	c.logger.Debug("All done. No problems reported.", zap.Int("totalFiles", len(files)))
	return sb.String(), nil
}
