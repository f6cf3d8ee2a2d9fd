// Package separate unpacks bundles back into individual files.
package separate

import (
	"fmt"
	"io"

	"biner/pkg/bundle"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Separator writes every section of a bundle as a file under the settings'
// destination directory. It never overwrites an existing file.
type Separator struct {
	fs       afero.Fs
	settings bundle.Settings
	logger   *zap.Logger
}

// New returns a Separator operating on fs.
func New(fs afero.Fs, settings bundle.Settings, logger *zap.Logger) *Separator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Separator{fs: fs, settings: settings, logger: logger}
}

// Separate materialises the sections of every input. An input naming an
// existing regular file is read from disk; any other input is taken to be
// the bundle text itself. Every input is checked for markers before the
// first file is written. It returns the written paths in emission order.
func (s *Separator) Separate(inputs []string) ([]string, error) {
	buffers := make([]string, 0, len(inputs))
	markers := s.settings.Markers()

	for _, input := range inputs {
		buf, err := s.resolve(input)
		if err != nil {
			return nil, err
		}
		if !markers.Present(buf) {
			s.logger.Error("The file or data specified is not valid, because it's missing biner marker data",
				zap.String("beginMarker", markers.Begin),
				zap.String("endMarker", markers.End))
			return nil, bundle.ErrBundleMalformed
		}
		buffers = append(buffers, buf)
	}

	var written []string
	for _, buf := range buffers {
		paths, err := s.SeparateBuffer(buf)
		written = append(written, paths...)
		if err != nil {
			return written, err
		}
		s.logger.Debug("Parsed file.", zap.Int("sections", len(paths)))
	}

	s.logger.Debug("All done. No problems reported.", zap.Int("totalFiles", len(written)))
	return written, nil
}

// SeparateBuffer writes the sections of one bundle held in buf. Text outside
// sections is discarded. Files written before a failure stay on disk.
func (s *Separator) SeparateBuffer(buf string) ([]string, error) {
	markers := s.settings.Markers()
	if !markers.Present(buf) {
		return nil, bundle.ErrBundleMalformed
	}

	var written []string
	for pos := 0; ; {
		s.logger.Debug("Parsing file.", zap.Int("offset", pos))

		sec, next, ok := markers.Next(buf, pos)
		if !ok {
			break
		}
		pos = next

		if sec.Malformed {
			s.logger.Warn("Skipping section without a file name line", zap.Int("offset", sec.Offset))
			continue
		}
		if sec.FooterName != sec.Filename {
			s.logger.Warn("End marker names a different file than the begin marker",
				zap.String("begin", sec.Filename),
				zap.String("end", sec.FooterName))
		}

		path, err := s.writeSection(sec)
		if err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

// resolve returns the bundle text for one input item.
func (s *Separator) resolve(input string) (string, error) {
	info, err := s.fs.Stat(input)
	if err != nil || !info.Mode().IsRegular() {
		s.logger.Debug("Input is not a file that exists, so treating it as raw data", zap.Int("bytes", len(input)))
		return input, nil
	}

	file, err := s.fs.Open(input)
	if err != nil {
		s.logger.Error("Failed to open bundle file", zap.String("file", input), zap.Error(err))
		return "", fmt.Errorf("%w: %s: %w", bundle.ErrInputUnreadable, input, err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		s.logger.Error("Failed to read bundle file", zap.String("file", input), zap.Error(err))
		return "", fmt.Errorf("%w: %s: %w", bundle.ErrInputUnreadable, input, err)
	}

	s.logger.Debug("Processing file", zap.String("file", input), zap.Int("bytes", len(content)))
	return string(content), nil
}
