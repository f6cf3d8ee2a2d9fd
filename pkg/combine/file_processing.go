package combine

import (
	"errors"
	"fmt"
	"io"
	"os"

	"biner/pkg/bundle"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// ReadPayload returns the full contents of the regular file at path. The file
// handle is closed before returning.
func ReadPayload(fs afero.Fs, path string, logger *zap.Logger) ([]byte, error) {
	info, err := fs.Stat(path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Error("Input file does not exist", zap.String("file", path))
		return nil, fmt.Errorf("%w: %s", bundle.ErrInputMissing, path)
	}
	if err != nil {
		logger.Error("Failed to stat input file", zap.String("file", path), zap.Error(err))
		return nil, fmt.Errorf("%w: %s: %w", bundle.ErrInputUnreadable, path, err)
	}
	if !info.Mode().IsRegular() {
		logger.Error("Input is not a regular file", zap.String("file", path), zap.Stringer("mode", info.Mode()))
		return nil, fmt.Errorf("%w: %s", bundle.ErrInputMissing, path)
	}

	file, err := fs.Open(path)
	if err != nil {
		logger.Error("Failed to open input file", zap.String("file", path), zap.Error(err))
		return nil, fmt.Errorf("%w: %s: %w", bundle.ErrInputUnreadable, path, err)
	}
	defer file.Close()

	content, err := io.ReadAll(file)
	if err != nil {
		logger.Error("Failed to read input file", zap.String("file", path), zap.Error(err))
		return nil, fmt.Errorf("%w: %s: %w", bundle.ErrInputUnreadable, path, err)
	}

	if mime, ok := isText(content); !ok {
		logger.Warn("Input does not look like text, emitting it verbatim",
			zap.String("file", path),
			zap.String("mimeType", mime))
	}

	return content, nil
}
