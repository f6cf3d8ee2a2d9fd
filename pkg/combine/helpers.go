package combine

import (
	"fmt"
	"os"
	"path/filepath"

	"biner/pkg/bundle"

	"github.com/spf13/afero"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// WriteBundle writes data to outputPath, creating its parent directory when
// it does not exist yet.
func WriteBundle(fs afero.Fs, outputPath string, data string, logger *zap.Logger) (err error) {
	logger.Debug("Writing data to file", zap.String("outputFile", outputPath))

	if dir := filepath.Dir(outputPath); dir != "." {
		if err := ensureDirectory(fs, dir, logger); err != nil {
			return fmt.Errorf("%w: %s: %w", bundle.ErrDestinationUnwritable, dir, err)
		}
	}

	outFile, err := fs.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		logger.Error("Failed to create output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("%w: %s: %w", bundle.ErrDestinationUnwritable, outputPath, err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil {
			logger.Error("Failed to close output file", zap.String("file", outputPath), zap.Error(closeErr))
			err = multierr.Append(err, fmt.Errorf("%w: %s: %w", bundle.ErrDestinationUnwritable, outputPath, closeErr))
		}
	}()

	if _, err := outFile.WriteString(data); err != nil {
		logger.Error("Failed to write output file", zap.String("file", outputPath), zap.Error(err))
		return fmt.Errorf("%w: %s: %w", bundle.ErrDestinationUnwritable, outputPath, err)
	}
	return nil
}

// ensureDirectory ensures a directory exists, creating it if necessary.
func ensureDirectory(fs afero.Fs, path string, logger *zap.Logger) error {
	if err := fs.MkdirAll(path, os.ModePerm); err != nil {
		logger.Error("Failed to create directory", zap.String("path", path), zap.Error(err))
		return err
	}
	logger.Debug("Ensured directory exists", zap.String("path", path))
	return nil
}
