package cmd

import (
	"fmt"
	"os"

	"biner/pkg/bundle"
	"biner/pkg/config"
	"biner/pkg/separate"

	"go.uber.org/zap"
)

// runSeparate prepares the destination directory and unpacks every input.
func runSeparate(opts Options, cfg *config.Config, inputs []string, logger *zap.Logger) error {
	dir := cfg.Settings.Directory
	if _, err := opts.Fs.Stat(dir); err != nil {
		if err := opts.Fs.MkdirAll(dir, os.ModePerm); err != nil {
			logger.Error("Failed to create directory, exiting.", zap.String("directory", dir), zap.Error(err))
			return fmt.Errorf("%w: %s: %w", bundle.ErrDestinationUnwritable, dir, err)
		}
		logger.Debug("Created directory because it does not exist", zap.String("directory", dir))
	}

	written, err := separate.New(opts.Fs, cfg.Settings, logger).Separate(inputs)
	if err != nil {
		return err
	}
	logger.Debug("Separated files", zap.Strings("files", written))
	return nil
}
