package cmd

import (
	"fmt"

	"biner/pkg/combine"
	"biner/pkg/config"

	"go.uber.org/zap"
)

// runCombine builds the bundle and writes it to stdout or the output file.
func runCombine(opts Options, cfg *config.Config, files []string, logger *zap.Logger) error {
	data, err := combine.New(opts.Fs, cfg.Settings, logger).Combine(files)
	if err != nil {
		return err
	}

	if cfg.Output == "" {
		logger.Debug("Outputting data to standard output (stdout)")
		if _, err := fmt.Fprint(opts.Stdout, data); err != nil {
			return fmt.Errorf("failed to write bundle to stdout: %w", err)
		}
		return nil
	}

	return combine.WriteBundle(opts.Fs, cfg.Output, data, logger)
}
