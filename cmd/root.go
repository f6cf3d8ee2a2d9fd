package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"biner/pkg/bundle"
	"biner/pkg/config"
	"biner/pkg/logging"
	"biner/pkg/version"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ErrArgUsage is returned when the command line is misused.
var ErrArgUsage = errors.New("invalid usage")

// Options carries the process resources the root command works with.
type Options struct {
	Fs     afero.Fs
	Stdin  io.Reader // File list source; nil disables stdin ingestion.
	Stdout io.Writer
	Stderr io.Writer
	Logger *zap.Logger
}

// NewRootCmd builds the biner command.
func NewRootCmd(opts Options) *cobra.Command {
	if opts.Fs == nil {
		opts.Fs = afero.NewOsFs()
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Stderr == nil {
		opts.Stderr = os.Stderr
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}

	var configFile string

	rootCmd := &cobra.Command{
		Use:   "biner [-c] [-s] [-d directory] [-v] [-bm text] [-em text] [-o output] files",
		Short: "Combine and separate text files",
		Long: `biner packs text files into a single bundle framed by begin/end marker lines,
and unpacks such bundles back into individual files.`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if printed, err := printBuildVersion(cmd, opts.Stdout); printed || err != nil {
				return err
			}

			cfg, err := config.Load(cmd.Flags(), configFile)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrArgUsage, err)
			}

			logger := opts.Logger
			if cfg.Settings.Verbose {
				logger = logging.Setup(true, opts.Stderr)
				logger.Debug("Verbose mode enabled (-v)", version.Get().Fields()...)
				logger.Debug("Arguments", zap.Strings("args", args))
			}

			return run(cmd, opts, cfg, args, logger)
		},
	}

	rootCmd.SetOut(opts.Stdout)
	rootCmd.SetErr(opts.Stderr)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %w", ErrArgUsage, err)
	})

	flags := rootCmd.Flags()
	flags.BoolP("version", "v", false, "Enable verbose diagnostics (historical name)")
	flags.BoolP("combine", "c", false, "Combine the given files into one bundle")
	flags.BoolP("separate", "s", false, "Separate the given bundles into files")
	flags.StringP("directory", "d", bundle.DefaultDirectory, "Destination `directory` for separated files")
	flags.String("begin-marker", bundle.DefaultBeginMarker, "Override the begin marker (also -bm)")
	flags.String("end-marker", bundle.DefaultEndMarker, "Override the end marker (also -em)")
	flags.StringP("output", "o", "", "Write the combined bundle to `file` instead of stdout")
	flags.StringVar(&configFile, "config", "", "Read settings from a config `file`")
	rootCmd.MarkFlagsMutuallyExclusive("combine", "separate")
	addBuildVersionFlag(rootCmd)

	return rootCmd
}

// run dispatches to the selected mode.
func run(cmd *cobra.Command, opts Options, cfg *config.Config, args []string, logger *zap.Logger) error {
	combineMode, _ := cmd.Flags().GetBool("combine")
	separateMode, _ := cmd.Flags().GetBool("separate")

	files, err := collectInputs(opts.Fs, args, opts.Stdin, logger)
	if err != nil {
		return err
	}

	if !combineMode && !separateMode {
		return fmt.Errorf("%w: you must specify a mode", ErrArgUsage)
	}

	logger.Debug("Files", zap.Strings("files", files))

	if combineMode {
		logger.Debug("Biner in combine mode.")
		if len(files) == 0 {
			return fmt.Errorf("%w: you must specify at least two files to combine", ErrArgUsage)
		}
		return runCombine(opts, cfg, files, logger)
	}

	logger.Debug("Biner in separate mode.")
	if len(files) == 0 {
		return fmt.Errorf("%w: you must specify at least one file to split", ErrArgUsage)
	}
	return runSeparate(opts, cfg, files, logger)
}

// Execute runs the root command against the process environment.
func Execute(logger *zap.Logger) error {
	rootCmd := NewRootCmd(Options{
		Fs:     afero.NewOsFs(),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Logger: logger,
	})
	rootCmd.SetArgs(NormalizeArgs(os.Args[1:]))
	return rootCmd.Execute()
}
