// Package logging builds the zap logger used for biner's diagnostics.
package logging

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is the global logger instance
var Logger = zap.NewNop()

// New returns a console logger writing to w (stderr when nil). Verbose
// loggers emit Debug entries; otherwise only warnings and errors are shown.
func New(verbose bool, w io.Writer) *zap.Logger {
	if w == nil {
		w = os.Stderr
	}

	level := zapcore.WarnLevel
	if verbose {
		level = zapcore.DebugLevel
	}

	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	encoderCfg.CallerKey = ""
	encoderCfg.NameKey = "logger"
	encoderCfg.EncodeLevel = zapcore.CapitalLevelEncoder

	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(zapcore.AddSync(w)),
		zap.NewAtomicLevelAt(level),
	)
	return zap.New(core).Named("biner")
}

// Setup builds the logger with New and installs it as Logger and as zap's
// global logger.
func Setup(verbose bool, w io.Writer) *zap.Logger {
	Logger = New(verbose, w)
	zap.ReplaceGlobals(Logger)
	return Logger
}
