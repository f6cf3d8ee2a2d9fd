package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/afero"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// collectInputs returns the positional paths that exist followed by the file
// list piped on stdin.
func collectInputs(fs afero.Fs, args []string, stdin io.Reader, logger *zap.Logger) ([]string, error) {
	files := make([]string, 0, len(args))
	for _, arg := range args {
		if _, err := fs.Stat(arg); err != nil {
			logger.Warn("File does not exist, or is an invalid parameter", zap.String("file", arg))
			continue
		}
		files = append(files, arg)
	}

	if !stdinHasData(stdin) {
		logger.Debug("Not reading from standard input.")
		return files, nil
	}

	logger.Debug("Reading from standard input.")
	lines, err := readFileList(stdin, logger)
	if err != nil {
		return nil, err
	}
	return append(files, lines...), nil
}

// stdinHasData reports whether r should be read for a file list. A terminal
// or a character device such as /dev/null is skipped; pipes and redirected
// files are read.
func stdinHasData(r io.Reader) bool {
	if r == nil {
		return false
	}
	f, ok := r.(*os.File)
	if !ok {
		return true
	}
	if term.IsTerminal(int(f.Fd())) {
		return false
	}
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice == 0
}

// readFileList reads one path per line. Blank lines are skipped.
func readFileList(r io.Reader, logger *zap.Logger) ([]string, error) {
	var files []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" {
			continue
		}
		files = append(files, line)
		logger.Debug("Added file to list", zap.String("file", line))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read file list from stdin: %w", err)
	}
	return files, nil
}
