package main

import (
	"log"
	"os"
	"strings"

	"biner/cmd"
	"biner/pkg/logging"

	"go.uber.org/zap"
	"golang.org/x/term"
)

func main() {
	logger := logging.Setup(false, os.Stderr)

	if err := cmd.Execute(logger); err != nil {
		// The verbose logger replaces the globals once flags are parsed.
		zap.L().Fatal("biner failed to perform the action you requested", zap.Error(err))
	}

	// Only sync when stderr can be synced; terminals and pipes report EINVAL.
	if term.IsTerminal(int(os.Stderr.Fd())) || isRegularFile(os.Stderr) {
		if syncErr := zap.L().Sync(); syncErr != nil {
			lowerErr := strings.ToLower(syncErr.Error())
			if !strings.Contains(lowerErr, "invalid argument") && !strings.Contains(lowerErr, "inappropriate ioctl") {
				log.Printf("Logger sync failed: %v", syncErr)
			}
		}
	}
}

// isRegularFile checks if the given file is a regular file.
func isRegularFile(f *os.File) bool {
	fileInfo, err := f.Stat()
	if err != nil {
		return false
	}
	return fileInfo.Mode().IsRegular()
}
