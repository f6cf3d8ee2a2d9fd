package separate

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"biner/pkg/bundle"

	"go.uber.org/multierr"
	"go.uber.org/zap"
)

// MaxDuplicates is the largest collision suffix tried.
const MaxDuplicates = 99999

// destination picks a path under the destination directory that does not
// exist yet. Only the final component of filename is used; suffixes are
// appended to the whole basename (c.txt_1, not c_1.txt).
func (s *Separator) destination(filename string) (string, error) {
	candidate := filepath.Base(filename)
	switch candidate {
	case ".", "..", string(filepath.Separator):
		return "", fmt.Errorf("%w: section %q has no usable file name", bundle.ErrDestinationUnwritable, filename)
	}

	dir := s.settings.Directory
	path := dir + candidate
	exists, err := s.exists(path)
	if err != nil {
		return "", err
	}
	if !exists {
		return path, nil
	}

	for i := 1; i <= MaxDuplicates; i++ {
		suffixed := path + "_" + strconv.Itoa(i)
		exists, err := s.exists(suffixed)
		if err != nil {
			return "", err
		}
		if !exists {
			s.logger.Debug("Duplicate file found, renaming it",
				zap.String("file", candidate),
				zap.String("renamed", filepath.Base(suffixed)))
			return suffixed, nil
		}
	}

	s.logger.Error("Too many duplicate files, stopping here", zap.String("file", candidate))
	return "", fmt.Errorf("%w: %s", bundle.ErrTooManyDuplicates, candidate)
}

func (s *Separator) exists(path string) (bool, error) {
	_, err := s.fs.Stat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("%w: %s: %w", bundle.ErrDestinationUnwritable, path, err)
}

// writeSection writes the payload of sec to a fresh destination path.
func (s *Separator) writeSection(sec bundle.Section) (path string, err error) {
	path, err = s.destination(sec.Filename)
	if err != nil {
		return "", err
	}

	out, err := s.fs.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		s.logger.Error("Failed to create file", zap.String("file", path), zap.Error(err))
		return "", fmt.Errorf("%w: %s: %w", bundle.ErrDestinationUnwritable, path, err)
	}
	defer func() {
		if closeErr := out.Close(); closeErr != nil {
			err = multierr.Append(err, fmt.Errorf("%w: %s: %w", bundle.ErrDestinationUnwritable, path, closeErr))
		}
	}()

	if _, err := out.WriteString(sec.Payload); err != nil {
		s.logger.Error("Failed to write file", zap.String("file", path), zap.Error(err))
		return path, fmt.Errorf("%w: %s: %w", bundle.ErrDestinationUnwritable, path, err)
	}

	s.logger.Debug("Wrote file",
		zap.String("section", sec.Filename),
		zap.String("file", path),
		zap.Int("bytes", len(sec.Payload)))
	return path, nil
}
