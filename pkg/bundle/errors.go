package bundle

import "errors"

// Error kinds returned by the engines. Errors that concern a particular path
// wrap one of these, so callers test with errors.Is.
var (
	// ErrInputMissing is returned when a combine input is not an existing regular file.
	ErrInputMissing = errors.New("input file does not exist")

	// ErrInputUnreadable is returned when an input file cannot be opened or read.
	ErrInputUnreadable = errors.New("input file could not be read")

	// ErrBundleMalformed is returned when separate input lacks a begin or an end marker.
	ErrBundleMalformed = errors.New("data is missing biner marker data, try overriding the biner markers")

	// ErrTooManyDuplicates is returned when every collision suffix is taken.
	ErrTooManyDuplicates = errors.New("too many duplicate files")

	// ErrDestinationUnwritable is returned when an output file or directory cannot be written.
	ErrDestinationUnwritable = errors.New("destination could not be written")
)
