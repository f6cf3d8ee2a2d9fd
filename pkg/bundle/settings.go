// Package bundle holds the pieces shared by the combiner and the separator:
// the Settings record, the marker framing contract and the error kinds.
package bundle

import (
	"fmt"
	"os"
	"strings"
)

// Default marker strings.
const (
	DefaultBeginMarker = "--!- BINER FILE BEGIN -!--"
	DefaultEndMarker   = "--!- BINER FILE END -!--"
	DefaultDirectory   = "./"
)

// Settings is constructed once per invocation and treated as immutable while
// an operation runs.
type Settings struct {
	Verbose     bool   // Enables diagnostic output.
	Directory   string // Destination directory for separated files; ends with the path separator.
	BeginMarker string // Marker opening a section.
	EndMarker   string // Marker closing a section.
}

// DefaultSettings returns the settings used when nothing is overridden.
func DefaultSettings() Settings {
	return Settings{
		Directory:   DefaultDirectory,
		BeginMarker: DefaultBeginMarker,
		EndMarker:   DefaultEndMarker,
	}
}

// Validate checks the marker constraints.
func (s Settings) Validate() error {
	markers := []struct{ name, value string }{
		{"begin marker", s.BeginMarker},
		{"end marker", s.EndMarker},
	}
	for _, m := range markers {
		if m.value == "" {
			return fmt.Errorf("%s must not be empty", m.name)
		}
		if strings.Contains(m.value, "\n") {
			return fmt.Errorf("%s must not contain a newline", m.name)
		}
	}
	if s.BeginMarker == s.EndMarker {
		return fmt.Errorf("begin and end markers must differ (both are %q)", s.BeginMarker)
	}
	return nil
}

// Markers returns the framing contract for these settings.
func (s Settings) Markers() Markers {
	return Markers{Begin: s.BeginMarker, End: s.EndMarker}
}

// NormalizeDirectory makes sure dir ends with the host path separator.
func NormalizeDirectory(dir string) string {
	if dir == "" {
		dir = DefaultDirectory
	}
	if !strings.HasSuffix(dir, string(os.PathSeparator)) {
		dir += string(os.PathSeparator)
	}
	return dir
}
