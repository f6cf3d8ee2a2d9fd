package cmd

import (
	"fmt"
	"io"

	"biner/pkg/version"

	"github.com/spf13/cobra"
)

// -v/--version historically enables verbose mode, so build information is
// printed by --build-version instead.
func addBuildVersionFlag(cmd *cobra.Command) {
	cmd.Flags().Bool("build-version", false, "Print build version information and exit")
	cmd.Flags().Bool("short", false, "With --build-version, print the version number only")
}

// printBuildVersion prints build information when --build-version is set.
func printBuildVersion(cmd *cobra.Command, w io.Writer) (bool, error) {
	show, err := cmd.Flags().GetBool("build-version")
	if err != nil {
		return false, fmt.Errorf("error reading flags: %w", err)
	}
	if !show {
		return false, nil
	}
	short, err := cmd.Flags().GetBool("short")
	if err != nil {
		return false, fmt.Errorf("error reading flags: %w", err)
	}

	v := version.Get()
	if short {
		fmt.Fprintln(w, v.Version)
	} else {
		fmt.Fprintln(w, v.String())
	}
	return true, nil
}
