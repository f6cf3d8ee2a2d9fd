// Package config resolves the settings of one biner invocation from flags,
// BINER_* environment variables, an optional config file and defaults.
package config

import (
	"fmt"
	"strings"

	"biner/pkg/bundle"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of environment variables read by Load.
const EnvPrefix = "BINER"

// Keys shared by flags, environment variables and config files.
const (
	KeyVerbose     = "verbose"
	KeyDirectory   = "directory"
	KeyBeginMarker = "begin-marker"
	KeyEndMarker   = "end-marker"
	KeyOutput      = "output"
)

// FlagNames maps configuration keys to the command-line flags setting them.
// The historical verbose switch is spelled --version.
var FlagNames = map[string]string{
	KeyVerbose:     "version",
	KeyDirectory:   "directory",
	KeyBeginMarker: "begin-marker",
	KeyEndMarker:   "end-marker",
	KeyOutput:      "output",
}

// Config is the resolved configuration of one invocation.
type Config struct {
	Settings bundle.Settings
	Output   string // Combine destination; empty means standard output.
}

// Load resolves the configuration. Explicitly set flags win over environment
// variables, which win over the config file at configFile (when non-empty),
// which wins over defaults.
func Load(flags *pflag.FlagSet, configFile string) (*Config, error) {
	v := viper.New()

	defaults := bundle.DefaultSettings()
	v.SetDefault(KeyVerbose, defaults.Verbose)
	v.SetDefault(KeyDirectory, defaults.Directory)
	v.SetDefault(KeyBeginMarker, defaults.BeginMarker)
	v.SetDefault(KeyEndMarker, defaults.EndMarker)
	v.SetDefault(KeyOutput, "")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	if flags != nil {
		for key, name := range FlagNames {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag --%s: %w", name, err)
				}
			}
		}
	}

	cfg := &Config{
		Settings: bundle.Settings{
			Verbose:     v.GetBool(KeyVerbose),
			Directory:   bundle.NormalizeDirectory(v.GetString(KeyDirectory)),
			BeginMarker: v.GetString(KeyBeginMarker),
			EndMarker:   v.GetString(KeyEndMarker),
		},
		Output: v.GetString(KeyOutput),
	}
	if err := cfg.Settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid markers: %w", err)
	}
	return cfg, nil
}
