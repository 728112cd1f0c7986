// Package config loads propq settings from propq.ini.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strconv"

	"github.com/propq/propq/check"
	"github.com/propq/propq/inifile"
)

// ConfigFilename is the name of the config file looked up in the working
// directory.
const ConfigFilename = "propq.ini"

// Config holds settings for the propq command.
type Config struct {
	// Dir is the directory the config was loaded from; empty when running
	// on defaults.
	Dir string

	Check CheckConfig
}

// CheckConfig holds trial-run settings from the [check] section.
type CheckConfig struct {
	Trials  int
	Seed    int64
	Verbose bool
}

// Default returns the configuration used when no propq.ini exists.
func Default() Config {
	return Config{
		Check: CheckConfig{Trials: check.DefaultTrials},
	}
}

// Load reads propq.ini from dir. A missing file is not an error: the
// defaults are returned. A present but malformed file is.
func Load(dir string) (Config, error) {
	cfg := Default()

	f, err := inifile.ParseFile(filepath.Join(dir, ConfigFilename))
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("reading %s: %w", ConfigFilename, err)
	}
	cfg.Dir = dir

	if v := f.Get("check", "trials"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return cfg, fmt.Errorf("%s: check.trials must be a positive integer, got %q", ConfigFilename, v)
		}
		cfg.Check.Trials = n
	}
	if v := f.Get("check", "seed"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return cfg, fmt.Errorf("%s: check.seed must be an integer, got %q", ConfigFilename, v)
		}
		cfg.Check.Seed = n
	}
	if v := f.Get("check", "verbose"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: check.verbose must be a boolean, got %q", ConfigFilename, v)
		}
		cfg.Check.Verbose = b
	}

	return cfg, nil
}
