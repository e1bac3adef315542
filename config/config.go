// Package config layers the settings of an evaluation: defaults, then an
// optional TOML file, then environment variables. Command-line flags are
// applied last by the caller.
package config

import (
	"os"
	"path"

	"github.com/BurntSushi/toml"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Formats are the report formats that can be produced.
var Formats = []string{"csv", "json"}

// Config holds evaluation settings.
type Config struct {
	Cutoff  int    `toml:"cutoff" envconfig:"GRDEVAL_CUTOFF"`
	Workers int    `toml:"workers" envconfig:"GRDEVAL_WORKERS"`
	Format  string `toml:"format" envconfig:"GRDEVAL_FORMAT"`
}

// Default returns the settings used when nothing else is configured.
func Default() Config {
	return Config{
		Cutoff:  20,
		Workers: 1,
		Format:  "csv",
	}
}

// DefaultPath is the configuration file read when none is given, or the
// empty string if the home directory is unknown.
func DefaultPath() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return path.Join(dir, ".grdeval.toml")
}

// Load reads the configuration file at p, if p is not empty, and applies
// environment overrides on top of it.
func Load(p string) (Config, error) {
	c := Default()

	if len(p) > 0 {
		if _, err := toml.DecodeFile(p, &c); err != nil {
			return c, errors.Wrapf(err, "loading config file %s", p)
		}
	}

	if err := envconfig.Process("", &c); err != nil {
		return c, errors.Wrap(err, "processing env config")
	}

	return c, nil
}

// Validate checks that the settings can drive an evaluation.
func (c Config) Validate() error {
	if c.Cutoff < 0 {
		return errors.Errorf("cutoff must not be negative, got %d", c.Cutoff)
	}
	if c.Workers < 1 {
		return errors.Errorf("workers must be at least 1, got %d", c.Workers)
	}
	for _, f := range Formats {
		if c.Format == f {
			return nil
		}
	}
	return errors.Errorf("unrecognised format %q", c.Format)
}
