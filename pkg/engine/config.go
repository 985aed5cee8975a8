package engine

import (
	"bytes"
	"os"
	"runtime"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/wildfunctions/symdiff/pkg/pool"
)

// Config holds all parameters for a derivative check run.
type Config struct {
	Pool      string  `yaml:"pool" json:"pool"`
	Trees     int     `yaml:"trees" json:"trees"`
	MaxDepth  int     `yaml:"max_depth" json:"max_depth"`
	Target    string  `yaml:"target" json:"target"` // variable to differentiate by
	Seed      int64   `yaml:"seed" json:"seed"`
	Workers   int     `yaml:"workers" json:"workers"`
	Step      float64 `yaml:"step" json:"step"`
	Tolerance float64 `yaml:"tolerance" json:"tolerance"`
	Format    string  `yaml:"format" json:"format"` // "text" or "json"
	Verbose   bool    `yaml:"verbose" json:"verbose"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Pool:      "polynomial",
		Trees:     1000,
		MaxDepth:  4,
		Target:    "x",
		Seed:      0, // 0 = random
		Workers:   runtime.NumCPU(),
		Step:      1e-5,
		Tolerance: 1e-4,
		Format:    "text",
		Verbose:   false,
	}
}

// LoadConfig reads a YAML file over the defaults. Unknown keys are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "reading config %s", path)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

// Validate reports every invalid field.
func (c Config) Validate() error {
	var errs *multierror.Error
	if _, err := pool.Get(c.Pool); err != nil {
		errs = multierror.Append(errs, err)
	}
	if c.Trees <= 0 {
		errs = multierror.Append(errs, errors.Errorf("trees must be positive, got %d", c.Trees))
	}
	if c.MaxDepth <= 0 {
		errs = multierror.Append(errs, errors.Errorf("max_depth must be positive, got %d", c.MaxDepth))
	}
	if c.Target == "" {
		errs = multierror.Append(errs, errors.New("target variable is required"))
	}
	if c.Step <= 0 {
		errs = multierror.Append(errs, errors.Errorf("step must be positive, got %g", c.Step))
	}
	if c.Tolerance <= 0 {
		errs = multierror.Append(errs, errors.Errorf("tolerance must be positive, got %g", c.Tolerance))
	}
	switch c.Format {
	case "text", "json":
	default:
		errs = multierror.Append(errs, errors.Errorf("unknown format %q (text, json)", c.Format))
	}
	return errs.ErrorOrNil()
}
