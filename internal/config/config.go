// Package config loads the YAML configuration of the dihedral CLI.
//
// A missing path yields Default(); a file only needs the keys it overrides:
//
//	n: 6
//	side: left
//	format: yaml
//	verify:
//	  min_n: 2
//	  max_n: 128
//	  workers: 8
//	log:
//	  level: debug
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/dihedral/coxeter"
)

// ErrInvalidConfig is returned when a loaded configuration fails validation.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Output formats.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config is the root document.
type Config struct {
	N      int          `yaml:"n"`
	Side   string       `yaml:"side"`
	Format string       `yaml:"format"`
	Strict bool         `yaml:"strict"`
	Verify VerifyConfig `yaml:"verify"`
	Log    LogConfig    `yaml:"log"`
}

// VerifyConfig drives the verify command.
type VerifyConfig struct {
	MinN    int `yaml:"min_n"`
	MaxN    int `yaml:"max_n"`
	Workers int `yaml:"workers"`
}

// LogConfig selects the zap level and encoding.
type LogConfig struct {
	Level    string `yaml:"level"`
	Encoding string `yaml:"encoding"`
}

// Default returns D5 acting on the right, text output, verification of
// n in [2, 64] on all CPUs, info-level console logs.
func Default() Config {
	return Config{
		N:      5,
		Side:   coxeter.Right.String(),
		Format: FormatText,
		Verify: VerifyConfig{MinN: 2, MaxN: 64},
		Log:    LogConfig{Level: "info", Encoding: "console"},
	}
}

// Load reads path over Default(). An empty path returns Default().
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// Parse decodes data over Default() and validates the result.
// Unknown keys are rejected.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field domains.
func (c Config) Validate() error {
	if c.N < 2 {
		return fmt.Errorf("%w: n=%d < 2", ErrInvalidConfig, c.N)
	}
	if _, err := coxeter.ParseSide(c.Side); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.Format != FormatText && c.Format != FormatYAML {
		return fmt.Errorf("%w: format %q (want %q or %q)", ErrInvalidConfig, c.Format, FormatText, FormatYAML)
	}
	if c.Verify.MinN < 2 || c.Verify.MaxN < c.Verify.MinN {
		return fmt.Errorf("%w: verify range [%d, %d]", ErrInvalidConfig, c.Verify.MinN, c.Verify.MaxN)
	}
	if c.Verify.Workers < 0 {
		return fmt.Errorf("%w: verify.workers=%d", ErrInvalidConfig, c.Verify.Workers)
	}
	switch c.Log.Encoding {
	case "console", "json":
	default:
		return fmt.Errorf("%w: log.encoding %q", ErrInvalidConfig, c.Log.Encoding)
	}

	return nil
}

// SideValue returns Side parsed; Validate guarantees it succeeds.
func (c Config) SideValue() coxeter.Side {
	s, err := coxeter.ParseSide(c.Side)
	if err != nil {
		return coxeter.Right
	}

	return s
}
