// Package config holds the CLI defaults file: a small YAML document whose
// values cobra flags may override.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spantree/report"
)

// Defaults applied after decoding.
const (
	DefaultFormat         = report.FormatText
	DefaultDotDir         = "."
	DefaultGraphvizBinary = "dot"
	DefaultImageFormat    = "png"
	DefaultLogLevel       = "info"
)

// ErrInvalid marks a config that decoded but holds unusable values.
var ErrInvalid = errors.New("config: invalid value")

// Config is the decoded defaults file.
type Config struct {
	Format         string `yaml:"format"`
	DotDir         string `yaml:"dot_dir"`
	Render         bool   `yaml:"render"`
	GraphvizBinary string `yaml:"graphviz_binary"`
	ImageFormat    string `yaml:"image_format"`
	LogLevel       string `yaml:"log_level"`
	MetricsAddr    string `yaml:"metrics_addr"`
}

// Default returns a Config with every default applied.
func Default() *Config {
	c := &Config{}
	c.applyDefaults()

	return c
}

func (c *Config) applyDefaults() {
	if c.Format == "" {
		c.Format = DefaultFormat
	}
	if c.DotDir == "" {
		c.DotDir = DefaultDotDir
	}
	if c.GraphvizBinary == "" {
		c.GraphvizBinary = DefaultGraphvizBinary
	}
	if c.ImageFormat == "" {
		c.ImageFormat = DefaultImageFormat
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
}

// Validate checks that the report format is known.
func (c *Config) Validate() error {
	for _, f := range report.Formats {
		if c.Format == f {
			return nil
		}
	}

	return fmt.Errorf("%w: format %q (want one of %v)", ErrInvalid, c.Format, report.Formats)
}

// Decode reads a config from r, applies defaults and validates it.
// An empty stream yields Default().
func Decode(r io.Reader) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var c Config
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	c.applyDefaults()
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return &c, nil
}

// Load reads the config at path. An empty path yields Default().
func Load(path string) (*Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	c, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}
