// Package config loads the settings of the bignum command line tool.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/linal-sdk/bignum"
)

// Output formats
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Config holds the complete tool configuration
type Config struct {
	Math   MathConfig   `toml:"math"`
	Output OutputConfig `toml:"output"`
}

// MathConfig holds numeric settings
type MathConfig struct {
	// Epsilon is the convergence threshold of transcendental functions,
	// written as a rational literal such as "1/1000000" or "0.0001".
	Epsilon string `toml:"epsilon"`
	// Precision is the number of digits printed after the decimal point.
	Precision *int `toml:"precision"`
}

// OutputConfig holds rendering settings
type OutputConfig struct {
	Format string `toml:"format"`
	Color  *bool  `toml:"color"`
}

// Default returns the configuration used when no file is given
func Default() *Config {
	var cfg Config
	cfg.applyDefaults()
	return &cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return &cfg, nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Math.Epsilon == "" {
		c.Math.Epsilon = bignum.DefaultEpsilon().String()
	}
	if c.Math.Precision == nil {
		p := 20
		c.Math.Precision = &p
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
	if c.Output.Color == nil {
		color := true
		c.Output.Color = &color
	}
}

// Validate checks that every setting is usable
func (c *Config) Validate() error {
	eps, err := bignum.ParseRational(c.Math.Epsilon)
	if err != nil {
		return fmt.Errorf("math.epsilon: %w", err)
	}
	if !eps.IsPos() {
		return fmt.Errorf("math.epsilon %q must be positive", c.Math.Epsilon)
	}
	if c.Math.Precision != nil && *c.Math.Precision < 0 {
		return fmt.Errorf("math.precision %d must not be negative", *c.Math.Precision)
	}
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		return fmt.Errorf("output.format %q must be %q or %q", c.Output.Format, FormatText, FormatYAML)
	}
	return nil
}

// Eps returns the parsed epsilon
func (c *Config) Eps() (bignum.Rational, error) {
	return bignum.ParseRational(c.Math.Epsilon)
}

// Prec returns the output precision
func (c *Config) Prec() int {
	if c.Math.Precision == nil {
		return 20
	}
	return *c.Math.Precision
}

// UseColor reports whether errors are colored
func (c *Config) UseColor() bool {
	return c.Output.Color == nil || *c.Output.Color
}
