// Package config loads the YAML configuration of the numintviz command.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/leonjayakusuma/NumIntViz/convergence"
	"github.com/leonjayakusuma/NumIntViz/quadrature"
)

// ErrInvalidConfig is returned by Validate.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config holds all numintviz configuration.
type Config struct {
	// Problem settings
	Function string  `yaml:"function"`
	A        float64 `yaml:"a"`
	B        float64 `yaml:"b"`

	// Quadrature settings
	Quadrature QuadratureConfig `yaml:"quadrature"`

	// Convergence sweep settings
	Convergence ConvergenceConfig `yaml:"convergence"`

	// Logging
	Logging LoggingConfig `yaml:"logging"`

	// Plot output
	Plot PlotConfig `yaml:"plot"`
}

// QuadratureConfig configures the rules.
type QuadratureConfig struct {
	Rule      string  `yaml:"rule"`      // fixed-node rule, see quadrature.ParseRule
	N         int     `yaml:"n"`         // subintervals of the fixed-node rules
	Nodes     int     `yaml:"nodes"`     // Gauss-Legendre nodes
	Tolerance float64 `yaml:"tolerance"` // adaptive Simpson tolerance

	MaxDepth       int `yaml:"max_depth"`
	MaxEvaluations int `yaml:"max_evaluations"`
}

// ConvergenceConfig configures the sweep sizes. Sizes wins over the
// doubling sequence when set.
type ConvergenceConfig struct {
	Sizes []int `yaml:"sizes,omitempty"`
	First int   `yaml:"first"`
	Count int   `yaml:"count"`
}

// LoggingConfig configures zap.
type LoggingConfig struct {
	Level       string `yaml:"level"` // debug, info, warn, error
	Development bool   `yaml:"development"`
}

// PlotConfig configures the rendered images.
type PlotConfig struct {
	Output string  `yaml:"output"`
	Width  float64 `yaml:"width"`  // inches
	Height float64 `yaml:"height"` // inches
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Function: "x^2",
		A:        0,
		B:        3,
		Quadrature: QuadratureConfig{
			Rule:           quadrature.SimpsonRule.String(),
			N:              10,
			Nodes:          3,
			Tolerance:      1e-8,
			MaxDepth:       quadrature.DefaultMaxDepth,
			MaxEvaluations: quadrature.DefaultMaxEvaluations,
		},
		Convergence: ConvergenceConfig{
			First: 2,
			Count: 10,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
		Plot: PlotConfig{
			Output: "convergence.png",
			Width:  6,
			Height: 4,
		},
	}
}

// Load reads a YAML file on top of Default.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// Rule parses Quadrature.Rule.
func (c *Config) Rule() (quadrature.Rule, error) {
	return quadrature.ParseRule(c.Quadrature.Rule)
}

// Sizes returns the convergence sweep sizes.
func (c *Config) Sizes() []int {
	if len(c.Convergence.Sizes) > 0 {
		return c.Convergence.Sizes
	}
	return convergence.DoublingSizes(c.Convergence.First, c.Convergence.Count)
}

// Validate checks the settings the rules cannot run without.
func (c *Config) Validate() error {
	if c.Function == "" {
		return fmt.Errorf("%w: function is empty", ErrInvalidConfig)
	}
	for name, v := range map[string]float64{"a": c.A, "b": c.B} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: bound %s = %v is not finite", ErrInvalidConfig, name, v)
		}
	}
	if _, err := c.Rule(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if !(c.Quadrature.Tolerance > 0) || math.IsInf(c.Quadrature.Tolerance, 0) {
		return fmt.Errorf("%w: tolerance %v must be positive", ErrInvalidConfig, c.Quadrature.Tolerance)
	}
	if c.Quadrature.MaxDepth < 0 || c.Quadrature.MaxEvaluations < 0 {
		return fmt.Errorf("%w: adaptive limits must not be negative", ErrInvalidConfig)
	}
	if len(c.Convergence.Sizes) == 0 && (c.Convergence.First <= 0 || c.Convergence.Count < 0 || c.Convergence.Count > 30) {
		return fmt.Errorf("%w: convergence needs sizes or first > 0 and 0 <= count <= 30", ErrInvalidConfig)
	}
	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: unknown log level %q", ErrInvalidConfig, c.Logging.Level)
	}
	return nil
}
