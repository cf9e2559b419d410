// Package config holds the solver parameters with documented defaults.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds root-finding and day-count parameters.
// Zero values are never meaningful; start from DefaultConfig.
type Config struct {
	// InitialGuess is the starting rate estimate for Newton-Raphson.
	InitialGuess float64 `yaml:"initial_guess"`

	// ConvergenceTolerance is the absolute NPV magnitude below which the
	// current estimate is accepted as the root.
	ConvergenceTolerance float64 `yaml:"convergence_tolerance"`

	// MaxIterations caps the solver loop; exceeding it yields a
	// non-convergence error.
	MaxIterations int `yaml:"max_iterations"`

	// DaysInYear is the ACT/365 denominator converting day counts to
	// year fractions.
	DaysInYear float64 `yaml:"days_in_year"`

	// BracketLow and BracketHigh bound the initial bisection bracket
	// probed when a Newton step is inadmissible. BracketLow must stay
	// above -1 to keep the discount base positive.
	BracketLow  float64 `yaml:"bracket_low"`
	BracketHigh float64 `yaml:"bracket_high"`

	// MaxBracketGrowth is how many times the upper bracket bound is
	// doubled while searching for a sign change in NPV.
	MaxBracketGrowth int `yaml:"max_bracket_growth"`
}

// DefaultConfig provides production-ready default values.
var DefaultConfig = Config{
	InitialGuess:         0.1,
	ConvergenceTolerance: 1e-6,
	MaxIterations:        100,
	DaysInYear:           365.0,
	BracketLow:           -0.99,
	BracketHigh:          10.0,
	MaxBracketGrowth:     50,
}

// cfg is the active configuration. Defaults to DefaultConfig.
var cfg = DefaultConfig

// SetConfig replaces the active configuration.
func SetConfig(c Config) {
	cfg = c
}

// GetConfig returns the active configuration.
func GetConfig() Config {
	return cfg
}

// Load reads a YAML parameter file and merges it over DefaultConfig.
// Absent keys keep their defaults; a missing file is an error.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	c := DefaultConfig
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	return c, nil
}
