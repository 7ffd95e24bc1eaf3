package config

import (
	"time"

	"github.com/arthur-debert/inreplace/pkg/errors"
	"github.com/arthur-debert/inreplace/pkg/inreplace"
	"github.com/arthur-debert/inreplace/pkg/pattern"
)

// Config is the decoded configuration
type Config struct {
	OnMissingChange string `koanf:"on_missing_change"`
	Regex           Regex  `koanf:"regex"`
	Output          Output `koanf:"output"`
}

// Regex selects and bounds the regular expression engine
type Regex struct {
	Engine  string        `koanf:"engine"`
	Timeout time.Duration `koanf:"timeout"`
}

// Output controls how results are printed
type Output struct {
	Format string `koanf:"format"`
	Color  string `koanf:"color"`
	Diff   bool   `koanf:"diff"`
}

var (
	validFormats = []string{"text", "json", "yaml"}
	validColors  = []string{"auto", "always", "never"}
	validEngines = []string{string(pattern.EngineRegexp2), string(pattern.EngineRE2)}
)

// Validate rejects values outside their allowed sets
func (c *Config) Validate() error {
	if _, err := inreplace.ParsePolicy(c.OnMissingChange); err != nil {
		return invalid("on_missing_change", c.OnMissingChange, "fatal", "warn")
	}
	if !oneOf(c.Regex.Engine, validEngines) {
		return invalid("regex.engine", c.Regex.Engine, validEngines...)
	}
	if c.Regex.Timeout < 0 {
		return errors.Newf(errors.ErrConfigValid, "regex.timeout must not be negative, got %s", c.Regex.Timeout).
			WithDetail("key", "regex.timeout")
	}
	if !oneOf(c.Output.Format, validFormats) {
		return invalid("output.format", c.Output.Format, validFormats...)
	}
	if !oneOf(c.Output.Color, validColors) {
		return invalid("output.color", c.Output.Color, validColors...)
	}
	return nil
}

// Policy returns the missing-change policy. Call Validate first.
func (c *Config) Policy() inreplace.Policy {
	p, _ := inreplace.ParsePolicy(c.OnMissingChange)
	return p
}

// PatternOptions returns the options patterns are compiled with
func (c *Config) PatternOptions() pattern.Options {
	return pattern.Options{Timeout: c.Regex.Timeout}
}

func invalid(key, value string, allowed ...string) error {
	return errors.Newf(errors.ErrConfigValid, "invalid value %q for %s (allowed: %v)", value, key, allowed).
		WithDetails(map[string]interface{}{
			"key":     key,
			"value":   value,
			"allowed": allowed,
		})
}

func oneOf(s string, allowed []string) bool {
	for _, a := range allowed {
		if s == a {
			return true
		}
	}
	return false
}
