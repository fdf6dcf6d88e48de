// Package config holds the YAML-backed configuration for the stylesheet
// engine: parser limits and logging settings.
package config

import (
	"fmt"
	"os"

	"go.uber.org/multierr"
	yaml "gopkg.in/yaml.v3"

	"github.com/SkuldNorniern/celeris-sub000/css"
)

// LimitsConfig mirrors css.Limits with yaml tags. Every field caps one
// parsing loop; see css.Limits for what each bound protects.
type LimitsConfig struct {
	MaxRules              int `yaml:"max_rules"`
	MaxParseFailures      int `yaml:"max_parse_failures"`
	MaxDeclarations       int `yaml:"max_declarations"`
	MaxSelectors          int `yaml:"max_selectors"`
	MaxSelectorComponents int `yaml:"max_selector_components"`
	MaxNestedRules        int `yaml:"max_nested_rules"`
	MaxKeyframes          int `yaml:"max_keyframes"`
	MaxFunctionArgs       int `yaml:"max_function_args"`
	MaxValueParts         int `yaml:"max_value_parts"`
	MaxNestingDepth       int `yaml:"max_nesting_depth"`
	MaxRun                int `yaml:"max_run"`
}

// LoggingConfig selects the level and encoding of the process logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level"`
	// Encoding is console or json.
	Encoding string `yaml:"encoding"`
}

// Config is the full configuration document.
type Config struct {
	Limits  LimitsConfig  `yaml:"limits"`
	Logging LoggingConfig `yaml:"logging"`
}

// Default returns the configuration used when no file is given: the parser's
// default limits and warn-level console logging.
func Default() *Config {
	d := css.DefaultLimits()
	return &Config{
		Limits: LimitsConfig{
			MaxRules:              d.MaxRules,
			MaxParseFailures:      d.MaxParseFailures,
			MaxDeclarations:       d.MaxDeclarations,
			MaxSelectors:          d.MaxSelectors,
			MaxSelectorComponents: d.MaxSelectorComponents,
			MaxNestedRules:        d.MaxNestedRules,
			MaxKeyframes:          d.MaxKeyframes,
			MaxFunctionArgs:       d.MaxFunctionArgs,
			MaxValueParts:         d.MaxValueParts,
			MaxNestingDepth:       d.MaxNestingDepth,
			MaxRun:                d.MaxRun,
		},
		Logging: LoggingConfig{Level: "warn", Encoding: "console"},
	}
}

// Load reads a YAML configuration file on top of the defaults. Fields the
// file does not set keep their default values; unknown fields are rejected.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("decoding config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config file %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks every field and returns all problems at once rather than
// stopping at the first.
func (c *Config) Validate() error {
	var err error
	check := func(name string, v int) {
		if v <= 0 {
			err = multierr.Append(err, fmt.Errorf("limits.%s must be positive, got %d", name, v))
		}
	}
	check("max_rules", c.Limits.MaxRules)
	check("max_parse_failures", c.Limits.MaxParseFailures)
	check("max_declarations", c.Limits.MaxDeclarations)
	check("max_selectors", c.Limits.MaxSelectors)
	check("max_selector_components", c.Limits.MaxSelectorComponents)
	check("max_nested_rules", c.Limits.MaxNestedRules)
	check("max_keyframes", c.Limits.MaxKeyframes)
	check("max_function_args", c.Limits.MaxFunctionArgs)
	check("max_value_parts", c.Limits.MaxValueParts)
	check("max_nesting_depth", c.Limits.MaxNestingDepth)
	check("max_run", c.Limits.MaxRun)

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		err = multierr.Append(err, fmt.Errorf("logging.level must be one of debug, info, warn, error, got %q", c.Logging.Level))
	}
	switch c.Logging.Encoding {
	case "console", "json":
	default:
		err = multierr.Append(err, fmt.Errorf("logging.encoding must be console or json, got %q", c.Logging.Encoding))
	}
	return err
}

// CSSLimits converts the configured limits into the parser's Limits value.
func (l LimitsConfig) CSSLimits() css.Limits {
	return css.Limits{
		MaxRules:              l.MaxRules,
		MaxParseFailures:      l.MaxParseFailures,
		MaxDeclarations:       l.MaxDeclarations,
		MaxSelectors:          l.MaxSelectors,
		MaxSelectorComponents: l.MaxSelectorComponents,
		MaxNestedRules:        l.MaxNestedRules,
		MaxKeyframes:          l.MaxKeyframes,
		MaxFunctionArgs:       l.MaxFunctionArgs,
		MaxValueParts:         l.MaxValueParts,
		MaxNestingDepth:       l.MaxNestingDepth,
		MaxRun:                l.MaxRun,
	}
}
