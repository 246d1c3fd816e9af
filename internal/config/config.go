// Package config loads analyzer settings from YAML and the environment.
package config

import (
	"fmt"
	"os"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"github.com/mhr3/voynich/freq"
)

// Config holds all analyzer configuration.
type Config struct {
	Analysis AnalysisConfig `yaml:"analysis"`
	Report   ReportConfig   `yaml:"report"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// AnalysisConfig configures counting, ranking and mapping.
type AnalysisConfig struct {
	Alphabet string `yaml:"alphabet"`  // reference letters, most frequent first
	TieBreak string `yaml:"tie_break"` // first-occurrence or code-point
}

// ReportConfig configures the printed report.
type ReportConfig struct {
	Escape   bool `yaml:"escape"`   // print non-graphic symbols as escapes
	Decipher bool `yaml:"decipher"` // append the substituted text
}

// LoggingConfig configures the zap logger.
type LoggingConfig struct {
	// Level is one of debug, info, warn or error.
	Level       string `yaml:"level"`
	Development bool   `yaml:"development"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		Analysis: AnalysisConfig{
			Alphabet: freq.EnglishOrder,
			TieBreak: freq.FirstOccurrence.String(),
		},
		Logging: LoggingConfig{
			Level: "warn",
		},
	}
}

// Load layers environment overrides on the defaults and then the YAML file
// at path on top, so file values win over the environment. An empty path
// skips the file. The result is not validated: callers apply their own
// overrides first and then call Validate.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	cfg.applyEnvOverrides()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	return cfg, nil
}

// Save writes the configuration to path as YAML.
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

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv("VOYNICH_ALPHABET"); v != "" {
		c.Analysis.Alphabet = v
	}
	if v := os.Getenv("VOYNICH_TIE_BREAK"); v != "" {
		c.Analysis.TieBreak = v
	}
	if v := os.Getenv("VOYNICH_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
}

// Validate checks every field that has a restricted set of values.
func (c *Config) Validate() error {
	if _, err := c.AlphabetValue(); err != nil {
		return fmt.Errorf("invalid analysis.alphabet: %w", err)
	}
	if _, err := c.TieBreakValue(); err != nil {
		return fmt.Errorf("invalid analysis.tie_break: %w", err)
	}
	if _, err := c.LogLevel(); err != nil {
		return fmt.Errorf("invalid logging.level: %w", err)
	}
	return nil
}

// AlphabetValue returns the parsed reference alphabet.
func (c *Config) AlphabetValue() (freq.Alphabet, error) {
	return freq.ParseAlphabet(c.Analysis.Alphabet)
}

// TieBreakValue returns the parsed tie-break policy.
func (c *Config) TieBreakValue() (freq.TieBreak, error) {
	return freq.ParseTieBreak(c.Analysis.TieBreak)
}

// LogLevel returns the parsed logging level. Only debug, info, warn and
// error are accepted; the panic and fatal levels would drop error records.
func (c *Config) LogLevel() (zapcore.Level, error) {
	level, err := zapcore.ParseLevel(c.Logging.Level)
	if err != nil {
		return level, err
	}
	if level < zapcore.DebugLevel || level > zapcore.ErrorLevel {
		return level, fmt.Errorf("unsupported level %q (want debug, info, warn or error)", c.Logging.Level)
	}
	return level, nil
}

// AnalysisOptions converts the analysis section for freq.Analyze.
func (c *Config) AnalysisOptions() (freq.Options, error) {
	alpha, err := c.AlphabetValue()
	if err != nil {
		return freq.Options{}, err
	}
	tb, err := c.TieBreakValue()
	if err != nil {
		return freq.Options{}, err
	}
	return freq.Options{Alphabet: alpha, TieBreak: tb}, nil
}
