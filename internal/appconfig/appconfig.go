// internal/appconfig/appconfig.go
// Package appconfig manages loading and interpreting application configuration.
package appconfig

import (
	"encoding/json"
	"fmt"
	"os"
)

const (
	// DefaultConfigPath is the default path to the application's configuration file.
	DefaultConfigPath = "config/config.json"
	// DefaultGoldenPath is the default location of the golden-set document.
	DefaultGoldenPath = "llm-evals/golden.yaml"
	// DefaultReportPath is the default destination for the eval report artifact.
	DefaultReportPath = "llm-evals/results/eval_report.json"
	// DefaultMinScore is the minimum passing score applied when none is configured.
	DefaultMinScore = 0.95
)

// Config represents the top-level application configuration.
type Config struct {
	GoldenPath string  `json:"goldenPath,omitempty" mapstructure:"goldenPath"`
	ReportPath string  `json:"reportPath,omitempty" mapstructure:"reportPath"`
	MinScore   float64 `json:"minScore,omitempty" mapstructure:"minScore"`
	Debug      bool    `json:"debug" mapstructure:"debug"`
	LogFile    string  `json:"logFile,omitempty" mapstructure:"logFile"`
	AppBaseURL string  `json:"appBaseUrl,omitempty" mapstructure:"appBaseUrl"`
	APIBaseURL string  `json:"apiBaseUrl,omitempty" mapstructure:"apiBaseUrl"`
	ConfigPath string  `json:"-" mapstructure:"-"`
}

// GoldenPathOrDefault returns the golden-set document path, applying the default if not set.
func (c Config) GoldenPathOrDefault() string {
	if c.GoldenPath == "" {
		return DefaultGoldenPath
	}
	return c.GoldenPath
}

// ReportPathOrDefault returns the report destination, applying the default if not set.
func (c Config) ReportPathOrDefault() string {
	if c.ReportPath == "" {
		return DefaultReportPath
	}
	return c.ReportPath
}

// MinScoreOrDefault returns the configured minimum passing score, falling
// back to the default when unset or out of range.
func (c Config) MinScoreOrDefault() float64 {
	if c.MinScore <= 0 || c.MinScore > 1 {
		return DefaultMinScore
	}
	return c.MinScore
}

// Load reads and parses the configuration file at path.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config: %w", err)
	}

	var cfg Config
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config: %w", err)
	}
	cfg.ConfigPath = path

	return &cfg, nil
}
