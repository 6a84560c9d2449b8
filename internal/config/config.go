// Package config provides configuration loading and validation for the
// scorer CLI and server.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/JoHn11117/resume-scorer/internal/engine"
)

// Config is the scorer configuration, loadable from a JSON file. All
// fields are optional; missing values use defaults or CLI flags.
type Config struct {
	// Server
	ListenAddr  string `json:"listen_addr,omitempty"`  // host:port for the HTTP server
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL URL; empty keeps sessions in memory

	// Inputs
	Job    string `json:"job,omitempty"`     // Path to a job description text file
	JobURL string `json:"job_url,omitempty"` // URL to fetch the job posting from

	// Scoring defaults
	Role  string `json:"role,omitempty"`  // Default role for quality-coach mode
	Level string `json:"level,omitempty"` // Default claimed level

	// Calibration knobs. Zero means "use the built-in default".
	AcceptConfidence    float64 `json:"accept_confidence,omitempty"`     // Parser strategy acceptance gate (0-1)
	FloorConfidence     float64 `json:"floor_confidence,omitempty"`      // Parser unreadability floor (0-1)
	MinWordCount        int     `json:"min_word_count,omitempty"`        // Minimum words for a scoreable document
	FuzzyThreshold      float64 `json:"fuzzy_threshold,omitempty"`       // Keyword fuzzy-match similarity (0-1)
	FrequencyThreshold  int     `json:"frequency_threshold,omitempty"`   // Mentions before an unmarked term counts as required
	AutoRejectThreshold float64 `json:"auto_reject_threshold,omitempty"` // Required-match percentage below which ATS mode auto-rejects
	GapCriticalMonths   int     `json:"gap_critical_months,omitempty"`   // Employment gap length treated as critical
	GapWarningMonths    int     `json:"gap_warning_months,omitempty"`    // Employment gap length treated as a warning

	// Behavior
	Verbose bool `json:"verbose,omitempty"` // Print detailed debug information
}

// LoadConfig loads configuration from a JSON file.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values. Required
// fields are handled by CLI flag validation after merging.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	for name, v := range map[string]float64{
		"accept_confidence": c.AcceptConfidence,
		"floor_confidence":  c.FloorConfidence,
		"fuzzy_threshold":   c.FuzzyThreshold,
	} {
		if v < 0 || v > 1 {
			return fmt.Errorf("config error: '%s' must be between 0 and 1", name)
		}
	}
	if c.AutoRejectThreshold < 0 || c.AutoRejectThreshold > 100 {
		return fmt.Errorf("config error: 'auto_reject_threshold' must be between 0 and 100")
	}
	if c.MinWordCount < 0 {
		return fmt.Errorf("config error: 'min_word_count' must be non-negative")
	}
	if c.GapCriticalMonths < 0 || c.GapWarningMonths < 0 {
		return fmt.Errorf("config error: gap thresholds must be non-negative")
	}
	if c.GapCriticalMonths > 0 && c.GapWarningMonths > c.GapCriticalMonths {
		return fmt.Errorf("config error: 'gap_warning_months' must not exceed 'gap_critical_months'")
	}

	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. Config file values act as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.ListenAddr == "" {
		result.ListenAddr = defaults.ListenAddr
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.Role == "" {
		result.Role = defaults.Role
	}
	if result.Level == "" {
		result.Level = defaults.Level
	}

	if result.AcceptConfidence == 0 {
		result.AcceptConfidence = defaults.AcceptConfidence
	}
	if result.FloorConfidence == 0 {
		result.FloorConfidence = defaults.FloorConfidence
	}
	if result.MinWordCount == 0 {
		result.MinWordCount = defaults.MinWordCount
	}
	if result.FuzzyThreshold == 0 {
		result.FuzzyThreshold = defaults.FuzzyThreshold
	}
	if result.FrequencyThreshold == 0 {
		result.FrequencyThreshold = defaults.FrequencyThreshold
	}
	if result.AutoRejectThreshold == 0 {
		result.AutoRejectThreshold = defaults.AutoRejectThreshold
	}
	if result.GapCriticalMonths == 0 {
		result.GapCriticalMonths = defaults.GapCriticalMonths
	}
	if result.GapWarningMonths == 0 {
		result.GapWarningMonths = defaults.GapWarningMonths
	}

	// Bool fields: unset and false are indistinguishable, so CLI flags
	// always win for those.

	return result
}

// EngineOptions maps the calibration knobs onto the component configs,
// leaving untouched values at their built-in defaults.
func (c *Config) EngineOptions() engine.Options {
	opts := engine.DefaultOptions()

	if c.AcceptConfidence > 0 {
		opts.Parser.AcceptConfidence = c.AcceptConfidence
	}
	if c.FloorConfidence > 0 {
		opts.Parser.FloorConfidence = c.FloorConfidence
	}
	if c.MinWordCount > 0 {
		opts.Parser.MinWordCount = c.MinWordCount
	}
	if c.FuzzyThreshold > 0 {
		opts.Matcher.FuzzyThreshold = c.FuzzyThreshold
	}
	if c.FrequencyThreshold > 0 {
		opts.Keywords.FrequencyThreshold = c.FrequencyThreshold
	}
	if c.AutoRejectThreshold > 0 {
		opts.Scoring.AutoRejectThreshold = c.AutoRejectThreshold
	}
	if c.GapCriticalMonths > 0 {
		opts.RedFlags.GapCriticalMonths = c.GapCriticalMonths
	}
	if c.GapWarningMonths > 0 {
		opts.RedFlags.GapWarningMonths = c.GapWarningMonths
	}

	return opts
}
