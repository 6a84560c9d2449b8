package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(tmpFile, []byte(content), 0644))
	return tmpFile
}

func TestLoadConfig_ValidJSON(t *testing.T) {
	path := writeConfig(t, `{
		"listen_addr": ":8080",
		"job_url": "https://example.com/job",
		"role": "devops_engineer",
		"fuzzy_threshold": 0.85,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "https://example.com/job", cfg.JobURL)
	assert.Equal(t, "devops_engineer", cfg.Role)
	assert.InDelta(t, 0.85, cfg.FuzzyThreshold, 0.001)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{ invalid json }`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestValidate_MutuallyExclusiveJobSources(t *testing.T) {
	cfg := &Config{Job: "job.txt", JobURL: "https://example.com"}
	assert.Error(t, cfg.Validate())
}

func TestValidate_ThresholdRanges(t *testing.T) {
	assert.Error(t, (&Config{FuzzyThreshold: 1.5}).Validate())
	assert.Error(t, (&Config{AutoRejectThreshold: 120}).Validate())
	assert.Error(t, (&Config{GapWarningMonths: 20, GapCriticalMonths: 10}).Validate())
	assert.NoError(t, (&Config{FuzzyThreshold: 0.8, AutoRejectThreshold: 60}).Validate())
}

func TestValidate_JobFileMustExist(t *testing.T) {
	cfg := &Config{Job: filepath.Join(t.TempDir(), "missing.txt")}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Role: "data_scientist"}
	merged := cfg.MergeWithDefaults(Config{
		ListenAddr:     ":9000",
		Role:           "software_engineer",
		FuzzyThreshold: 0.8,
	})

	assert.Equal(t, ":9000", merged.ListenAddr)
	// Explicit values survive the merge.
	assert.Equal(t, "data_scientist", merged.Role)
	assert.InDelta(t, 0.8, merged.FuzzyThreshold, 0.001)
}

func TestEngineOptionsAppliesKnobs(t *testing.T) {
	cfg := &Config{
		FuzzyThreshold:      0.9,
		MinWordCount:        80,
		AutoRejectThreshold: 50,
		GapCriticalMonths:   24,
	}
	opts := cfg.EngineOptions()

	assert.InDelta(t, 0.9, opts.Matcher.FuzzyThreshold, 0.001)
	assert.Equal(t, 80, opts.Parser.MinWordCount)
	assert.InDelta(t, 50, opts.Scoring.AutoRejectThreshold, 0.001)
	assert.Equal(t, 24, opts.RedFlags.GapCriticalMonths)

	// Unset knobs keep their built-in defaults.
	assert.InDelta(t, 0.7, opts.Parser.AcceptConfidence, 0.001)
	assert.Equal(t, 3, opts.Keywords.FrequencyThreshold)
	assert.Equal(t, 9, opts.RedFlags.GapWarningMonths)
}
