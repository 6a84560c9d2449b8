package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/JoHn11117/resume-scorer/internal/config"
	"github.com/JoHn11117/resume-scorer/internal/engine"
	"github.com/JoHn11117/resume-scorer/internal/fetch"
	"github.com/JoHn11117/resume-scorer/internal/observability"
	"github.com/JoHn11117/resume-scorer/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score <resume-file>",
	Short: "Score a resume file",
	Long: `Score a PDF, DOCX, or plain-text resume. With a job description (--job or --job-url)
the default mode is an ATS simulation; without one it is quality coaching against
role expectations.

Configuration can be loaded from a JSON file using --config. Command-line arguments override config file values.`,
	Args: cobra.ExactArgs(1),
	RunE: runScore,
}

var (
	scoreConfigPath string
	scoreJob        string
	scoreJobURL     string
	scoreRole       string
	scoreLevel      string
	scoreMode       string
	scoreJSON       bool
	scoreVerbose    bool
)

func init() {
	scoreCmd.Flags().StringVar(&scoreConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")
	scoreCmd.Flags().StringVarP(&scoreJob, "job", "j", "", "Path to job description text file (mutually exclusive with --job-url)")
	scoreCmd.Flags().StringVar(&scoreJobURL, "job-url", "", "URL to fetch the job posting from (mutually exclusive with --job)")
	scoreCmd.Flags().StringVarP(&scoreRole, "role", "r", "", "Target role for quality-coach mode (e.g. software_engineer)")
	scoreCmd.Flags().StringVarP(&scoreLevel, "level", "l", "", "Claimed seniority level: entry, mid, or senior")
	scoreCmd.Flags().StringVarP(&scoreMode, "mode", "m", "", "Scoring mode: auto, ats_simulation, or quality_coach")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "Print the full result as JSON")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print detailed debug information")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, err := loadMergedConfig(cmd, scoreConfigPath)
	if err != nil {
		return err
	}

	resumePath := args[0]
	document, err := os.ReadFile(resumePath)
	if err != nil {
		return fmt.Errorf("failed to read resume file: %w", err)
	}

	jobDescription, err := resolveJobDescription(ctx, cfg)
	if err != nil {
		return err
	}

	eng, err := engine.New(cfg.EngineOptions())
	if err != nil {
		return fmt.Errorf("failed to initialize engine: %w", err)
	}

	resp, err := eng.ParseAndScore(ctx, engine.ScoreRequest{
		Document:       document,
		Format:         formatForPath(resumePath),
		JobDescription: jobDescription,
		Role:           cfg.Role,
		Level:          types.Level(cfg.Level),
		Mode:           types.ScoringMode(scoreMode),
	})
	if err != nil {
		return err
	}

	if scoreJSON {
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(resp)
	}

	printResult(resp, cfg.Verbose)
	return nil
}

// loadMergedConfig loads the optional config file and layers explicitly
// set CLI flags on top of it.
func loadMergedConfig(cmd *cobra.Command, path string) (config.Config, error) {
	var cfg config.Config
	if path != "" {
		loaded, err := config.LoadConfig(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("job") {
		cfg.Job = scoreJob
	}
	if cmd.Flags().Changed("job-url") {
		cfg.JobURL = scoreJobURL
	}
	if cmd.Flags().Changed("role") {
		cfg.Role = scoreRole
	}
	if cmd.Flags().Changed("level") {
		cfg.Level = scoreLevel
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = scoreVerbose
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func resolveJobDescription(ctx context.Context, cfg config.Config) (string, error) {
	switch {
	case cfg.Job != "":
		data, err := os.ReadFile(cfg.Job)
		if err != nil {
			return "", fmt.Errorf("failed to read job description: %w", err)
		}
		return string(data), nil
	case cfg.JobURL != "":
		text, err := fetch.JobPosting(ctx, cfg.JobURL, fetch.DefaultOptions())
		if err != nil {
			return "", err
		}
		return text, nil
	default:
		return "", nil
	}
}

func formatForPath(path string) types.Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pdf":
		return types.FormatPDF
	case ".docx":
		return types.FormatDOCX
	default:
		return types.FormatTXT
	}
}

func printResult(resp *engine.ScoreResponse, verbose bool) {
	printer := observability.NewPrinter(os.Stdout)
	printer.PrintScoreResult(resp.Result)
	printer.PrintIssues(resp.Result.Issues)
	printer.PrintStrengths(resp.Result.Strengths)
	if verbose {
		printer.PrintFacts(resp.Facts)
	}
}
