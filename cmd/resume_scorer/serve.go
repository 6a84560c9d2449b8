package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/JoHn11117/resume-scorer/internal/config"
	"github.com/JoHn11117/resume-scorer/internal/engine"
	"github.com/JoHn11117/resume-scorer/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for scoring resumes and editing them in sessions.`,
	RunE:  runServe,
}

var (
	serveAddr       string
	serveDBURL      string
	serveConfigPath string
)

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (default :8080)")
	serveCmd.Flags().StringVar(&serveDBURL, "db-url", "", "PostgreSQL connection URL for session persistence (optional, defaults to DATABASE_URL env var)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	var cfg config.Config
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loaded.Validate(); err != nil {
			return err
		}
		cfg = *loaded
	}

	if cmd.Flags().Changed("addr") {
		cfg.ListenAddr = serveAddr
	}
	if cmd.Flags().Changed("db-url") {
		cfg.DatabaseURL = serveDBURL
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":8080"
	}

	eng, err := engine.New(cfg.EngineOptions())
	if err != nil {
		return fmt.Errorf("failed to initialize engine: %w", err)
	}

	srv, err := server.New(server.Config{
		Addr:        cfg.ListenAddr,
		DatabaseURL: cfg.DatabaseURL,
	}, eng)
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
