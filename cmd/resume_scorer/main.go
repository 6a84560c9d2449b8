// Package main provides the entry point for the resume scorer CLI and server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "resume_scorer",
	Short: "ATS resume scoring engine",
	Long:  "Resume Scorer parses PDF, DOCX, and plain-text resumes and scores them either as an ATS simulation against a job description or as a quality coach against role expectations.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
