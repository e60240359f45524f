// Package main provides the entry point for the Skill Gap Analyzer HTTP API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// defaultSkillsSource is used when neither flags, environment, nor config
// file name a vocabulary location.
const defaultSkillsSource = "skills.csv"

var rootCmd = &cobra.Command{
	Use:   "skillgap_api",
	Short: "Skill Gap Analyzer HTTP API Server",
	Long:  "Skill Gap Analyzer compares candidate resumes against job descriptions, classifies skill coverage, and serves gap reports with optional improvement advice via REST API.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// resolveSkillsSource picks the vocabulary location from the flag, the
// SKILLS_SOURCE environment variable, or the default, in that order.
func resolveSkillsSource(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if env := os.Getenv("SKILLS_SOURCE"); env != "" {
		return env
	}
	return defaultSkillsSource
}
