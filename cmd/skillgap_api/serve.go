package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daniel/skillgap-analyzer/internal/config"
	"github.com/daniel/skillgap-analyzer/internal/logger"
	"github.com/daniel/skillgap-analyzer/internal/server"
)

var (
	servePort       string
	serveSkills     string
	serveConfigFile string
	serveDebug      bool
	serveJSONLog    bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for resume versus job description gap analysis.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (overrides PORT)")
	serveCmd.Flags().StringVar(&serveSkills, "skills", "", "Skill vocabulary source: CSV path or postgres:// URL (overrides SKILLS_SOURCE)")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to JSON config file")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug logging")
	serveCmd.Flags().BoolVar(&serveJSONLog, "json-log", false, "Emit logs as JSON")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := loadServeConfig()
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.JSONLog, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	srv, err := server.New(server.Config{
		Port:                 cfg.Port,
		SkillsSource:         cfg.SkillsSource,
		WeakThreshold:        cfg.WeakThreshold,
		StrongThreshold:      cfg.StrongThreshold,
		MinStrongOccurrences: cfg.MinStrongOccurrences,
		GeminiAPIKey:         cfg.GeminiAPIKey,
		GeminiModel:          cfg.GeminiModel,
		Logger:               log,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}

// loadServeConfig layers flags over environment variables over the config
// file over built-in defaults.
func loadServeConfig() (config.Config, error) {
	cfg := config.Config{
		Port:         servePort,
		SkillsSource: serveSkills,
		Debug:        serveDebug,
		JSONLog:      serveJSONLog,
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Port:         os.Getenv("PORT"),
		SkillsSource: os.Getenv("SKILLS_SOURCE"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),
	})

	if serveConfigFile != "" {
		fileCfg, err := config.LoadConfig(serveConfigFile)
		if err != nil {
			return config.Config{}, err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		Port:         "8080",
		SkillsSource: defaultSkillsSource,
	})

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
