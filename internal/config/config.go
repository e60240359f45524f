// Package config provides configuration loading and validation for the
// analyzer service.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the service configuration that can be loaded from a
// JSON file. All fields are optional; missing values use defaults or can be
// provided via environment variables and CLI flags.
type Config struct {
	// Server
	Port string `json:"port,omitempty"` // HTTP listen port

	// Vocabulary
	SkillsSource string `json:"skills_source,omitempty"` // CSV path or postgres:// connection string

	// Classification thresholds
	WeakThreshold        float64 `json:"weak_threshold,omitempty" validate:"gte=0,lte=100"`         // Minimum fuzzy score counted as a weak match
	StrongThreshold      float64 `json:"strong_threshold,omitempty" validate:"gte=0,lte=100"`       // Minimum fuzzy score counted as a present match
	MinStrongOccurrences int     `json:"min_strong_occurrences,omitempty" validate:"gte=0,lte=100"` // Occurrence count that makes a skill present

	// Advice
	GeminiAPIKey string `json:"gemini_api_key,omitempty"` // Enables LLM gap advice when set
	GeminiModel  string `json:"gemini_model,omitempty"`   // Model name override

	// Logging
	Debug   bool `json:"debug,omitempty"`    // Lower log level to debug
	JSONLog bool `json:"json_log,omitempty"` // Structured JSON log encoding
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
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

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.StrongThreshold > 0 && c.WeakThreshold > c.StrongThreshold {
		return fmt.Errorf("config error: 'weak_threshold' must not exceed 'strong_threshold'")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled
// from defaults. This is used to apply config file values as defaults for
// environment variables and CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Port == "" {
		result.Port = defaults.Port
	}
	if result.SkillsSource == "" {
		result.SkillsSource = defaults.SkillsSource
	}
	if result.WeakThreshold == 0 {
		result.WeakThreshold = defaults.WeakThreshold
	}
	if result.StrongThreshold == 0 {
		result.StrongThreshold = defaults.StrongThreshold
	}
	if result.MinStrongOccurrences == 0 {
		result.MinStrongOccurrences = defaults.MinStrongOccurrences
	}
	if result.GeminiAPIKey == "" {
		result.GeminiAPIKey = defaults.GeminiAPIKey
	}
	if result.GeminiModel == "" {
		result.GeminiModel = defaults.GeminiModel
	}
	if !result.Debug {
		result.Debug = defaults.Debug
	}
	if !result.JSONLog {
		result.JSONLog = defaults.JSONLog
	}

	return result
}
