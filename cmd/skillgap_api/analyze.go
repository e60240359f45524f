package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/daniel/skillgap-analyzer/internal/advice"
	"github.com/daniel/skillgap-analyzer/internal/extraction"
	"github.com/daniel/skillgap-analyzer/internal/matching"
	"github.com/daniel/skillgap-analyzer/internal/observability"
	"github.com/daniel/skillgap-analyzer/internal/types"
	"github.com/daniel/skillgap-analyzer/internal/vocab"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compare a resume against a job description",
	Long:  "Extract text from a resume and a job description, compare them against the skill vocabulary, and print the gap report as JSON.",
	RunE:  runAnalyze,
}

var (
	analyzeResumePath string
	analyzeJobPath    string
	analyzeSkillsFlag string
	analyzeOutputFile string
	analyzeWithAdvice bool
	analyzeVerbose    bool
	analyzeWeak       float64
	analyzeStrong     float64
	analyzeMinOcc     int
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResumePath, "resume", "r", "", "Path to the resume file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJobPath, "jd", "j", "", "Path to the job description file (required)")
	analyzeCmd.Flags().StringVar(&analyzeSkillsFlag, "skills", "", "Skill vocabulary source: CSV path or postgres:// URL (overrides SKILLS_SOURCE)")
	analyzeCmd.Flags().StringVarP(&analyzeOutputFile, "out", "o", "", "Path to output JSON file (default: stdout)")
	analyzeCmd.Flags().BoolVar(&analyzeWithAdvice, "advice", false, "Generate improvement advice (requires GEMINI_API_KEY)")
	analyzeCmd.Flags().BoolVarP(&analyzeVerbose, "verbose", "v", false, "Print formatted summaries to stderr")
	analyzeCmd.Flags().Float64Var(&analyzeWeak, "weak-threshold", 0, "Minimum fuzzy score for a weak match (default 60)")
	analyzeCmd.Flags().Float64Var(&analyzeStrong, "strong-threshold", 0, "Minimum fuzzy score for a present match (default 80)")
	analyzeCmd.Flags().IntVar(&analyzeMinOcc, "min-strong-occurrences", 0, "Occurrence count that makes a skill present (default 2)")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	if analyzeResumePath == "" || analyzeJobPath == "" {
		return fmt.Errorf("both --resume and --jd are required")
	}

	ctx := context.Background()

	resumeText, err := extractFile(analyzeResumePath)
	if err != nil {
		return err
	}
	jobText, err := extractFile(analyzeJobPath)
	if err != nil {
		return err
	}

	source, err := vocab.NewSource(ctx, resolveSkillsSource(analyzeSkillsFlag))
	if err != nil {
		return fmt.Errorf("failed to open skills source: %w", err)
	}
	if closer, ok := source.(interface{ Close() }); ok {
		defer closer.Close()
	}

	vocabulary, err := source.Load(ctx)
	if err != nil {
		return fmt.Errorf("failed to load skill vocabulary: %w", err)
	}

	engine := matching.New(matching.Config{
		WeakThreshold:        analyzeWeak,
		StrongThreshold:      analyzeStrong,
		MinStrongOccurrences: analyzeMinOcc,
	})
	outcome := engine.Analyze(resumeText, jobText, vocabulary)

	// Verbose summaries go to stderr so stdout stays machine-readable.
	printer := observability.NewPrinter(os.Stderr)

	var payload any
	switch {
	case outcome.Warning != nil:
		if analyzeVerbose {
			printer.PrintWarning(outcome.Warning)
		}
		payload = outcome.Warning
	case analyzeWithAdvice:
		suggestions, err := generateAdvice(ctx, outcome.Report)
		if err != nil {
			return err
		}
		if analyzeVerbose {
			printer.PrintReport(outcome.Report)
			printer.PrintAdvice(suggestions)
		}
		payload = struct {
			*types.Report
			Advice *types.Advice `json:"advice,omitempty"`
		}{outcome.Report, suggestions}
	default:
		if analyzeVerbose {
			printer.PrintReport(outcome.Report)
		}
		payload = outcome.Report
	}

	jsonBytes, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if analyzeOutputFile != "" {
		if err := os.WriteFile(analyzeOutputFile, jsonBytes, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", analyzeOutputFile)
		return nil
	}

	_, _ = fmt.Fprintln(os.Stdout, string(jsonBytes))
	return nil
}

// extractFile reads a document from disk and converts it to plain text.
func extractFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	text, err := extraction.ExtractText(path, data)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from %s: %w", path, err)
	}
	return text, nil
}

// generateAdvice runs the Gemini advisor over the report's gaps.
func generateAdvice(ctx context.Context, report *types.Report) (*types.Advice, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY environment variable is required with --advice")
	}

	generator, err := advice.NewGeminiGenerator(ctx, apiKey, os.Getenv("GEMINI_MODEL"))
	if err != nil {
		return nil, fmt.Errorf("failed to create advice generator: %w", err)
	}
	defer func() { _ = generator.Close() }()

	suggestions, err := advice.NewAdvisor(generator).Suggest(ctx, report)
	if err != nil {
		return nil, fmt.Errorf("failed to generate advice: %w", err)
	}
	return suggestions, nil
}
