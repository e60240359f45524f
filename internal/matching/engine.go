// Package matching implements the resume to job description comparison
// engine: evidence lookup, requirement filtering, classification, and gap
// scoring.
package matching

import (
	"strings"

	"github.com/daniel/skillgap-analyzer/internal/types"
)

// Default classification thresholds
const (
	defaultWeakThreshold        = 60
	defaultStrongThreshold      = 80
	defaultMinStrongOccurrences = 2
)

// snippetLimit bounds the text previews returned with a vocabulary warning.
const snippetLimit = 500

// Config holds the classification thresholds. Thresholds are fixed at
// construction time; they are not tunable per request.
type Config struct {
	// WeakThreshold is the minimum fuzzy score for a weak match, and for a
	// resume line to qualify as evidence.
	WeakThreshold float64
	// StrongThreshold is the minimum fuzzy score for a present match.
	StrongThreshold float64
	// MinStrongOccurrences is the literal occurrence count that makes a
	// skill present regardless of fuzzy score.
	MinStrongOccurrences int
}

// DefaultConfig returns the stock thresholds.
func DefaultConfig() Config {
	return Config{
		WeakThreshold:        defaultWeakThreshold,
		StrongThreshold:      defaultStrongThreshold,
		MinStrongOccurrences: defaultMinStrongOccurrences,
	}
}

// Engine runs the full comparison pipeline. It holds no mutable state, so a
// single Engine is safe for concurrent use.
type Engine struct {
	cfg Config
}

// New creates an Engine with the given thresholds. Zero or negative
// threshold values fall back to the defaults.
func New(cfg Config) *Engine {
	if cfg.WeakThreshold <= 0 {
		cfg.WeakThreshold = defaultWeakThreshold
	}
	if cfg.StrongThreshold <= 0 {
		cfg.StrongThreshold = defaultStrongThreshold
	}
	if cfg.MinStrongOccurrences <= 0 {
		cfg.MinStrongOccurrences = defaultMinStrongOccurrences
	}
	return &Engine{cfg: cfg}
}

// Analyze runs the full pipeline over both documents: evidence extraction,
// requirement filtering, classification, and scoring. An empty vocabulary
// short-circuits to a warning outcome carrying previews of the extracted
// text, so callers can confirm extraction itself worked.
func (e *Engine) Analyze(resumeText, jobText string, vocabulary []string) *types.Outcome {
	if len(vocabulary) == 0 {
		return &types.Outcome{
			Warning: &types.VocabularyWarning{
				Warning:       "skill vocabulary not found or empty",
				ResumeSnippet: snippet(resumeText),
				JDSnippet:     snippet(jobText),
			},
		}
	}

	jdRecords := ExtractEvidence(jobText, vocabulary)
	required := e.FilterRequired(jdRecords)

	resumeRecords := ExtractEvidence(resumeText, vocabulary)
	resumeByName := make(map[string]types.EvidenceRecord, len(resumeRecords))
	for _, rec := range resumeRecords {
		// later duplicates overwrite earlier ones
		resumeByName[strings.ToLower(rec.Skill)] = rec
	}

	comparison := e.Classify(required, resumeText, resumeByName)

	return &types.Outcome{
		Report: &types.Report{
			Summary:    Score(comparison),
			Comparison: comparison,
		},
	}
}

// snippet returns the first snippetLimit characters of text.
func snippet(text string) string {
	runes := []rune(text)
	if len(runes) <= snippetLimit {
		return text
	}
	return string(runes[:snippetLimit])
}
