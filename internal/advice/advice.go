// Package advice generates LLM-backed suggestions for closing the skill
// gaps a report identified. Advice is optional; the analyzer works fully
// without it.
package advice

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/daniel/skillgap-analyzer/internal/schemas"
	"github.com/daniel/skillgap-analyzer/internal/types"
)

// Generator produces structured JSON text from a prompt.
type Generator interface {
	// GenerateJSON sends the prompt and returns the response body with any
	// markdown wrappers removed.
	GenerateJSON(ctx context.Context, prompt string) (string, error)
	// Close releases any resources held by the generator
	Close() error
}

// Advisor turns a finished gap report into improvement suggestions.
type Advisor struct {
	generator Generator
}

// NewAdvisor creates an Advisor. A nil generator disables advice
// generation; Suggest then reports no advice rather than failing.
func NewAdvisor(generator Generator) *Advisor {
	return &Advisor{generator: generator}
}

// Suggest asks the generator for advice on the report's weak and missing
// skills. Returns (nil, nil) when advice is disabled or the report shows
// full coverage.
func (a *Advisor) Suggest(ctx context.Context, report *types.Report) (*types.Advice, error) {
	if a == nil || a.generator == nil || report == nil {
		return nil, nil
	}

	gaps := collectGaps(report)
	if len(gaps) == 0 {
		return nil, nil
	}

	prompt, err := buildPrompt(report, gaps)
	if err != nil {
		return nil, fmt.Errorf("failed to build advice prompt: %w", err)
	}

	raw, err := a.generator.GenerateJSON(ctx, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate advice: %w", err)
	}

	if err := schemas.ValidateAdvice(raw); err != nil {
		return nil, fmt.Errorf("failed to validate advice JSON: %w", err)
	}

	var advice types.Advice
	if err := json.Unmarshal([]byte(raw), &advice); err != nil {
		return nil, fmt.Errorf("failed to parse advice JSON: %w", err)
	}

	// Keep only suggestions for skills the report actually flagged, and
	// take the status from the report, not the model.
	advice.Suggestions = alignSuggestions(advice.Suggestions, gaps)

	return &advice, nil
}

// collectGaps returns the report entries classified weak or missing, in
// report order.
func collectGaps(report *types.Report) []types.ComparisonEntry {
	gaps := make([]types.ComparisonEntry, 0, len(report.Comparison))
	for _, entry := range report.Comparison {
		if entry.Status == types.StatusWeak || entry.Status == types.StatusMissing {
			gaps = append(gaps, entry)
		}
	}
	return gaps
}

func alignSuggestions(suggestions []types.SkillSuggestion, gaps []types.ComparisonEntry) []types.SkillSuggestion {
	statusBySkill := make(map[string]types.Status, len(gaps))
	for _, gap := range gaps {
		statusBySkill[strings.ToLower(gap.Skill)] = gap.Status
	}

	aligned := make([]types.SkillSuggestion, 0, len(suggestions))
	for _, s := range suggestions {
		status, ok := statusBySkill[strings.ToLower(s.Skill)]
		if !ok {
			continue
		}
		s.Status = status
		aligned = append(aligned, s)
	}
	return aligned
}
