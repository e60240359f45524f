// Package advice generates LLM-backed suggestions for closing the skill
// gaps a report identified. Advice is optional; the analyzer works fully
// without it.
package advice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/daniel/skillgap-analyzer/internal/prompts"
	"github.com/daniel/skillgap-analyzer/internal/types"
)

// buildPrompt renders the gap advice template for the report's gap entries.
func buildPrompt(report *types.Report, gaps []types.ComparisonEntry) (string, error) {
	template, err := prompts.Get("advice.json", "gap_advice")
	if err != nil {
		return "", err
	}

	lines := make([]string, 0, len(gaps))
	for _, gap := range gaps {
		lines = append(lines, fmt.Sprintf("- %s (%s)", gap.Skill, gap.Status))
	}

	summary := report.Summary
	return prompts.Format(template, map[string]string{
		"TotalRequired": strconv.Itoa(summary.TotalRequired),
		"Present":       strconv.Itoa(summary.Present),
		"Weak":          strconv.Itoa(summary.Weak),
		"Missing":       strconv.Itoa(summary.Missing),
		"GapScore":      strconv.FormatFloat(summary.GapScorePercent, 'f', 1, 64),
		"Gaps":          strings.Join(lines, "\n"),
	}), nil
}
