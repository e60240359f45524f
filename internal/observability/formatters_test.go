package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daniel/skillgap-analyzer/internal/types"
)

func TestPrintReport(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.Report{
		Summary: types.GapSummary{
			TotalRequired:   3,
			Present:         1,
			Weak:            1,
			Missing:         1,
			GapScorePercent: 50.0,
		},
		Comparison: []types.ComparisonEntry{
			{Skill: "Go", Status: types.StatusPresent, ResumeBestScore: 100, ResumeOccurrences: 3},
			{Skill: "Docker", Status: types.StatusWeak, ResumeBestScore: 65, ResumeOccurrences: 1},
			{Skill: "Kubernetes", Status: types.StatusMissing},
		},
	}

	p.PrintReport(report)
	output := buf.String()

	assert.Contains(t, output, "GAP ANALYSIS")
	assert.Contains(t, output, "50.0%")
	assert.Contains(t, output, "+ Go (present")
	assert.Contains(t, output, "~ Docker (weak")
	assert.Contains(t, output, "x Kubernetes (missing)")
	assert.Contains(t, output, "3x in resume")
}

func TestPrintReport_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintReport(nil)

	assert.Empty(t, buf.String())
}

func TestPrintReport_TruncatesLongComparison(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.Report{Summary: types.GapSummary{TotalRequired: 8, Missing: 8, GapScorePercent: 100}}
	for _, skill := range []string{"A", "B", "C", "D", "E", "F", "G", "H"} {
		report.Comparison = append(report.Comparison, types.ComparisonEntry{Skill: skill, Status: types.StatusMissing})
	}

	p.PrintReport(report)

	assert.Contains(t, buf.String(), "... and 3 more skills")
}

func TestPrintAdvice(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	advice := &types.Advice{
		Summary: "Two gaps worth closing.",
		Suggestions: []types.SkillSuggestion{
			{Skill: "Docker", Status: types.StatusWeak, Suggestion: "Surface the CI containerization work."},
			{Skill: "Kubernetes", Status: types.StatusMissing, Suggestion: "Deploy a side project to a managed cluster."},
		},
	}

	p.PrintAdvice(advice)
	output := buf.String()

	assert.Contains(t, output, "IMPROVEMENT ADVICE")
	assert.Contains(t, output, "Two gaps worth closing.")
	assert.Contains(t, output, "Docker (weak)")
	assert.Contains(t, output, "Kubernetes (missing)")
}

func TestPrintAdvice_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintAdvice(nil)
	p.PrintAdvice(&types.Advice{Summary: "nothing to do"})

	assert.Empty(t, buf.String())
}

func TestPrintWarning(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintWarning(&types.VocabularyWarning{
		Warning:       "skill vocabulary not found or empty",
		ResumeSnippet: "Go developer.",
		JDSnippet:     "Go required.",
	})
	output := buf.String()

	assert.Contains(t, output, "VOCABULARY WARNING")
	assert.Contains(t, output, "Resume preview: Go developer.")
	assert.Contains(t, output, "JD preview:     Go required.")
}

func TestPrintWarning_TruncatesPreviews(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintWarning(&types.VocabularyWarning{
		Warning:       "skill vocabulary not found or empty",
		ResumeSnippet: strings.Repeat("a", 80),
		JDSnippet:     "short",
	})

	assert.Contains(t, buf.String(), "...")
}
