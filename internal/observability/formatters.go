// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/daniel/skillgap-analyzer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// statusMark returns the single-character indicator for a status.
func statusMark(status types.Status) string {
	switch status {
	case types.StatusPresent:
		return "+"
	case types.StatusWeak:
		return "~"
	default:
		return "x"
	}
}

// PrintReport outputs the gap summary and the per-skill classification.
func (p *Printer) PrintReport(report *types.Report) {
	if report == nil {
		return
	}

	var sb strings.Builder

	summary := report.Summary
	sb.WriteString(fmt.Sprintf("Required skills:  %d\n", summary.TotalRequired))
	sb.WriteString(fmt.Sprintf("Present:          %d\n", summary.Present))
	sb.WriteString(fmt.Sprintf("Weak:             %d\n", summary.Weak))
	sb.WriteString(fmt.Sprintf("Missing:          %d\n", summary.Missing))
	sb.WriteString(fmt.Sprintf("Gap score:        %.1f%%\n", summary.GapScorePercent))

	if len(report.Comparison) > 0 {
		sb.WriteString("\n")
		count := min(len(report.Comparison), maxItemsToShow)
		for i := 0; i < count; i++ {
			entry := report.Comparison[i]
			sb.WriteString(fmt.Sprintf("%s %s (%s", statusMark(entry.Status), entry.Skill, entry.Status))
			if entry.ResumeOccurrences > 0 || entry.ResumeBestScore > 0 {
				sb.WriteString(fmt.Sprintf(", score %.0f, %dx in resume", entry.ResumeBestScore, entry.ResumeOccurrences))
			}
			sb.WriteString(")\n")
		}
		if len(report.Comparison) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("... and %d more skills\n", len(report.Comparison)-maxItemsToShow))
		}
	}

	p.printBox("GAP ANALYSIS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintAdvice outputs generated improvement suggestions.
func (p *Printer) PrintAdvice(advice *types.Advice) {
	if advice == nil || len(advice.Suggestions) == 0 {
		return
	}

	var sb strings.Builder
	if advice.Summary != "" {
		sb.WriteString(advice.Summary)
		sb.WriteString("\n\n")
	}

	count := min(len(advice.Suggestions), maxItemsToShow)
	for i := 0; i < count; i++ {
		s := advice.Suggestions[i]
		sb.WriteString(fmt.Sprintf("%s (%s)\n", s.Skill, s.Status))
		suggestion := s.Suggestion
		if len(suggestion) > 50 {
			suggestion = suggestion[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("  %s\n", suggestion))
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(advice.Suggestions) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more suggestions", len(advice.Suggestions)-maxItemsToShow))
	}

	p.printBox("IMPROVEMENT ADVICE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintWarning outputs the degraded outcome produced when the vocabulary is
// empty, with previews of the extracted text.
func (p *Printer) PrintWarning(warning *types.VocabularyWarning) {
	if warning == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(warning.Warning)
	sb.WriteString("\n\n")

	resume := warning.ResumeSnippet
	if len(resume) > 50 {
		resume = resume[:47] + "..."
	}
	jd := warning.JDSnippet
	if len(jd) > 50 {
		jd = jd[:47] + "..."
	}
	sb.WriteString(fmt.Sprintf("Resume preview: %s\n", resume))
	sb.WriteString(fmt.Sprintf("JD preview:     %s", jd))

	p.printBox("VOCABULARY WARNING", sb.String())
}
