// Package matching implements the resume to job description comparison
// engine: evidence lookup, requirement filtering, classification, and gap
// scoring.
package matching

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/daniel/skillgap-analyzer/internal/types"
)

// maxEvidenceLines caps how many supporting resume lines a single
// comparison entry carries.
const maxEvidenceLines = 5

// FilterRequired keeps the evidence records the job description meaningfully
// mentions: at least one literal occurrence, or a fuzzy score at or above the
// weak threshold. Input order is preserved.
func (e *Engine) FilterRequired(records []types.EvidenceRecord) []types.EvidenceRecord {
	required := make([]types.EvidenceRecord, 0, len(records))
	for _, rec := range records {
		if rec.Occurrences > 0 || rec.BestScore >= e.cfg.WeakThreshold {
			required = append(required, rec)
		}
	}
	return required
}

// Classify builds one ComparisonEntry per required skill. Resume evidence is
// looked up by lower-cased skill name; an absent entry counts as zero
// occurrences with a zero score. The present check runs before the weak
// check, which decides the boundary where both conditions hold.
func (e *Engine) Classify(required []types.EvidenceRecord, resumeText string, resumeEvidence map[string]types.EvidenceRecord) []types.ComparisonEntry {
	entries := make([]types.ComparisonEntry, 0, len(required))
	for _, jdRec := range required {
		resumeRec := resumeEvidence[strings.ToLower(jdRec.Skill)]

		var status types.Status
		switch {
		case resumeRec.BestScore >= e.cfg.StrongThreshold || resumeRec.Occurrences >= e.cfg.MinStrongOccurrences:
			status = types.StatusPresent
		case resumeRec.BestScore >= e.cfg.WeakThreshold || resumeRec.Occurrences == 1:
			status = types.StatusWeak
		default:
			status = types.StatusMissing
		}

		entries = append(entries, types.ComparisonEntry{
			Skill:             jdRec.Skill,
			Status:            status,
			JDBestScore:       jdRec.BestScore,
			ResumeBestScore:   resumeRec.BestScore,
			ResumeOccurrences: resumeRec.Occurrences,
			Evidence:          e.gatherEvidence(jdRec.Skill, resumeText),
		})
	}
	return entries
}

// gatherEvidence collects up to maxEvidenceLines resume lines that mention
// the skill, either literally or with a fuzzy score at or above the weak
// threshold. Lines are trimmed and kept in document order.
func (e *Engine) gatherEvidence(skill, resumeText string) []string {
	lines := make([]string, 0, maxEvidenceLines)
	skillLow := strings.ToLower(skill)
	for _, line := range strings.Split(resumeText, "\n") {
		lineLow := strings.ToLower(line)
		if strings.Contains(lineLow, skillLow) || float64(fuzzy.TokenSetRatio(skillLow, lineLow)) >= e.cfg.WeakThreshold {
			lines = append(lines, strings.TrimSpace(line))
			if len(lines) >= maxEvidenceLines {
				break
			}
		}
	}
	return lines
}
