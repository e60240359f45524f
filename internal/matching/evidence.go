// Package matching implements the resume to job description comparison
// engine: evidence lookup, requirement filtering, classification, and gap
// scoring.
package matching

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"github.com/daniel/skillgap-analyzer/internal/types"
)

// FindEvidence reports how strongly a skill term shows up in a document.
// occurrences is the count of non-overlapping case-insensitive literal
// occurrences of skill in text. bestScore is the highest fuzzy token-set
// score (0-100) between the skill name and any single non-empty trimmed
// line of text. Empty skill or empty text yields (0, 0).
func FindEvidence(skill, text string) (int, float64) {
	if skill == "" || text == "" {
		return 0, 0
	}

	textLow := strings.ToLower(text)
	skillLow := strings.ToLower(skill)

	occurrences := strings.Count(textLow, skillLow)

	bestScore := 0
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		score := fuzzy.TokenSetRatio(skillLow, strings.ToLower(line))
		if score > bestScore {
			bestScore = score
		}
	}

	return occurrences, float64(bestScore)
}

// ExtractEvidence evaluates every vocabulary entry against text, producing
// one EvidenceRecord per entry in vocabulary order. Duplicate vocabulary
// entries produce duplicate records.
func ExtractEvidence(text string, vocabulary []string) []types.EvidenceRecord {
	records := make([]types.EvidenceRecord, 0, len(vocabulary))
	for _, skill := range vocabulary {
		occurrences, bestScore := FindEvidence(skill, text)
		records = append(records, types.EvidenceRecord{
			Skill:       skill,
			Occurrences: occurrences,
			BestScore:   bestScore,
		})
	}
	return records
}
