// Package matching implements the resume to job description comparison
// engine: evidence lookup, requirement filtering, classification, and gap
// scoring.
package matching

import (
	"math"

	"github.com/daniel/skillgap-analyzer/internal/types"
)

// Score aggregates comparison entries into a GapSummary. Present skills
// count fully toward coverage and weak skills count half. With no entries
// the gap is 100.0: nothing required was detected, so nothing is covered.
func Score(entries []types.ComparisonEntry) types.GapSummary {
	total := len(entries)

	present, weak, missing := 0, 0, 0
	for _, entry := range entries {
		switch entry.Status {
		case types.StatusPresent:
			present++
		case types.StatusWeak:
			weak++
		case types.StatusMissing:
			missing++
		}
	}

	covered := float64(present) + 0.5*float64(weak)
	gap := 100 * (1 - covered/float64(max(1, total)))
	gap = math.Round(gap*10) / 10

	return types.GapSummary{
		TotalRequired:   total,
		Present:         present,
		Weak:            weak,
		Missing:         missing,
		GapScorePercent: gap,
	}
}
