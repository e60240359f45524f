package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daniel/skillgap-analyzer/internal/types"
)

func TestScore_EmptyEntries(t *testing.T) {
	summary := Score(nil)

	assert.Equal(t, 0, summary.TotalRequired)
	assert.Equal(t, 0, summary.Present)
	assert.Equal(t, 0, summary.Weak)
	assert.Equal(t, 0, summary.Missing)
	// no detected requirements reports maximal gap
	assert.InDelta(t, 100.0, summary.GapScorePercent, 0.001)
}

func TestScore_CountsByStatus(t *testing.T) {
	entries := []types.ComparisonEntry{
		{Skill: "Go", Status: types.StatusPresent},
		{Skill: "SQL", Status: types.StatusWeak},
		{Skill: "Rust", Status: types.StatusMissing},
	}

	summary := Score(entries)

	assert.Equal(t, 3, summary.TotalRequired)
	assert.Equal(t, 1, summary.Present)
	assert.Equal(t, 1, summary.Weak)
	assert.Equal(t, 1, summary.Missing)
	// covered = 1 + 0.5 = 1.5 of 3
	assert.InDelta(t, 50.0, summary.GapScorePercent, 0.001)
}

func TestScore_FullCoverage(t *testing.T) {
	entries := []types.ComparisonEntry{
		{Skill: "Go", Status: types.StatusPresent},
		{Skill: "SQL", Status: types.StatusPresent},
	}

	summary := Score(entries)

	assert.InDelta(t, 0.0, summary.GapScorePercent, 0.001)
}

func TestScore_RoundsToOneDecimal(t *testing.T) {
	entries := []types.ComparisonEntry{
		{Skill: "Go", Status: types.StatusPresent},
		{Skill: "SQL", Status: types.StatusMissing},
		{Skill: "Rust", Status: types.StatusMissing},
	}

	summary := Score(entries)

	// 100 * (1 - 1/3) = 66.666... rounds to 66.7
	assert.InDelta(t, 66.7, summary.GapScorePercent, 0.001)
}

func TestScore_StaysWithinRange(t *testing.T) {
	allMissing := []types.ComparisonEntry{
		{Skill: "Go", Status: types.StatusMissing},
		{Skill: "SQL", Status: types.StatusMissing},
	}
	allPresent := []types.ComparisonEntry{
		{Skill: "Go", Status: types.StatusPresent},
	}

	assert.InDelta(t, 100.0, Score(allMissing).GapScorePercent, 0.001)
	assert.InDelta(t, 0.0, Score(allPresent).GapScorePercent, 0.001)
}
