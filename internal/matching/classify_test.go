package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/daniel/skillgap-analyzer/internal/types"
)

func TestFilterRequired_DropsUnmentionedSkills(t *testing.T) {
	engine := New(DefaultConfig())
	records := []types.EvidenceRecord{
		{Skill: "Go", Occurrences: 1, BestScore: 0},
		{Skill: "Rust", Occurrences: 0, BestScore: 59.9},
		{Skill: "SQL", Occurrences: 0, BestScore: 60},
	}

	required := engine.FilterRequired(records)

	assert.Len(t, required, 2)
	assert.Equal(t, "Go", required[0].Skill)
	assert.Equal(t, "SQL", required[1].Skill)
}

func TestFilterRequired_CustomWeakThreshold(t *testing.T) {
	engine := New(Config{WeakThreshold: 50, StrongThreshold: 80, MinStrongOccurrences: 2})
	records := []types.EvidenceRecord{
		{Skill: "Rust", Occurrences: 0, BestScore: 55},
	}

	required := engine.FilterRequired(records)

	assert.Len(t, required, 1)
}

func TestClassify_PresentByScore(t *testing.T) {
	engine := New(DefaultConfig())
	required := []types.EvidenceRecord{{Skill: "Python", Occurrences: 1, BestScore: 100}}
	resumeEvidence := map[string]types.EvidenceRecord{
		"python": {Skill: "Python", Occurrences: 0, BestScore: 80},
	}

	entries := engine.Classify(required, "", resumeEvidence)

	assert.Len(t, entries, 1)
	assert.Equal(t, types.StatusPresent, entries[0].Status)
	assert.InDelta(t, 80.0, entries[0].ResumeBestScore, 0.001)
	assert.InDelta(t, 100.0, entries[0].JDBestScore, 0.001)
}

func TestClassify_PresentByOccurrences(t *testing.T) {
	engine := New(DefaultConfig())
	required := []types.EvidenceRecord{{Skill: "Python", Occurrences: 1, BestScore: 100}}
	resumeEvidence := map[string]types.EvidenceRecord{
		"python": {Skill: "Python", Occurrences: 2, BestScore: 0},
	}

	entries := engine.Classify(required, "", resumeEvidence)

	assert.Equal(t, types.StatusPresent, entries[0].Status)
}

func TestClassify_PresentBeatsWeakWhenBothApply(t *testing.T) {
	engine := New(DefaultConfig())
	required := []types.EvidenceRecord{{Skill: "Python", Occurrences: 1, BestScore: 100}}
	// High score satisfies present, single occurrence satisfies weak;
	// present wins because it is checked first.
	resumeEvidence := map[string]types.EvidenceRecord{
		"python": {Skill: "Python", Occurrences: 1, BestScore: 85},
	}

	entries := engine.Classify(required, "", resumeEvidence)

	assert.Equal(t, types.StatusPresent, entries[0].Status)
}

func TestClassify_WeakByScoreBoundary(t *testing.T) {
	engine := New(DefaultConfig())
	required := []types.EvidenceRecord{{Skill: "Python", Occurrences: 1, BestScore: 100}}
	resumeEvidence := map[string]types.EvidenceRecord{
		"python": {Skill: "Python", Occurrences: 0, BestScore: 60},
	}

	entries := engine.Classify(required, "", resumeEvidence)

	assert.Equal(t, types.StatusWeak, entries[0].Status)
}

func TestClassify_WeakBySingleOccurrence(t *testing.T) {
	engine := New(DefaultConfig())
	required := []types.EvidenceRecord{{Skill: "Python", Occurrences: 1, BestScore: 100}}
	resumeEvidence := map[string]types.EvidenceRecord{
		"python": {Skill: "Python", Occurrences: 1, BestScore: 10},
	}

	entries := engine.Classify(required, "", resumeEvidence)

	assert.Equal(t, types.StatusWeak, entries[0].Status)
}

func TestClassify_MissingWhenAbsentFromResume(t *testing.T) {
	engine := New(DefaultConfig())
	required := []types.EvidenceRecord{{Skill: "Kubernetes", Occurrences: 1, BestScore: 100}}
	resumeText := "Led a bakery team\nMade bread daily"

	entries := engine.Classify(required, resumeText, map[string]types.EvidenceRecord{})

	assert.Equal(t, types.StatusMissing, entries[0].Status)
	assert.Equal(t, 0, entries[0].ResumeOccurrences)
	assert.InDelta(t, 0.0, entries[0].ResumeBestScore, 0.001)
	assert.NotNil(t, entries[0].Evidence)
	assert.Empty(t, entries[0].Evidence)
}

func TestClassify_LookupIsCaseInsensitive(t *testing.T) {
	engine := New(DefaultConfig())
	required := []types.EvidenceRecord{{Skill: "PYTHON", Occurrences: 1, BestScore: 100}}
	resumeEvidence := map[string]types.EvidenceRecord{
		"python": {Skill: "python", Occurrences: 2, BestScore: 100},
	}

	entries := engine.Classify(required, "", resumeEvidence)

	assert.Equal(t, types.StatusPresent, entries[0].Status)
	// the entry carries the required skill's original casing
	assert.Equal(t, "PYTHON", entries[0].Skill)
}

func TestClassify_EvidenceCappedAtFiveInDocumentOrder(t *testing.T) {
	engine := New(DefaultConfig())
	required := []types.EvidenceRecord{{Skill: "Go", Occurrences: 1, BestScore: 100}}
	resumeText := "  Go line one  \nGo line two\nGo line three\nGo line four\nGo line five\nGo line six\nGo line seven"
	resumeEvidence := map[string]types.EvidenceRecord{
		"go": {Skill: "Go", Occurrences: 7, BestScore: 100},
	}

	entries := engine.Classify(required, resumeText, resumeEvidence)

	assert.Len(t, entries[0].Evidence, 5)
	assert.Equal(t, "Go line one", entries[0].Evidence[0])
	assert.Equal(t, "Go line five", entries[0].Evidence[4])
}

func TestClassify_Idempotent(t *testing.T) {
	engine := New(DefaultConfig())
	required := []types.EvidenceRecord{
		{Skill: "Go", Occurrences: 2, BestScore: 100},
		{Skill: "SQL", Occurrences: 1, BestScore: 70},
	}
	resumeText := "Go and SQL services\nMore Go work"
	resumeEvidence := map[string]types.EvidenceRecord{
		"go":  {Skill: "Go", Occurrences: 2, BestScore: 100},
		"sql": {Skill: "SQL", Occurrences: 1, BestScore: 100},
	}

	first := engine.Classify(required, resumeText, resumeEvidence)
	second := engine.Classify(required, resumeText, resumeEvidence)

	assert.Equal(t, first, second)
}
