// Package types provides type definitions for structured data used throughout the skill gap analyzer.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Status classifies how well a required skill is covered by the resume.
type Status string

const (
	// StatusPresent means the resume shows strong evidence for the skill.
	StatusPresent Status = "present"
	// StatusWeak means the resume mentions the skill but the evidence is thin.
	StatusWeak Status = "weak"
	// StatusMissing means the resume shows no usable evidence for the skill.
	StatusMissing Status = "missing"
)

// EvidenceRecord captures how one skill term showed up in one document.
type EvidenceRecord struct {
	Skill       string  `json:"skill"`
	Occurrences int     `json:"occurrences"`
	BestScore   float64 `json:"best_score"`
}

// ComparisonEntry is the per-skill comparison between the job description
// and the resume. Evidence holds up to five resume lines, in document order.
type ComparisonEntry struct {
	Skill             string   `json:"skill"`
	Status            Status   `json:"status"`
	JDBestScore       float64  `json:"jd_best_score"`
	ResumeBestScore   float64  `json:"resume_best_score"`
	ResumeOccurrences int      `json:"resume_occurrences"`
	Evidence          []string `json:"evidence"`
}

// GapSummary aggregates the comparison into headline numbers.
// GapScorePercent is 0 for full coverage and 100 for none.
type GapSummary struct {
	TotalRequired   int     `json:"total_required"`
	Present         int     `json:"present"`
	Weak            int     `json:"weak"`
	Missing         int     `json:"missing"`
	GapScorePercent float64 `json:"gap_score_percent"`
}

// Report is the full analysis result produced by the matching engine.
// Comparison is never nil; it marshals as an empty array when no skill
// passed the requirement filter.
type Report struct {
	Summary    GapSummary        `json:"summary"`
	Comparison []ComparisonEntry `json:"comparison"`
}

// VocabularyWarning is produced instead of a Report when the skill
// vocabulary is missing or empty. The snippets carry the first 500
// characters of each input so callers can confirm extraction worked.
type VocabularyWarning struct {
	Warning       string `json:"warning"`
	ResumeSnippet string `json:"resume_snippet"`
	JDSnippet     string `json:"jd_snippet"`
}

// Outcome wraps the two possible results of one analysis run. Exactly one
// of Report and Warning is non-nil.
type Outcome struct {
	Report  *Report
	Warning *VocabularyWarning
}
