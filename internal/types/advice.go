// Package types provides type definitions for structured data used throughout the skill gap analyzer.
//
//nolint:revive // types is a standard Go package name pattern
package types

// Advice is optional LLM-generated guidance on closing the detected gaps.
type Advice struct {
	Summary     string            `json:"summary"`
	Suggestions []SkillSuggestion `json:"suggestions"`
}

// SkillSuggestion is one concrete recommendation for a single skill that
// was classified weak or missing.
type SkillSuggestion struct {
	Skill      string `json:"skill"`
	Status     Status `json:"status"`
	Suggestion string `json:"suggestion"`
}
