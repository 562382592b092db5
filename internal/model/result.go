// Package model defines the core domain types shared across the application.
package model

// Letters is the fixed RIASEC alphabet, in tie-break order. Every score
// vector has exactly one entry per letter.
const Letters = "RIASEC"

// Scoring weights applied per indicator tier.
const (
	StrongWeight   = 3.0
	ModerateWeight = 1.5
	KeywordWeight  = 1.0
	TitleBonus     = 2.0
)

// Result is an immutable classification of one skills/title input.
type Result struct {
	Scores            map[string]float64  `json:"scores"`
	MatchedIndicators map[string][]string `json:"matched_indicators"`
	Code              string              `json:"riasec_code"`
	PrimaryType       string              `json:"primary_type"`
	Description       string              `json:"description"`
	Gift              string              `json:"gift"`
	Confidence        float64             `json:"confidence"`
	TotalScore        float64             `json:"total_score"`
}

// CodeInfo describes a 3-letter combination for the orchestration layer.
type CodeInfo struct {
	Code         string        `json:"riasec_code"`
	Description  string        `json:"description"`
	Gift         string        `json:"gift"`
	CareerThemes []string      `json:"career_themes"`
	Types        []TypeSummary `json:"types_breakdown"`
}

// TypeSummary is the per-letter breakdown entry of a CodeInfo.
type TypeSummary struct {
	Letter string `json:"letter"`
	Name   string `json:"name"`
	Title  string `json:"title"`
}

// ValidCode reports whether code is exactly 3 letters from the alphabet.
func ValidCode(code string) bool {
	if len(code) != 3 {
		return false
	}
	for _, r := range code {
		found := false
		for _, l := range Letters {
			if r == l {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
