package services

import (
	"fmt"
	"strings"
)

// Match tier cutoffs, applied to the similarity percentage.
const (
	strongMatchMin   = 75.0
	moderateMatchMin = 50.0
)

type SummaryBuilder struct{}

func NewSummaryBuilder() *SummaryBuilder {
	return &SummaryBuilder{}
}

// BuildMatchSummary renders the human-readable verdict stored alongside
// a completed match evaluation.
func (sb *SummaryBuilder) BuildMatchSummary(jobTitle string, matchPercent float64, sentiment *SentimentResult) string {
	var parts []string

	parts = append(parts, fmt.Sprintf(
		"Resume scored %.2f%% against the %s description (%s).",
		matchPercent, jobTitle, matchTierFor(matchPercent),
	))

	switch {
	case matchPercent >= strongMatchMin:
		parts = append(parts, "The candidate covers most of the required vocabulary and should proceed to interview.")
	case matchPercent >= moderateMatchMin:
		parts = append(parts, "The candidate covers part of the required vocabulary; review the gaps before proceeding.")
	default:
		parts = append(parts, "The candidate shares little vocabulary with the role; consider other applicants first.")
	}

	if sentiment != nil {
		parts = append(parts, fmt.Sprintf(
			"Interview notes read as %s (compound score %.4f).",
			strings.ToLower(string(sentiment.Label)), sentiment.Score,
		))
	}

	return strings.Join(parts, " ")
}

func matchTierFor(matchPercent float64) string {
	switch {
	case matchPercent >= strongMatchMin:
		return "strong match"
	case matchPercent >= moderateMatchMin:
		return "moderate match"
	default:
		return "weak match"
	}
}
