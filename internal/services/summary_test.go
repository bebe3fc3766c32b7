package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildMatchSummaryTiers(t *testing.T) {
	builder := NewSummaryBuilder()

	tests := []struct {
		name         string
		matchPercent float64
		expectedTier string
	}{
		{name: "strong match", matchPercent: 82.5, expectedTier: "strong match"},
		{name: "strong match at cutoff", matchPercent: 75.0, expectedTier: "strong match"},
		{name: "moderate match", matchPercent: 60.0, expectedTier: "moderate match"},
		{name: "moderate match at cutoff", matchPercent: 50.0, expectedTier: "moderate match"},
		{name: "weak match", matchPercent: 12.34, expectedTier: "weak match"},
		{name: "zero score", matchPercent: 0.0, expectedTier: "weak match"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			summary := builder.BuildMatchSummary("Backend Engineer", tt.matchPercent, nil)

			assert.Contains(t, summary, tt.expectedTier)
			assert.Contains(t, summary, "Backend Engineer")
		})
	}
}

func TestBuildMatchSummaryIncludesScore(t *testing.T) {
	builder := NewSummaryBuilder()

	summary := builder.BuildMatchSummary("Data Analyst", 67.89, nil)

	assert.Contains(t, summary, "67.89%")
}

func TestBuildMatchSummaryWithSentiment(t *testing.T) {
	builder := NewSummaryBuilder()
	sentiment := &SentimentResult{Score: 0.8316, Label: SentimentPositive}

	summary := builder.BuildMatchSummary("Backend Engineer", 80.0, sentiment)

	assert.Contains(t, summary, "Interview notes read as positive")
	assert.Contains(t, summary, "0.8316")
}

func TestBuildMatchSummaryWithoutSentiment(t *testing.T) {
	builder := NewSummaryBuilder()

	summary := builder.BuildMatchSummary("Backend Engineer", 80.0, nil)

	assert.NotContains(t, summary, "Interview notes")
}
