package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeTextEmptyInput(t *testing.T) {
	service := NewSentimentService()

	tests := []struct {
		name string
		text string
	}{
		{name: "empty string", text: ""},
		{name: "whitespace only", text: "   \n\t  "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := service.AnalyzeText(tt.text)

			assert.Equal(t, 0.0, result.Score)
			assert.Equal(t, SentimentNeutral, result.Label)
		})
	}
}

func TestAnalyzeTextPositive(t *testing.T) {
	service := NewSentimentService()

	result := service.AnalyzeText("I love this team, the work is excellent and I feel great every day")

	assert.Equal(t, SentimentPositive, result.Label)
	assert.Greater(t, result.Score, positiveThreshold)
	assert.LessOrEqual(t, result.Score, 1.0)
}

func TestAnalyzeTextNegative(t *testing.T) {
	service := NewSentimentService()

	result := service.AnalyzeText("This job is terrible, the management is awful and I hate coming in")

	assert.Equal(t, SentimentNegative, result.Label)
	assert.Less(t, result.Score, negativeThreshold)
	assert.GreaterOrEqual(t, result.Score, -1.0)
}

func TestAnalyzeTextDeterministic(t *testing.T) {
	service := NewSentimentService()
	text := "The quarterly review went fine, nothing special to report"

	first := service.AnalyzeText(text)
	second := service.AnalyzeText(text)

	assert.Equal(t, first, second)
}

func TestSentimentLabelFor(t *testing.T) {
	tests := []struct {
		name     string
		score    float64
		expected SentimentLabel
	}{
		{name: "clearly positive", score: 0.15, expected: SentimentPositive},
		{name: "clearly negative", score: -0.2, expected: SentimentNegative},
		{name: "weakly positive stays neutral", score: 0.05, expected: SentimentNeutral},
		{name: "weakly negative stays neutral", score: -0.05, expected: SentimentNeutral},
		{name: "zero is neutral", score: 0.0, expected: SentimentNeutral},
		{name: "positive threshold is exclusive", score: 0.1, expected: SentimentNeutral},
		{name: "negative threshold is exclusive", score: -0.1, expected: SentimentNeutral},
		{name: "just above positive threshold", score: 0.11, expected: SentimentPositive},
		{name: "just below negative threshold", score: -0.11, expected: SentimentNegative},
		{name: "maximum score", score: 1.0, expected: SentimentPositive},
		{name: "minimum score", score: -1.0, expected: SentimentNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SentimentLabelFor(tt.score))
		})
	}
}
