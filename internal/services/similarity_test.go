package services

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareEmptyInput(t *testing.T) {
	service := NewSimilarityService()

	tests := []struct {
		name  string
		textA string
		textB string
	}{
		{name: "both empty", textA: "", textB: ""},
		{name: "first empty", textA: "", textB: "golang engineer"},
		{name: "second empty", textA: "golang engineer", textB: ""},
		{name: "whitespace only", textA: "   ", textB: "golang engineer"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 0.0, service.Compare(tt.textA, tt.textB))
		})
	}
}

func TestCompareIdenticalTexts(t *testing.T) {
	service := NewSimilarityService()
	text := "Senior backend engineer with Postgres, Kubernetes and distributed systems experience"

	assert.Equal(t, 100.0, service.Compare(text, text))
}

func TestCompareCaseAndPunctuationInsensitive(t *testing.T) {
	service := NewSimilarityService()

	score := service.Compare(
		"GOLANG developer, Kubernetes!",
		"golang developer kubernetes",
	)

	assert.Equal(t, 100.0, score)
}

func TestCompareStopWordsOnly(t *testing.T) {
	service := NewSimilarityService()

	// Texts that dissolve entirely into stop words carry no signal.
	score := service.Compare(
		"the and of but with is was",
		"golang engineer",
	)

	assert.Equal(t, 0.0, score)
}

func TestCompareDisjointVocabularies(t *testing.T) {
	service := NewSimilarityService()

	score := service.Compare(
		"golang kubernetes postgres microservices",
		"watercolor sculpture gallery exhibition",
	)

	assert.Equal(t, 0.0, score)
}

func TestComparePartialOverlap(t *testing.T) {
	service := NewSimilarityService()

	score := service.Compare(
		"golang engineer kubernetes postgres",
		"golang engineer watercolor sculpture",
	)

	assert.Greater(t, score, 0.0)
	assert.Less(t, score, 100.0)
}

func TestCompareSymmetric(t *testing.T) {
	service := NewSimilarityService()
	textA := "backend engineer golang postgres kafka"
	textB := "frontend developer javascript react golang"

	assert.Equal(t, service.Compare(textA, textB), service.Compare(textB, textA))
}

func TestCompareRangeAndRounding(t *testing.T) {
	service := NewSimilarityService()

	pairs := [][2]string{
		{"golang engineer kubernetes", "golang engineer postgres"},
		{"data analyst sql tableau reporting", "data scientist python sql statistics"},
		{"warehouse logistics forklift", "software developer api design"},
	}

	for _, pair := range pairs {
		score := service.Compare(pair[0], pair[1])

		assert.GreaterOrEqual(t, score, 0.0)
		assert.LessOrEqual(t, score, 100.0)
		// Rounded to two decimal places
		assert.Equal(t, math.Round(score*100)/100, score)
	}
}

func TestCompareDeterministic(t *testing.T) {
	service := NewSimilarityService()
	textA := "product manager roadmap stakeholder alignment"
	textB := "project manager delivery stakeholder reporting"

	first := service.Compare(textA, textB)
	second := service.Compare(textA, textB)

	assert.Equal(t, first, second)
}

func TestCompareRepeatedTermsWeighting(t *testing.T) {
	service := NewSimilarityService()

	// Heavier overlap on shared vocabulary should score higher.
	closer := service.Compare(
		"golang golang golang engineer",
		"golang engineer",
	)
	farther := service.Compare(
		"golang watercolor sculpture gallery",
		"golang engineer",
	)

	assert.Greater(t, closer, farther)
}

func TestSignificantTerms(t *testing.T) {
	terms := significantTerms("The Senior Golang Engineer, with Postgres!")

	assert.Contains(t, terms, "golang")
	assert.Contains(t, terms, "engineer")
	assert.Contains(t, terms, "postgres")
	assert.NotContains(t, terms, "the")
	assert.NotContains(t, terms, "with")
}
