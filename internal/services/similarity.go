package services

import (
	"math"
	"strings"

	"github.com/bbalet/stopwords"
	"gonum.org/v1/gonum/floats"
)

// similarityPrecision fixes scores to two decimal places.
const similarityPrecision = 100

// similarityCorpusSize is the document count behind the IDF weights.
// Every comparison is scored over exactly the two texts given.
const similarityCorpusSize = 2

type SimilarityService interface {
	Compare(textA, textB string) float64
}

type similarityService struct{}

func NewSimilarityService() SimilarityService {
	return &similarityService{}
}

// Compare implements SimilarityService. It returns the TF-IDF weighted
// cosine similarity of the two texts as a percentage in [0, 100].
func (s *similarityService) Compare(textA, textB string) float64 {
	termsA := significantTerms(textA)
	termsB := significantTerms(textB)

	// A text with no significant terms has no direction to compare.
	if len(termsA) == 0 || len(termsB) == 0 {
		return 0.0
	}

	vectorA, vectorB := vectorize(termsA, termsB)

	similarity := cosineSimilarity(vectorA, vectorB)
	if math.IsNaN(similarity) || similarity <= 0 {
		return 0.0
	}
	if similarity > 1 {
		similarity = 1
	}

	return math.Round(similarity*100*similarityPrecision) / similarityPrecision
}

// significantTerms lowercases text, strips English stop words and
// punctuation, and returns the remaining tokens.
func significantTerms(text string) []string {
	cleaned := stopwords.CleanString(text, "en", false)
	return strings.Fields(cleaned)
}

// vectorize maps both term lists onto a shared vocabulary and weights
// each dimension by term frequency times smoothed inverse document
// frequency: idf = ln((1 + n) / (1 + df)) + 1. The smoothing keeps
// terms shared by both texts from collapsing to zero weight.
func vectorize(termsA, termsB []string) ([]float64, []float64) {
	countsA := termCounts(termsA)
	countsB := termCounts(termsB)

	vocabulary := make([]string, 0, len(countsA)+len(countsB))
	seen := make(map[string]struct{}, len(countsA)+len(countsB))
	for _, term := range termsA {
		if _, ok := seen[term]; !ok {
			seen[term] = struct{}{}
			vocabulary = append(vocabulary, term)
		}
	}
	for _, term := range termsB {
		if _, ok := seen[term]; !ok {
			seen[term] = struct{}{}
			vocabulary = append(vocabulary, term)
		}
	}

	vectorA := make([]float64, len(vocabulary))
	vectorB := make([]float64, len(vocabulary))

	for i, term := range vocabulary {
		documentFreq := 0
		if countsA[term] > 0 {
			documentFreq++
		}
		if countsB[term] > 0 {
			documentFreq++
		}

		idf := math.Log(float64(1+similarityCorpusSize)/float64(1+documentFreq)) + 1

		vectorA[i] = float64(countsA[term]) / float64(len(termsA)) * idf
		vectorB[i] = float64(countsB[term]) / float64(len(termsB)) * idf
	}

	return vectorA, vectorB
}

func termCounts(terms []string) map[string]int {
	counts := make(map[string]int, len(terms))
	for _, term := range terms {
		counts[term]++
	}
	return counts
}

func cosineSimilarity(vectorA, vectorB []float64) float64 {
	normA := floats.Norm(vectorA, 2)
	normB := floats.Norm(vectorB, 2)
	if normA == 0 || normB == 0 {
		return 0.0
	}

	return floats.Dot(vectorA, vectorB) / (normA * normB)
}
