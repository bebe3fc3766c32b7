package services

import (
	"strings"

	"github.com/jonreiter/govader"
)

type SentimentLabel string

const (
	SentimentPositive SentimentLabel = "Positive"
	SentimentNeutral  SentimentLabel = "Neutral"
	SentimentNegative SentimentLabel = "Negative"
)

// Compound score cutoffs for mapping VADER output onto labels.
const (
	positiveThreshold = 0.1
	negativeThreshold = -0.1
)

type SentimentResult struct {
	Score float64
	Label SentimentLabel
}

type SentimentService interface {
	AnalyzeText(text string) SentimentResult
}

type sentimentService struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

func NewSentimentService() SentimentService {
	return &sentimentService{
		analyzer: govader.NewSentimentIntensityAnalyzer(),
	}
}

// AnalyzeText implements SentimentService.
func (s *sentimentService) AnalyzeText(text string) SentimentResult {
	if strings.TrimSpace(text) == "" {
		return SentimentResult{Score: 0.0, Label: SentimentNeutral}
	}

	scores := s.analyzer.PolarityScores(text)

	return SentimentResult{
		Score: scores.Compound,
		Label: SentimentLabelFor(scores.Compound),
	}
}

// SentimentLabelFor maps a compound score in [-1, 1] onto a label.
func SentimentLabelFor(score float64) SentimentLabel {
	switch {
	case score > positiveThreshold:
		return SentimentPositive
	case score < negativeThreshold:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}
