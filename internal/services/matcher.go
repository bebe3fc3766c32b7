package services

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"

	"talentpulse/hr-analytics/internal/models"
	"talentpulse/hr-analytics/internal/repositories"
)

type MatcherService interface {
	EvaluateMatch(ctx context.Context, matchID uuid.UUID) error
}

type matcherService struct {
	matchRepo         repositories.MatchRepository
	docRepo           repositories.DocumentRepository
	pdfParser         PDFParserService
	similarityService SimilarityService
	sentimentService  SentimentService
	summaryBuilder    *SummaryBuilder
}

func NewMatcherService(
	matchRepo repositories.MatchRepository,
	docRepo repositories.DocumentRepository,
	pdfParser PDFParserService,
	similarityService SimilarityService,
	sentimentService SentimentService,
) MatcherService {
	return &matcherService{
		matchRepo:         matchRepo,
		docRepo:           docRepo,
		pdfParser:         pdfParser,
		similarityService: similarityService,
		sentimentService:  sentimentService,
		summaryBuilder:    NewSummaryBuilder(),
	}
}

// EvaluateMatch implements MatcherService.
func (m *matcherService) EvaluateMatch(ctx context.Context, matchID uuid.UUID) error {
	// Update status to processing
	if err := m.matchRepo.UpdateStatus(matchID, models.StatusProcessing); err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}

	log.Printf("🔄 Starting match evaluation for job ID: %s\n", matchID)

	// Get match details
	match, err := m.matchRepo.FindByID(matchID)
	if err != nil {
		m.matchRepo.UpdateError(matchID, err.Error())
		return fmt.Errorf("failed to get match evaluation: %w", err)
	}

	// Get documents
	resumeDoc, err := m.docRepo.FindByID(match.ResumeDocumentID)
	if err != nil {
		m.matchRepo.UpdateError(matchID, fmt.Sprintf("Resume document not found: %v", err))
		return fmt.Errorf("failed to get resume document: %w", err)
	}

	jobDoc, err := m.docRepo.FindByID(match.JobDocumentID)
	if err != nil {
		m.matchRepo.UpdateError(matchID, fmt.Sprintf("Job description document not found: %v", err))
		return fmt.Errorf("failed to get job description document: %w", err)
	}

	// Step 1: Parse PDFs
	log.Println("📄 Parsing resume...")
	resumeContent, err := m.pdfParser.ExtractText(resumeDoc.FilePath)
	if err != nil {
		m.matchRepo.UpdateError(matchID, fmt.Sprintf("Failed to parse resume: %v", err))
		return fmt.Errorf("failed to parse resume: %w", err)
	}

	log.Println("📄 Parsing job description...")
	jobContent, err := m.pdfParser.ExtractText(jobDoc.FilePath)
	if err != nil {
		m.matchRepo.UpdateError(matchID, fmt.Sprintf("Failed to parse job description: %v", err))
		return fmt.Errorf("failed to parse job description: %w", err)
	}

	// Step 2: Score resume against job description
	log.Println("🔍 Scoring resume against job description...")
	matchPercent := m.similarityService.Compare(jobContent.Text, resumeContent.Text)

	// Step 3: Score interview notes sentiment when provided
	var sentimentResult *SentimentResult
	if match.InterviewNotes != nil && strings.TrimSpace(*match.InterviewNotes) != "" {
		log.Println("🔍 Scoring interview notes sentiment...")
		result := m.sentimentService.AnalyzeText(*match.InterviewNotes)
		sentimentResult = &result
	}

	// Step 4: Build summary
	summary := m.summaryBuilder.BuildMatchSummary(match.JobTitle, matchPercent, sentimentResult)

	// Step 5: Save results
	log.Println("💾 Saving match results...")
	updateData := &repositories.MatchUpdateData{
		MatchPercent: &matchPercent,
		Summary:      &summary,
	}
	if sentimentResult != nil {
		label := string(sentimentResult.Label)
		updateData.SentimentScore = &sentimentResult.Score
		updateData.SentimentLabel = &label
	}

	if err := m.matchRepo.UpdateResult(matchID, updateData); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	log.Printf("✅ Match evaluation completed successfully for job ID: %s\n", matchID)
	return nil
}
