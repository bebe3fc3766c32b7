package handlers

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"talentpulse/hr-analytics/internal/models"
	"talentpulse/hr-analytics/internal/repositories"
	"talentpulse/hr-analytics/internal/services"
)

type MatchHandler struct {
	matchRepo repositories.MatchRepository
	docRepo   repositories.DocumentRepository
	worker    services.Worker
}

func NewMatchHandler(
	matchRepo repositories.MatchRepository,
	docRepo repositories.DocumentRepository,
	worker services.Worker,
) *MatchHandler {
	return &MatchHandler{
		matchRepo: matchRepo,
		docRepo:   docRepo,
		worker:    worker,
	}
}

// HandleCreateMatch handles POST /matches
func (h *MatchHandler) HandleCreateMatch(c *fiber.Ctx) error {
	var req models.MatchRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.JobTitle == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_title is required",
		})
	}

	if req.ResumeDocumentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume_document_id is required",
		})
	}

	if req.JobDocumentID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_document_id is required",
		})
	}

	// Parse UUIDs
	resumeDocID, err := uuid.Parse(req.ResumeDocumentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid resume_document_id format",
		})
	}

	jobDocID, err := uuid.Parse(req.JobDocumentID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid job_document_id format",
		})
	}

	// Verify documents exist and sit in the right slots
	docs, err := h.docRepo.FindByIDs([]uuid.UUID{resumeDocID, jobDocID})
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to look up documents",
		})
	}

	docsByID := make(map[uuid.UUID]models.Document, len(docs))
	for _, doc := range docs {
		docsByID[doc.ID] = doc
	}

	resumeDoc, found := docsByID[resumeDocID]
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Resume document not found",
		})
	}
	if resumeDoc.Kind != models.KindResume {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "resume_document_id must reference a resume document",
		})
	}

	jobDoc, found := docsByID[jobDocID]
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Job description document not found",
		})
	}
	if jobDoc.Kind != models.KindJobDescription {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "job_document_id must reference a job description document",
		})
	}

	// Create match record
	match := &models.MatchEvaluation{
		ID:               uuid.New(),
		JobTitle:         req.JobTitle,
		ResumeDocumentID: resumeDocID,
		JobDocumentID:    jobDocID,
		Status:           models.StatusQueued,
		CreatedAt:        time.Now(),
		UpdatedAt:        time.Now(),
	}

	if notes := strings.TrimSpace(req.InterviewNotes); notes != "" {
		match.InterviewNotes = &notes
	}

	if err := h.matchRepo.Create(match); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to create match evaluation job",
		})
	}

	// Enqueue job to worker
	h.worker.EnqueueJob(match.ID)

	// Return job ID immediately
	return c.Status(fiber.StatusAccepted).JSON(models.MatchResponse{
		ID:     match.ID.String(),
		Status: string(models.StatusQueued),
	})
}
