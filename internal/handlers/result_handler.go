package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"talentpulse/hr-analytics/internal/models"
	"talentpulse/hr-analytics/internal/repositories"
)

type ResultHandler struct {
	matchRepo repositories.MatchRepository
}

func NewResultHandler(matchRepo repositories.MatchRepository) *ResultHandler {
	return &ResultHandler{
		matchRepo: matchRepo,
	}
}

func (h *ResultHandler) HandleGetResult(c *fiber.Ctx) error {
	// Parse ID from params
	idParam := c.Params("id")
	matchID, err := uuid.Parse(idParam)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid match evaluation ID format",
		})
	}

	// Get match evaluation
	match, err := h.matchRepo.FindByID(matchID)
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "Match evaluation not found",
		})
	}

	// Build response based on status
	response := models.MatchResultResponse{
		ID:     match.ID.String(),
		Status: string(match.Status),
	}

	// If completed, include results
	if match.Status == models.StatusCompleted && match.MatchPercent != nil {
		result := &models.MatchResultData{
			MatchPercent:   *match.MatchPercent,
			SentimentScore: match.SentimentScore,
			SentimentLabel: match.SentimentLabel,
		}
		if match.Summary != nil {
			result.Summary = *match.Summary
		}
		response.Result = result
	}

	// If failed, include error message
	if match.Status == models.StatusFailed && match.ErrorMessage != nil {
		response.ErrorMessage = match.ErrorMessage
	}

	return c.JSON(response)
}
