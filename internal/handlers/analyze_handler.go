package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"talentpulse/hr-analytics/internal/models"
	"talentpulse/hr-analytics/internal/repositories"
	"talentpulse/hr-analytics/internal/services"
)

type AnalyzeHandler struct {
	sentimentService  services.SentimentService
	similarityService services.SimilarityService
	attritionService  services.AttritionService
	assessmentRepo    repositories.AssessmentRepository
}

func NewAnalyzeHandler(
	sentimentService services.SentimentService,
	similarityService services.SimilarityService,
	attritionService services.AttritionService,
	assessmentRepo repositories.AssessmentRepository,
) *AnalyzeHandler {
	return &AnalyzeHandler{
		sentimentService:  sentimentService,
		similarityService: similarityService,
		attritionService:  attritionService,
		assessmentRepo:    assessmentRepo,
	}
}

// HandleSentiment handles POST /analyze/sentiment
func (h *AnalyzeHandler) HandleSentiment(c *fiber.Ctx) error {
	var req models.SentimentRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	result := h.sentimentService.AnalyzeText(req.Text)

	return c.JSON(models.SentimentResponse{
		Score: result.Score,
		Label: string(result.Label),
	})
}

// HandleSimilarity handles POST /analyze/similarity
func (h *AnalyzeHandler) HandleSimilarity(c *fiber.Ctx) error {
	var req models.SimilarityRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	similarity := h.similarityService.Compare(req.TextA, req.TextB)

	return c.JSON(models.SimilarityResponse{
		Similarity: similarity,
	})
}

// HandleAttrition handles POST /analyze/attrition
func (h *AnalyzeHandler) HandleAttrition(c *fiber.Ctx) error {
	var req models.AttritionRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request payload",
		})
	}

	if req.EmployeeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "employee_id is required",
		})
	}

	result := h.attritionService.AssessRisk(req.EmployeeFeatures)

	// Persist the assessment with the feature snapshot it was scored on
	assessment := &models.AttritionAssessment{
		ID:                uuid.New(),
		EmployeeID:        req.EmployeeID,
		TenureYears:       req.TenureYears,
		LastRating:        req.LastRating,
		SalaryHikePercent: req.SalaryHikePercent,
		EngagementScore:   req.EngagementScore,
		OvertimeHours:     req.OvertimeHours,
		Score:             result.Score,
		Risk:              string(result.Risk),
		CreatedAt:         time.Now(),
		UpdatedAt:         time.Now(),
	}

	if err := h.assessmentRepo.Create(assessment); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save attrition assessment",
		})
	}

	reasons := result.Reasons
	if reasons == nil {
		reasons = []string{}
	}

	return c.JSON(models.AttritionResponse{
		ID:         assessment.ID.String(),
		EmployeeID: assessment.EmployeeID,
		Score:      result.Score,
		Risk:       string(result.Risk),
		Reasons:    reasons,
	})
}

// HandleListAssessments handles GET /assessments/:employee_id
func (h *AnalyzeHandler) HandleListAssessments(c *fiber.Ctx) error {
	employeeID := c.Params("employee_id")

	assessments, err := h.assessmentRepo.ListByEmployee(employeeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list attrition assessments",
		})
	}

	return c.JSON(fiber.Map{
		"employee_id": employeeID,
		"assessments": assessments,
	})
}
