package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"talentpulse/hr-analytics/internal/models"
)

type AssessmentRepository interface {
	Create(assessment *models.AttritionAssessment) error
	ListByEmployee(employeeID string) ([]models.AttritionAssessment, error)
}

type assessmentRepository struct {
	db *gorm.DB
}

func NewAssessmentRepository(db *gorm.DB) AssessmentRepository {
	return &assessmentRepository{db: db}
}

// Create implements AssessmentRepository.
func (r *assessmentRepository) Create(assessment *models.AttritionAssessment) error {
	if err := r.db.Create(assessment).Error; err != nil {
		return fmt.Errorf("failed to create attrition assessment: %w", err)
	}

	return nil
}

// ListByEmployee implements AssessmentRepository.
func (r *assessmentRepository) ListByEmployee(employeeID string) ([]models.AttritionAssessment, error) {
	var assessments []models.AttritionAssessment
	err := r.db.
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&assessments).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list attrition assessments: %w", err)
	}

	return assessments, nil
}
