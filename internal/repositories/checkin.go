package repositories

import (
	"fmt"

	"gorm.io/gorm"

	"talentpulse/hr-analytics/internal/models"
)

type CheckInRepository interface {
	Create(checkIn *models.AttendanceCheckIn) error
	ListByEmployee(employeeID string) ([]models.AttendanceCheckIn, error)
}

type checkInRepository struct {
	db *gorm.DB
}

func NewCheckInRepository(db *gorm.DB) CheckInRepository {
	return &checkInRepository{db: db}
}

// Create implements CheckInRepository.
func (r *checkInRepository) Create(checkIn *models.AttendanceCheckIn) error {
	if err := r.db.Create(checkIn).Error; err != nil {
		return fmt.Errorf("failed to create attendance check-in: %w", err)
	}

	return nil
}

// ListByEmployee implements CheckInRepository.
func (r *checkInRepository) ListByEmployee(employeeID string) ([]models.AttendanceCheckIn, error) {
	var checkIns []models.AttendanceCheckIn
	err := r.db.
		Where("employee_id = ?", employeeID).
		Order("created_at DESC").
		Find(&checkIns).Error

	if err != nil {
		return nil, fmt.Errorf("failed to list attendance check-ins: %w", err)
	}

	return checkIns, nil
}
