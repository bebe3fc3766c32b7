package repositories

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"talentpulse/hr-analytics/internal/models"
)

type MatchRepository interface {
	Create(match *models.MatchEvaluation) error
	FindByID(id uuid.UUID) (*models.MatchEvaluation, error)
	UpdateStatus(id uuid.UUID, status models.MatchStatus) error
	UpdateResult(id uuid.UUID, result *MatchUpdateData) error
	UpdateError(id uuid.UUID, errorMsg string) error
	FindPendingJobs(limit int) ([]models.MatchEvaluation, error)
}

type MatchUpdateData struct {
	MatchPercent   *float64
	SentimentScore *float64
	SentimentLabel *string
	Summary        *string
}

type matchRepository struct {
	db *gorm.DB
}

func NewMatchRepository(db *gorm.DB) MatchRepository {
	return &matchRepository{db: db}
}

func (r *matchRepository) Create(match *models.MatchEvaluation) error {
	if err := r.db.Create(match).Error; err != nil {
		return fmt.Errorf("failed to create match evaluation: %w", err)
	}
	return nil
}

func (r *matchRepository) FindByID(id uuid.UUID) (*models.MatchEvaluation, error) {
	var match models.MatchEvaluation
	if err := r.db.Where("id = ?", id).First(&match).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("match evaluation not found")
		}
		return nil, fmt.Errorf("failed to find match evaluation: %w", err)
	}
	return &match, nil
}

func (r *matchRepository) UpdateStatus(id uuid.UUID, status models.MatchStatus) error {
	result := r.db.Model(&models.MatchEvaluation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update status: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("match evaluation not found")
	}

	return nil
}

func (r *matchRepository) UpdateResult(id uuid.UUID, data *MatchUpdateData) error {
	updates := map[string]interface{}{
		"status":     models.StatusCompleted,
		"updated_at": time.Now(),
	}

	if data.MatchPercent != nil {
		updates["match_percent"] = *data.MatchPercent
	}
	if data.SentimentScore != nil {
		updates["sentiment_score"] = *data.SentimentScore
	}
	if data.SentimentLabel != nil {
		updates["sentiment_label"] = *data.SentimentLabel
	}
	if data.Summary != nil {
		updates["summary"] = *data.Summary
	}

	result := r.db.Model(&models.MatchEvaluation{}).
		Where("id = ?", id).
		Updates(updates)

	if result.Error != nil {
		return fmt.Errorf("failed to update result: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("match evaluation not found")
	}

	return nil
}

func (r *matchRepository) UpdateError(id uuid.UUID, errorMsg string) error {
	result := r.db.Model(&models.MatchEvaluation{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":        models.StatusFailed,
			"error_message": errorMsg,
			"updated_at":    time.Now(),
		})

	if result.Error != nil {
		return fmt.Errorf("failed to update error: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return fmt.Errorf("match evaluation not found")
	}

	return nil
}

func (r *matchRepository) FindPendingJobs(limit int) ([]models.MatchEvaluation, error) {
	var matches []models.MatchEvaluation
	err := r.db.
		Where("status = ?", models.StatusQueued).
		Order("created_at ASC").
		Limit(limit).
		Find(&matches).Error

	if err != nil {
		return nil, fmt.Errorf("failed to find pending jobs: %w", err)
	}

	return matches, nil
}
