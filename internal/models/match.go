package models

import (
	"time"

	"github.com/google/uuid"
)

type MatchStatus string

const (
	StatusQueued     MatchStatus = "queued"
	StatusProcessing MatchStatus = "processing"
	StatusCompleted  MatchStatus = "completed"
	StatusFailed     MatchStatus = "failed"
)

type MatchEvaluation struct {
	ID               uuid.UUID   `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	JobTitle         string      `gorm:"type:text" json:"job_title"`
	ResumeDocumentID uuid.UUID   `gorm:"type:uuid;not null" json:"resume_document_id"`
	JobDocumentID    uuid.UUID   `gorm:"type:uuid;not null" json:"job_document_id"`
	InterviewNotes   *string     `gorm:"type:text" json:"interview_notes,omitempty"`
	Status           MatchStatus `gorm:"not null;default:'queued'" json:"status"`
	MatchPercent     *float64    `gorm:"type:decimal(5,2)" json:"match_percent,omitempty"`
	SentimentScore   *float64    `gorm:"type:decimal(6,4)" json:"sentiment_score,omitempty"`
	SentimentLabel   *string     `gorm:"type:text" json:"sentiment_label,omitempty"`
	Summary          *string     `gorm:"type:text" json:"summary,omitempty"`
	ErrorMessage     *string     `gorm:"type:text" json:"error_message,omitempty"`
	CreatedAt        time.Time   `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt        time.Time   `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relations
	ResumeDocument Document `gorm:"foreignKey:ResumeDocumentID" json:"-"`
	JobDocument    Document `gorm:"foreignKey:JobDocumentID" json:"-"`
}

func (MatchEvaluation) TableName() string {
	return "match_evaluations"
}
