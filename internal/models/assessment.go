package models

import (
	"time"

	"github.com/google/uuid"
)

type AttritionAssessment struct {
	ID                uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EmployeeID        string    `gorm:"type:text;not null;index" json:"employee_id"`
	TenureYears       *float64  `gorm:"type:decimal(5,2)" json:"tenure_years,omitempty"`
	LastRating        *float64  `gorm:"type:decimal(4,2)" json:"last_rating,omitempty"`
	SalaryHikePercent *float64  `gorm:"type:decimal(5,2)" json:"salary_hike_percent,omitempty"`
	EngagementScore   *float64  `gorm:"type:decimal(4,2)" json:"engagement_score,omitempty"`
	OvertimeHours     *float64  `gorm:"type:decimal(5,2)" json:"overtime_hours,omitempty"`
	Score             int       `gorm:"not null" json:"score"`
	Risk              string    `gorm:"type:text;not null" json:"risk"`
	CreatedAt         time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt         time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (AttritionAssessment) TableName() string {
	return "attrition_assessments"
}
