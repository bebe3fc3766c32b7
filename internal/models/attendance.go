package models

import (
	"time"

	"github.com/google/uuid"
)

type AttendanceCheckIn struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	EmployeeID  string    `gorm:"type:text;not null;index" json:"employee_id"`
	Latitude    float64   `gorm:"type:decimal(9,6);not null" json:"latitude"`
	Longitude   float64   `gorm:"type:decimal(9,6);not null" json:"longitude"`
	DistanceKM  float64   `gorm:"type:decimal(8,3);not null" json:"distance_km"`
	WithinFence bool      `gorm:"not null" json:"within_fence"`
	PhotoPath   *string   `gorm:"type:text" json:"photo_path,omitempty"`
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`
}

func (AttendanceCheckIn) TableName() string {
	return "attendance_checkins"
}
