package models

// EmployeeFeatures carries the HR signals the attrition scorer reads.
// Every field is optional; missing values fall back to scorer defaults.
type EmployeeFeatures struct {
	TenureYears       *float64 `json:"tenure_years,omitempty"`
	LastRating        *float64 `json:"last_rating,omitempty"`
	SalaryHikePercent *float64 `json:"salary_hike_percent,omitempty"`
	EngagementScore   *float64 `json:"engagement_score,omitempty"`
	OvertimeHours     *float64 `json:"overtime_hours,omitempty"`
}
