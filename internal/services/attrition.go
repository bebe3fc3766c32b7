package services

import (
	"talentpulse/hr-analytics/internal/models"
)

type RiskLevel string

const (
	RiskLow    RiskLevel = "Low"
	RiskMedium RiskLevel = "Medium"
	RiskHigh   RiskLevel = "High"
)

// Fallback values for features the caller left out. A missing rating or
// engagement score must read as healthy, never as risky.
const (
	defaultTenureYears       = 0.0
	defaultLastRating        = 5.0
	defaultSalaryHikePercent = 0.0
	defaultEngagementScore   = 10.0
	defaultOvertimeHours     = 0.0
)

// Rule weights and cutoffs. Total score ranges 0 to 10.
const (
	lowRatingBelow     = 3.0
	lowEngagementBelow = 5.0
	stagnantTenureOver = 2.0
	stagnantHikeBelow  = 5.0
	overworkHoursOver  = 10.0

	weightLowRating      = 3
	weightLowEngagement  = 3
	weightStagnantGrowth = 2
	weightOverwork       = 2

	highRiskMinScore   = 6
	mediumRiskMinScore = 3
)

type RiskAssessment struct {
	Score   int
	Risk    RiskLevel
	Reasons []string
}

type AttritionService interface {
	AssessRisk(features models.EmployeeFeatures) RiskAssessment
}

type attritionService struct {
	rules []attritionRule
}

type attritionRule struct {
	reason  string
	weight  int
	applies func(f resolvedFeatures) bool
}

type resolvedFeatures struct {
	tenureYears       float64
	lastRating        float64
	salaryHikePercent float64
	engagementScore   float64
	overtimeHours     float64
}

func NewAttritionService() AttritionService {
	return &attritionService{
		rules: []attritionRule{
			{
				reason: "last performance rating below 3.0",
				weight: weightLowRating,
				applies: func(f resolvedFeatures) bool {
					return f.lastRating < lowRatingBelow
				},
			},
			{
				reason: "engagement score below 5",
				weight: weightLowEngagement,
				applies: func(f resolvedFeatures) bool {
					return f.engagementScore < lowEngagementBelow
				},
			},
			{
				reason: "over 2 years tenure with salary hike below 5%",
				weight: weightStagnantGrowth,
				applies: func(f resolvedFeatures) bool {
					return f.tenureYears > stagnantTenureOver && f.salaryHikePercent < stagnantHikeBelow
				},
			},
			{
				reason: "overtime above 10 hours per week",
				weight: weightOverwork,
				applies: func(f resolvedFeatures) bool {
					return f.overtimeHours > overworkHoursOver
				},
			},
		},
	}
}

// AssessRisk implements AttritionService.
func (a *attritionService) AssessRisk(features models.EmployeeFeatures) RiskAssessment {
	resolved := resolve(features)

	score := 0
	var reasons []string
	for _, rule := range a.rules {
		if rule.applies(resolved) {
			score += rule.weight
			reasons = append(reasons, rule.reason)
		}
	}

	return RiskAssessment{
		Score:   score,
		Risk:    riskTierFor(score),
		Reasons: reasons,
	}
}

func resolve(f models.EmployeeFeatures) resolvedFeatures {
	return resolvedFeatures{
		tenureYears:       valueOr(f.TenureYears, defaultTenureYears),
		lastRating:        valueOr(f.LastRating, defaultLastRating),
		salaryHikePercent: valueOr(f.SalaryHikePercent, defaultSalaryHikePercent),
		engagementScore:   valueOr(f.EngagementScore, defaultEngagementScore),
		overtimeHours:     valueOr(f.OvertimeHours, defaultOvertimeHours),
	}
}

func valueOr(value *float64, fallback float64) float64 {
	if value == nil {
		return fallback
	}
	return *value
}

func riskTierFor(score int) RiskLevel {
	switch {
	case score >= highRiskMinScore:
		return RiskHigh
	case score >= mediumRiskMinScore:
		return RiskMedium
	default:
		return RiskLow
	}
}
