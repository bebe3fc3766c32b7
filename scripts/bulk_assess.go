package main

import (
	"encoding/csv"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"talentpulse/hr-analytics/internal/config"
	"talentpulse/hr-analytics/internal/models"
	"talentpulse/hr-analytics/internal/repositories"
	"talentpulse/hr-analytics/internal/services"
)

func main() {
	log.Println("🚀 Starting bulk attrition assessment...")

	csvPath := "./data/employee_features.csv"
	if len(os.Args) > 1 {
		csvPath = os.Args[1]
	}

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	assessmentRepo := repositories.NewAssessmentRepository(db)
	attritionService := services.NewAttritionService()

	file, err := os.Open(csvPath)
	if err != nil {
		log.Fatalf("❌ Failed to open CSV file: %v", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		log.Fatalf("❌ Failed to read CSV header: %v", err)
	}

	columns := make(map[string]int, len(header))
	for i, name := range header {
		columns[strings.TrimSpace(name)] = i
	}

	if _, ok := columns["employee_id"]; !ok {
		log.Fatalf("❌ CSV file must have an employee_id column")
	}

	successCount := 0
	failCount := 0
	tierCounts := map[services.RiskLevel]int{}

	line := 1
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		line++
		if err != nil {
			log.Printf("⚠️  Skipping line %d: %v", line, err)
			failCount++
			continue
		}

		employeeID := strings.TrimSpace(record[columns["employee_id"]])
		if employeeID == "" {
			log.Printf("⚠️  Skipping line %d: empty employee_id", line)
			failCount++
			continue
		}

		features := models.EmployeeFeatures{
			TenureYears:       floatColumn(record, columns, "tenure_years"),
			LastRating:        floatColumn(record, columns, "last_rating"),
			SalaryHikePercent: floatColumn(record, columns, "salary_hike_percent"),
			EngagementScore:   floatColumn(record, columns, "engagement_score"),
			OvertimeHours:     floatColumn(record, columns, "overtime_hours"),
		}

		result := attritionService.AssessRisk(features)

		assessment := &models.AttritionAssessment{
			ID:                uuid.New(),
			EmployeeID:        employeeID,
			TenureYears:       features.TenureYears,
			LastRating:        features.LastRating,
			SalaryHikePercent: features.SalaryHikePercent,
			EngagementScore:   features.EngagementScore,
			OvertimeHours:     features.OvertimeHours,
			Score:             result.Score,
			Risk:              string(result.Risk),
			CreatedAt:         time.Now(),
			UpdatedAt:         time.Now(),
		}

		if err := assessmentRepo.Create(assessment); err != nil {
			log.Printf("❌ Failed to save assessment for %s: %v", employeeID, err)
			failCount++
			continue
		}

		tierCounts[result.Risk]++
		successCount++
		log.Printf("📄 %s: score %d, risk %s", employeeID, result.Score, result.Risk)
	}

	// Summary
	log.Println("\n" + strings.Repeat("=", 60))
	log.Printf("📊 Assessment Summary:")
	log.Printf("   ✅ Assessed: %d employees", successCount)
	log.Printf("   ❌ Skipped: %d rows", failCount)
	log.Printf("   📋 High: %d, Medium: %d, Low: %d",
		tierCounts[services.RiskHigh], tierCounts[services.RiskMedium], tierCounts[services.RiskLow])
	log.Println(strings.Repeat("=", 60))

	if failCount > 0 {
		log.Println("⚠️  Some rows failed to assess. Please check the logs above.")
		os.Exit(1)
	}

	log.Println("✅ All employees assessed successfully!")
}

func floatColumn(record []string, columns map[string]int, name string) *float64 {
	idx, ok := columns[name]
	if !ok || idx >= len(record) {
		return nil
	}

	raw := strings.TrimSpace(record[idx])
	if raw == "" {
		return nil
	}

	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil
	}

	return &value
}
