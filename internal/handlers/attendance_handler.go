package handlers

import (
	"fmt"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"talentpulse/hr-analytics/internal/models"
	"talentpulse/hr-analytics/internal/repositories"
	"talentpulse/hr-analytics/internal/services"
)

type AttendanceHandler struct {
	checkInRepo     repositories.CheckInRepository
	geofenceService services.GeofenceService
	storageService  services.StorageService
	maxFileSize     int64
}

func NewAttendanceHandler(
	checkInRepo repositories.CheckInRepository,
	geofenceService services.GeofenceService,
	storageService services.StorageService,
	maxFileSize int64,
) *AttendanceHandler {
	return &AttendanceHandler{
		checkInRepo:     checkInRepo,
		geofenceService: geofenceService,
		storageService:  storageService,
		maxFileSize:     maxFileSize,
	}
}

// HandleCheckIn handles POST /attendance/checkin
func (h *AttendanceHandler) HandleCheckIn(c *fiber.Ctx) error {
	employeeID := c.FormValue("employee_id")
	if employeeID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "employee_id is required",
		})
	}

	latitude, err := strconv.ParseFloat(c.FormValue("latitude"), 64)
	if err != nil || latitude < -90 || latitude > 90 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "latitude must be a number between -90 and 90",
		})
	}

	longitude, err := strconv.ParseFloat(c.FormValue("longitude"), 64)
	if err != nil || longitude < -180 || longitude > 180 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "longitude must be a number between -180 and 180",
		})
	}

	// Check the point against the office geofence
	result := h.geofenceService.Check(latitude, longitude)

	// Save the selfie when one is attached
	var photoPath *string
	if photoFile, err := c.FormFile("photo"); err == nil && photoFile != nil {
		if photoFile.Size > h.maxFileSize {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": fmt.Sprintf("photo file too large. Max size: %d bytes", h.maxFileSize),
			})
		}

		_, filePath, err := h.storageService.SaveFile(photoFile, "photo")
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": fmt.Sprintf("failed to save photo file: %v", err),
			})
		}
		photoPath = &filePath
	}

	// Record the check-in whether or not it landed inside the fence
	checkIn := &models.AttendanceCheckIn{
		ID:          uuid.New(),
		EmployeeID:  employeeID,
		Latitude:    latitude,
		Longitude:   longitude,
		DistanceKM:  result.DistanceKM,
		WithinFence: result.WithinFence,
		PhotoPath:   photoPath,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}

	if err := h.checkInRepo.Create(checkIn); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to save attendance check-in",
		})
	}

	response := models.CheckInResponse{
		ID:          checkIn.ID.String(),
		EmployeeID:  checkIn.EmployeeID,
		DistanceKM:  checkIn.DistanceKM,
		WithinFence: checkIn.WithinFence,
	}

	if !result.WithinFence {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
			"error":    "Check-in location is outside the office geofence",
			"check_in": response,
		})
	}

	return c.Status(fiber.StatusCreated).JSON(response)
}

// HandleListCheckIns handles GET /attendance/:employee_id
func (h *AttendanceHandler) HandleListCheckIns(c *fiber.Ctx) error {
	employeeID := c.Params("employee_id")

	checkIns, err := h.checkInRepo.ListByEmployee(employeeID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to list attendance check-ins",
		})
	}

	return c.JSON(fiber.Map{
		"employee_id": employeeID,
		"check_ins":   checkIns,
	})
}
