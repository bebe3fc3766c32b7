package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"talentpulse/hr-analytics/internal/config"
	"talentpulse/hr-analytics/internal/handlers"
	"talentpulse/hr-analytics/internal/repositories"
	"talentpulse/hr-analytics/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("✅ Config loaded successfully")

	// Initialize database
	db, err := config.InitDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to initialize database: %v", err)
	}

	// Initializes repositories
	docRepo := repositories.NewDocumentRepository(db)
	matchRepo := repositories.NewMatchRepository(db)
	assessmentRepo := repositories.NewAssessmentRepository(db)
	checkInRepo := repositories.NewCheckInRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	pdfParser := services.NewPDFParserService()
	sentimentService := services.NewSentimentService()
	similarityService := services.NewSimilarityService()
	attritionService := services.NewAttritionService()
	geofenceService := services.NewGeofenceService(cfg.Geofence)
	log.Println("✅ Services initialized successfully")

	// Initialize matcher
	matcherService := services.NewMatcherService(
		matchRepo,
		docRepo,
		pdfParser,
		similarityService,
		sentimentService,
	)
	log.Println("✅ Matcher service initialized")

	// Initialize worker
	worker := services.NewWorker(
		matchRepo,
		matcherService,
		cfg.Worker.Concurrency,
	)
	log.Println("✅ Worker initialized successfully")

	// Start worker
	ctx := context.Background()
	worker.Start(ctx)
	log.Println("✅ Worker started successfully")

	// Initialize Handlers
	uploadHandler := handlers.NewUploadHandler(
		docRepo,
		storageService,
		cfg.Storage.MaxFileSize,
	)
	matchHandler := handlers.NewMatchHandler(
		matchRepo,
		docRepo,
		worker,
	)
	resultHandler := handlers.NewResultHandler(matchRepo)
	analyzeHandler := handlers.NewAnalyzeHandler(
		sentimentService,
		similarityService,
		attritionService,
		assessmentRepo,
	)
	attendanceHandler := handlers.NewAttendanceHandler(
		checkInRepo,
		geofenceService,
		storageService,
		cfg.Storage.MaxFileSize,
	)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "TalentPulse HR Analytics API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Storage.MaxFileSize),
		ErrorHandler: customErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} - ${latency} ${method} ${path}\n",
		TimeFormat: "2006-01-02 15:04:05",
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))

	// Routes
	api := app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// API endpoints
	api.Post("/upload", uploadHandler.HandleUpload)
	api.Post("/matches", matchHandler.HandleCreateMatch)
	api.Get("/matches/:id", resultHandler.HandleGetResult)
	api.Post("/analyze/sentiment", analyzeHandler.HandleSentiment)
	api.Post("/analyze/similarity", analyzeHandler.HandleSimilarity)
	api.Post("/analyze/attrition", analyzeHandler.HandleAttrition)
	api.Get("/assessments/:employee_id", analyzeHandler.HandleListAssessments)
	api.Post("/attendance/checkin", attendanceHandler.HandleCheckIn)
	api.Get("/attendance/:employee_id", attendanceHandler.HandleListCheckIns)

	// Root route
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "TalentPulse HR Analytics API",
			"version": "1.0.0",
			"endpoints": []string{
				"POST /api/v1/upload",
				"POST /api/v1/matches",
				"GET /api/v1/matches/:id",
				"POST /api/v1/analyze/sentiment",
				"POST /api/v1/analyze/similarity",
				"POST /api/v1/analyze/attrition",
				"GET /api/v1/assessments/:employee_id",
				"POST /api/v1/attendance/checkin",
				"GET /api/v1/attendance/:employee_id",
			},
		})
	})

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("\n🛑 Shutting down server...")
		worker.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("🚀 Server starting on %s\n", addr)
	log.Printf("📖 API Documentation: http://localhost%s\n", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}

}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
		"code":  code,
	})
}
