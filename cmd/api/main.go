package main

import (
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

	"jobboard/job-service/internal/config"
	"jobboard/job-service/internal/handlers"
	"jobboard/job-service/internal/repositories"
	"jobboard/job-service/internal/services"
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

	// Initialize repositories
	jobRepo := repositories.NewJobRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	log.Println("✅ Repositories initialized successfully")

	// Initialize services
	resumeStore := services.NewResumeStoreClient(cfg.AuthService.BaseURL, cfg.AuthService.Timeout)
	resolver := services.NewResumeResolver(resumeStore)
	extractor := services.NewPDFTextExtractor()
	log.Println("✅ Services initialized successfully")

	// Initialize Gemini AI
	aiService, err := services.NewGeminiAIService(cfg.Gemini.APIKey, cfg.Gemini.Enabled)
	if err != nil {
		log.Fatalf("❌ Failed to initialize Gemini AI: %v", err)
	}
	if cfg.Gemini.Enabled {
		log.Println("✅ Gemini AI initialized successfully")
	} else {
		log.Println("⚠️  AI evaluation is disabled")
	}

	// Initialize evaluator and worker
	evaluator := services.NewEvaluatorService(appRepo, jobRepo, aiService, extractor)
	worker := services.NewWorker(evaluator)
	log.Println("✅ Worker initialized successfully")

	appService := services.NewApplicationService(appRepo, resolver, resumeStore, worker)

	// Initialize handlers
	jobHandler := handlers.NewJobHandler(jobRepo)
	appHandler := handlers.NewApplicationHandler(appService, cfg.Upload.MaxFileSize)
	log.Println("✅ Handlers initialized")

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Job Service API",
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
		BodyLimit:    int(cfg.Upload.MaxFileSize),
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
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
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

	// Job endpoints
	api.Post("/jobs", jobHandler.HandleCreateJob)
	api.Get("/jobs", jobHandler.HandleListJobs)
	api.Get("/jobs/:id", jobHandler.HandleGetJob)

	// Application endpoints
	api.Post("/jobs/:id/apply", appHandler.HandleApply)
	api.Get("/jobs/:id/applications", appHandler.HandleListApplicationsByJob)
	api.Get("/applications", appHandler.HandleListApplicationsByCandidate)
	api.Get("/applications/:id", appHandler.HandleGetApplication)
	api.Get("/applications/:id/resume", appHandler.HandleGetApplicationResume)
	api.Patch("/applications/:id/status", appHandler.HandleUpdateApplicationStatus)

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
