package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"recruitai/hr-dashboard/internal/config"
	"recruitai/hr-dashboard/internal/handlers"
	"recruitai/hr-dashboard/internal/repositories"
	"recruitai/hr-dashboard/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()
	log := cfg.NewLogger()
	log.Info("✅ Config loaded successfully")

	// Remote recruitment service
	client := repositories.NewClient(cfg.RecruitAPI.BaseURL, cfg.RecruitAPI.Timeout, log)
	jobRepo := repositories.NewJobRepository(client)
	resumeRepo := repositories.NewResumeRepository(client)
	log.WithField("base_url", cfg.RecruitAPI.BaseURL).Info("✅ Recruitment API client initialized")

	// Initialize services
	storageService := services.NewStorageService(cfg.Storage.UploadPath, cfg.Storage.MaxFileSize)
	if err := storageService.EnsureUploadDir(); err != nil {
		log.Fatalf("❌ Failed to create upload directory: %v", err)
	}

	validate := services.NewValidator()
	emailService := services.NewEmailService(client, validate, log)
	dashboardService := services.NewDashboardService(jobRepo, validate, log)
	pipelineService := services.NewPipelineService(jobRepo, resumeRepo, emailService, validate, log)
	intakeService := services.NewResumeIntakeService(storageService, services.NewPDFParserService(), log)
	log.Info("✅ Services initialized successfully")

	// Initialize Handlers
	landingHandler := handlers.NewLandingHandler(cfg.Landing.CallAIURL)
	app := handlers.NewApp(handlers.AppOptions{
		BodyLimit:    cfg.Storage.MaxFileSize,
		AccessLog:    true,
		ErrorLogger:  log,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	}, handlers.Handlers{
		Landing:   landingHandler,
		Dashboard: handlers.NewDashboardHandler(dashboardService, landingHandler),
		Job:       handlers.NewJobHandler(pipelineService, intakeService),
		API:       handlers.NewAPIHandler(dashboardService, pipelineService, emailService),
	})
	log.Info("✅ Handlers initialized")

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info("🛑 Shutting down server...")
		if err := app.Shutdown(); err != nil {
			log.Errorf("❌ Server forced to shutdown: %v", err)
		}
	}()

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Infof("🚀 Server starting on %s", addr)
	log.Infof("📖 Dashboard: http://localhost%s", addr)

	if err := app.Listen(addr); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}
