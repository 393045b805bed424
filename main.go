package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"tour-backend/config"
	"tour-backend/controllers"
	"tour-backend/middleware"
	"tour-backend/routes"
	"tour-backend/services"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  .env not found or couldn't load it; continuing with environment variables")
	}

	cfg := config.Load()
	if cfg.JWTSecret == "" {
		log.Fatal("❌ ERROR: JWT_SECRET environment variable is not set.")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("❌ Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	if err := config.ConnectDatabase(cfg); err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	db := config.DB
	log.Println("✅ Database connection established and migrations applied.")

	jwtSvc := middleware.NewJWTService(cfg.JWTSecret, 72)

	// Initialize services
	authService := services.NewAuthService(db)
	tourService := services.NewTourService(db)
	providerService := services.NewProviderService(db)
	catalogService := services.NewCatalogService(db)
	bookingService := services.NewBookingService(db)
	assignmentService := services.NewAssignmentService(db, logger)
	notificationService := services.NewNotificationService(db)
	reportService := services.NewReportService(db)

	// Initialize controllers
	ctrls := routes.Controllers{
		Auth:         controllers.NewAuthController(authService, jwtSvc),
		Tour:         controllers.NewTourController(tourService, catalogService),
		Provider:     controllers.NewProviderController(providerService),
		Catalog:      controllers.NewCatalogController(catalogService),
		Booking:      controllers.NewBookingController(bookingService),
		Assignment:   controllers.NewAssignmentController(assignmentService),
		Notification: controllers.NewNotificationController(notificationService),
		Report:       controllers.NewReportController(reportService),
	}

	router := routes.SetupRouter(ctrls, jwtSvc, logger, cfg.CORSOrigins)

	addr := ":" + cfg.Port

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	// Wait for interrupt signal, then shut down with a timeout.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
