package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"community-watch/internal/adapters/http/routes"
	"community-watch/internal/adapters/persistence/repositories"
	"community-watch/internal/config"
	"community-watch/internal/core/services"

	"github.com/gofiber/fiber/v2"

	_ "community-watch/docs" // Swagger docs
)

// @title Community Watch API
// @version 1.0
// @description Police officers, crime categories, crime reports and officer assignments
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.email support@communitywatch.local

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @BasePath /

// @securityDefinitions.apikey SessionCookie
// @in cookie
// @name session
// @description HTTP-only session cookie set by POST /login

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := config.Migrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}

	// Seed crime categories
	if err := config.NewSeeder(db).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed categories: %v", err)
	}

	repos := repositories.New(db)

	// Start Cron Service for expired session cleanup
	cronService, err := services.NewCronService(services.NewAuthService(repos, cfg), cfg.Session.CleanupSchedule)
	if err != nil {
		log.Fatalf("❌ Failed to schedule session cleanup: %v", err)
	}
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app with middlewares and routes
	app := routes.NewApp(repos, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
