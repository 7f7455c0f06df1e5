package routes

import (
	"time"

	"community-watch/internal/adapters/http/handlers"
	"community-watch/internal/adapters/http/middleware"
	"community-watch/internal/adapters/persistence/repositories"
	"community-watch/internal/config"
	"community-watch/internal/core/authz"
	"community-watch/internal/core/services"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// NewApp creates the Fiber app with middlewares and routes attached
func NewApp(repos *repositories.Repositories, cfg *config.Config) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Community Watch API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	middleware.Setup(app, cfg)
	Setup(app, repos, cfg)

	return app
}

// Setup configures all routes for the application
func Setup(app *fiber.App, repos *repositories.Repositories, cfg *config.Config) {
	// Initialize services
	authService := services.NewAuthService(repos, cfg)
	officerService := services.NewOfficerService(repos)
	categoryService := services.NewCategoryService(repos)
	reportService := services.NewReportService(repos)
	assignmentService := services.NewAssignmentService(repos)
	dashboardService := services.NewDashboardService(repos)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(repos, cfg)
	authHandler := handlers.NewAuthHandler(authService, cfg)
	officerHandler := handlers.NewOfficerHandler(officerService)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	reportHandler := handlers.NewReportHandler(reportService)
	assignmentHandler := handlers.NewAssignmentHandler(assignmentService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Prometheus metrics
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Every API route below sees the caller's principal (anonymous when no session)
	api := app.Group("", middleware.SessionMiddleware(authService))

	setupAuthRoutes(api, authHandler)
	setupOfficerRoutes(api.Group("/officers"), officerHandler)
	setupCategoryRoutes(api.Group("/categories"), categoryHandler)
	setupReportRoutes(api.Group("/reports"), reportHandler)
	setupAssignmentRoutes(api.Group("/assignments"), assignmentHandler)

	api.Get("/dashboard",
		middleware.Require(authz.LoginRequired),
		middleware.PrivateCacheHeaders(30*time.Second),
		dashboardHandler.GetDashboard,
	)
}

// setupAuthRoutes configures session routes
func setupAuthRoutes(router fiber.Router, handler *handlers.AuthHandler) {
	router.Post("/login", middleware.AuthRateLimiter(), middleware.NoCacheHeaders(), handler.Login)
	router.Post("/logout", middleware.NoCacheHeaders(), handler.Logout)
	router.Get("/me", middleware.NoCacheHeaders(), handler.Me)
}

// setupOfficerRoutes configures officer routes
// Registration is public; the service decides who may register an admin
// and who may update a given officer.
func setupOfficerRoutes(router fiber.Router, handler *handlers.OfficerHandler) {
	loggedIn := middleware.Require(authz.LoginRequired)
	adminOnly := middleware.Require(authz.AdminRequired)

	router.Get("/", handler.List)
	router.Post("/", handler.Create)
	router.Get("/:id", handler.Get)
	router.Patch("/:id", loggedIn, handler.Update)
	router.Delete("/:id", adminOnly, handler.Delete)
}

// setupCategoryRoutes configures crime category routes
func setupCategoryRoutes(router fiber.Router, handler *handlers.CategoryHandler) {
	adminOnly := middleware.Require(authz.AdminRequired)

	router.Get("/", middleware.PublicCache(5*time.Minute), handler.List)
	router.Post("/", adminOnly, handler.Create)
	router.Get("/:id", handler.Get)
	router.Patch("/:id", adminOnly, handler.Update)
	router.Delete("/:id", adminOnly, handler.Delete)
}

// setupReportRoutes configures crime report routes
func setupReportRoutes(router fiber.Router, handler *handlers.ReportHandler) {
	loggedIn := middleware.Require(authz.LoginRequired)

	router.Get("/", handler.List)
	router.Post("/", loggedIn, handler.Create)
	router.Get("/:id", handler.Get)
	router.Patch("/:id", loggedIn, handler.Update)
	router.Delete("/:id", loggedIn, handler.Delete)
}

// setupAssignmentRoutes configures assignment routes
func setupAssignmentRoutes(router fiber.Router, handler *handlers.AssignmentHandler) {
	adminOnly := middleware.Require(authz.AdminRequired)

	router.Get("/", handler.List)
	router.Post("/", adminOnly, handler.Create)
	router.Get("/:id", handler.Get)
	router.Patch("/:id", adminOnly, handler.Update)
	router.Delete("/:id", adminOnly, handler.Delete)
}
