package server

import (
	"log"
	"strings"

	"predictplay-be/internal/bootstrap"
	"predictplay-be/internal/config"
	"predictplay-be/internal/pkg/serverutils"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		BodyLimit: 10 * 1024 * 1024, // 10MB
	})

	// Middleware
	app.Use(cors.New(corsConfig(cfg.App.CorsAllowedOrigins)))

	// OpenTelemetry tracing middleware (traces all HTTP requests)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())

	// Routes
	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

// corsConfig builds the CORS middleware config. Fiber refuses credentials
// together with a wildcard origin, so credentials are only allowed when the
// configured origins are an explicit list.
func corsConfig(allowedOrigins string) cors.Config {
	return cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowCredentials: !strings.Contains(allowedOrigins, "*"),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE, OPTIONS",
		ExposeHeaders:    "Content-Length, Content-Type, Authorization",
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	log.Printf("✅ Server is running on http://localhost:%s", s.cfg.App.Port)
	return s.app.Listen(":" + s.cfg.App.Port)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	api := app.Group("/api")

	c.TokenController.RegisterRoutes(api)
	c.ContestController.RegisterRoutes(api)
	c.AnalyzerController.RegisterRoutes(api)
	c.VoteController.RegisterRoutes(api)
	c.StreakController.RegisterRoutes(api)
	c.AchievementController.RegisterRoutes(api)
	c.LeaderboardController.RegisterRoutes(api)
}
