package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/weatherdash/backend/internal/service"
)

// NewApp builds the fiber application with middleware and routes
func NewApp(dashboardSvc *service.DashboardService, log *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "Weather Dashboard v1.0",
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          30 * time.Second,
		UnescapePath:          true,
		DisableStartupMessage: true,
		ErrorHandler:          ErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{
		Generator: uuid.NewString,
	}))
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency}) ${locals:requestid}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	SetupRoutes(app, dashboardSvc, log)
	return app
}

// SetupRoutes configures all HTTP routes
func SetupRoutes(app *fiber.App, dashboardSvc *service.DashboardService, log *zap.Logger) {
	handler := NewHandler(dashboardSvc, log)

	// Health check
	app.Get("/health", handler.HealthCheck)

	// Dashboard page
	app.Get("/", handler.Index)

	api := app.Group("/api")
	{
		api.Get("/weather/:city", handler.GetWeather)
		api.Get("/forecast/:city", handler.GetForecast)
		api.Get("/autocomplete/:query?", handler.Autocomplete)
		api.Get("/cities", handler.GetCities)
	}
}

// ErrorHandler renders every unhandled error as {"error": message}
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error": message,
	})
}
