package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/weatherdash/backend/internal/domain"
	"github.com/weatherdash/backend/internal/presentation"
	"github.com/weatherdash/backend/internal/service"
)

const notFoundMessage = "City not found"

// Handler contains all HTTP handlers
type Handler struct {
	dashboardSvc *service.DashboardService
	page         *indexPage
	log          *zap.Logger
}

// NewHandler creates a new handler
func NewHandler(dashboardSvc *service.DashboardService, log *zap.Logger) *Handler {
	return &Handler{
		dashboardSvc: dashboardSvc,
		page:         newIndexPage(),
		log:          log,
	}
}

// HealthCheck returns service health status
func (h *Handler) HealthCheck(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "ok",
		"service": "weather-dashboard",
		"version": "1.0.0",
	})
}

// Index renders the dashboard page with the popular city list
func (h *Handler) Index(c *fiber.Ctx) error {
	body, err := h.page.render(h.dashboardSvc.PopularCities(), h.dashboardSvc.DefaultUnits())
	if err != nil {
		h.log.Error("failed to render index", zap.Error(err))
		return fiber.NewError(fiber.StatusInternalServerError, "Failed to render dashboard")
	}

	c.Type("html", "utf-8")
	return c.Send(body)
}

// GetWeather returns formatted current conditions for a city
func (h *Handler) GetWeather(c *fiber.Ctx) error {
	query := h.dashboardSvc.Query(strings.TrimSpace(c.Params("city")), c.Query("units"))

	weather, err := h.dashboardSvc.GetWeather(c.Context(), query)
	if err != nil {
		return h.notFound(c, "weather", query.City, err)
	}

	return c.JSON(presentation.Reading(weather))
}

// GetForecast returns the formatted five day forecast for a city
func (h *Handler) GetForecast(c *fiber.Ctx) error {
	query := h.dashboardSvc.Query(strings.TrimSpace(c.Params("city")), c.Query("units"))

	forecast, err := h.dashboardSvc.GetForecast(c.Context(), query)
	if err != nil {
		return h.notFound(c, "forecast", query.City, err)
	}

	return c.JSON(presentation.Forecast(forecast))
}

// Autocomplete returns city suggestions; it always answers 200
func (h *Handler) Autocomplete(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"cities": h.dashboardSvc.Autocomplete(c.Context(), c.Params("query")),
	})
}

// GetCities returns the popular city list
func (h *Handler) GetCities(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"cities": h.dashboardSvc.PopularCities(),
	})
}

// notFound answers with the single not-found shape used for every lookup failure
func (h *Handler) notFound(c *fiber.Ctx, endpoint, city string, err error) error {
	if !errors.Is(err, domain.ErrNotFound) {
		h.log.Error("unexpected lookup error",
			zap.String("endpoint", endpoint),
			zap.String("city", city),
			zap.Error(err),
		)
	}

	return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
		"error": notFoundMessage,
	})
}
