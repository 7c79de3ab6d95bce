package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/weatherdash/backend/internal/config"
	"github.com/weatherdash/backend/internal/delivery/http"
	"github.com/weatherdash/backend/internal/logger"
	"github.com/weatherdash/backend/internal/provider/openweather"
	"github.com/weatherdash/backend/internal/service"
)

func main() {
	// Configuration, fail fast without an API key
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zlog, err := logger.New(cfg.IsDevelopment())
	if err != nil {
		log.Fatalf("Logger error: %v", err)
	}
	defer zlog.Sync()

	// Dependency Injection: Provider
	provider := openweather.NewClient(cfg.APIKey, cfg.BaseURL, cfg.RequestTimeout)

	// Dependency Injection: Services
	enricher, err := service.NewEnricher(cfg.Enrichment, provider)
	if err != nil {
		zlog.Fatal("invalid enrichment", zap.Error(err))
	}
	weatherSvc := service.NewWeatherService(provider, enricher, zlog)
	forecastSvc := service.NewForecastService(provider, zlog)
	placeSvc := service.NewPlaceService(provider, cfg.AutocompleteTimeout, zlog)
	dashboardSvc := service.NewDashboardService(weatherSvc, forecastSvc, placeSvc, cfg.DefaultUnits)

	app := http.NewApp(dashboardSvc, zlog)

	// Graceful shutdown
	go func() {
		zlog.Info("server starting",
			zap.String("port", cfg.Port),
			zap.String("enrichment", enricher.Name()),
			zap.String("default_units", string(cfg.DefaultUnits)),
		)
		if err := app.Listen(":" + cfg.Port); err != nil {
			zlog.Fatal("server error", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down server")
	if err := app.ShutdownWithTimeout(5 * time.Second); err != nil {
		zlog.Error("server forced to shutdown", zap.Error(err))
	}
	zlog.Info("server exited gracefully")
}
