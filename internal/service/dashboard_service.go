package service

import (
	"context"

	"github.com/weatherdash/backend/internal/domain"
)

// DashboardService groups everything the dashboard endpoints need
type DashboardService struct {
	weatherSvc   *WeatherService
	forecastSvc  *ForecastService
	placeSvc     *PlaceService
	defaultUnits domain.Units
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	weatherSvc *WeatherService,
	forecastSvc *ForecastService,
	placeSvc *PlaceService,
	defaultUnits domain.Units,
) *DashboardService {
	return &DashboardService{
		weatherSvc:   weatherSvc,
		forecastSvc:  forecastSvc,
		placeSvc:     placeSvc,
		defaultUnits: defaultUnits,
	}
}

// DefaultUnits returns the unit system used when a request names none
func (s *DashboardService) DefaultUnits() domain.Units {
	return s.defaultUnits
}

// Query builds a lookup for city, parsing the requested unit system
func (s *DashboardService) Query(city, units string) domain.LocationQuery {
	return domain.LocationQuery{
		City:  city,
		Units: domain.ParseUnits(units, s.defaultUnits),
	}
}

// GetWeather returns current conditions for a query
func (s *DashboardService) GetWeather(ctx context.Context, q domain.LocationQuery) (domain.Weather, error) {
	return s.weatherSvc.ResolveWeather(ctx, q.City, q.Units)
}

// GetForecast returns the collapsed daily forecast for a query
func (s *DashboardService) GetForecast(ctx context.Context, q domain.LocationQuery) (domain.Forecast, error) {
	return s.forecastSvc.ResolveForecast(ctx, q.City, q.Units)
}

// Autocomplete returns city suggestions for a partial name
func (s *DashboardService) Autocomplete(ctx context.Context, query string) []domain.CitySuggestion {
	return s.placeSvc.Suggest(ctx, query)
}

// PopularCities returns the quick-access city list
func (s *DashboardService) PopularCities() []string {
	return domain.PopularCities()
}
