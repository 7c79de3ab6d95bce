package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/weatherdash/backend/internal/domain"
)

const forecastDateLayout = "2006-01-02"

// ForecastService builds the daily forecast from the provider's 3-hour stream
type ForecastService struct {
	provider WeatherProvider
	log      *zap.Logger
}

// NewForecastService creates a new forecast service
func NewForecastService(provider WeatherProvider, log *zap.Logger) *ForecastService {
	return &ForecastService{provider: provider, log: log}
}

// ResolveForecast geocodes city and returns at most five daily entries.
// There is no direct-name lookup here: coordinates always come from geocoding.
func (s *ForecastService) ResolveForecast(ctx context.Context, city string, units domain.Units) (domain.Forecast, error) {
	place, err := resolvePlace(ctx, s.provider, city)
	if err != nil {
		s.log.Info("forecast geocoding failed", zap.String("city", city), zap.Error(err))
		return domain.Forecast{}, domain.ErrNotFound
	}

	slots, err := s.provider.Forecast(ctx, place.Lat, place.Lon, units)
	if err != nil {
		s.log.Info("forecast lookup failed", zap.String("city", place.Name), zap.Error(err))
		return domain.Forecast{}, domain.ErrNotFound
	}

	return domain.Forecast{
		City:    place.Name,
		Units:   units,
		Entries: collapseForecast(slots),
	}, nil
}

// collapseForecast keeps the first 12:00 or 15:00 slot of each calendar day,
// in stream order, up to domain.MaxForecastDays entries.
func collapseForecast(slots []domain.ForecastSlot) []domain.ForecastEntry {
	entries := make([]domain.ForecastEntry, 0, domain.MaxForecastDays)
	seen := make(map[string]struct{}, domain.MaxForecastDays)

	for _, slot := range slots {
		// "YYYY-MM-DD HH:MM:SS"
		if len(slot.Timestamp) < 13 {
			continue
		}
		day, hour := slot.Timestamp[:10], slot.Timestamp[11:13]
		if hour != "12" && hour != "15" {
			continue
		}
		if _, ok := seen[day]; ok {
			continue
		}

		date, err := time.Parse(forecastDateLayout, day)
		if err != nil {
			continue
		}
		seen[day] = struct{}{}

		entries = append(entries, domain.ForecastEntry{
			Date:        date,
			Temperature: slot.Temperature,
			Condition:   slot.Condition,
		})
		if len(entries) == domain.MaxForecastDays {
			break
		}
	}

	return entries
}
