package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/weatherdash/backend/internal/domain"
	"github.com/weatherdash/backend/pkg/utils"
)

// WeatherService resolves current conditions for free-text city names
type WeatherService struct {
	strategies []LookupStrategy
	enricher   Enricher
	log        *zap.Logger
}

// NewWeatherService creates a new weather service using the default lookup chain
func NewWeatherService(provider WeatherProvider, enricher Enricher, log *zap.Logger) *WeatherService {
	return NewWeatherServiceWithStrategies(DefaultStrategies(provider), enricher, log)
}

// NewWeatherServiceWithStrategies creates a weather service with an explicit lookup chain
func NewWeatherServiceWithStrategies(strategies []LookupStrategy, enricher Enricher, log *zap.Logger) *WeatherService {
	if enricher == nil {
		enricher = noopEnricher{}
	}
	return &WeatherService{
		strategies: strategies,
		enricher:   enricher,
		log:        log,
	}
}

// ResolveWeather tries each lookup strategy in order and enriches the first success.
// Every upstream failure is logged and reported as domain.ErrNotFound.
func (s *WeatherService) ResolveWeather(ctx context.Context, city string, units domain.Units) (domain.Weather, error) {
	for _, strategy := range s.strategies {
		current, err := strategy.Lookup(ctx, city, units)
		if err != nil {
			s.log.Info("weather lookup failed",
				zap.String("strategy", strategy.Name()),
				zap.String("city", city),
				zap.Error(err),
			)
			continue
		}

		weather := newWeather(current, units)
		if err := s.enricher.Enrich(ctx, &weather); err != nil {
			s.log.Warn("enrichment failed",
				zap.String("enrichment", s.enricher.Name()),
				zap.String("city", weather.City),
				zap.Error(err),
			)
		}

		s.log.Debug("weather resolved",
			zap.String("strategy", strategy.Name()),
			zap.String("city", weather.City),
			zap.String("country", weather.Country),
		)
		return weather, nil
	}

	return domain.Weather{}, domain.ErrNotFound
}

// newWeather converts a provider payload to a reading in the requested units
func newWeather(current domain.CurrentConditions, units domain.Units) domain.Weather {
	windSpeed := current.WindSpeed
	if units == domain.Imperial {
		windSpeed = utils.ToMPH(windSpeed)
	}

	return domain.Weather{
		Temperature: current.Temperature,
		FeelsLike:   current.FeelsLike,
		Condition:   current.Condition,
		Humidity:    current.Humidity,
		WindSpeed:   windSpeed,
		WindDeg:     current.WindDeg,
		Clouds:      current.Clouds,
		Visibility:  current.Visibility,
		Pressure:    current.Pressure,
		Sunrise:     epochToTime(current.Sunrise),
		Sunset:      epochToTime(current.Sunset),
		UTCOffset:   current.UTCOffset,
		City:        current.Coordinates.Name,
		Country:     current.Coordinates.Country,
		Units:       units,
		Coordinates: current.Coordinates,
	}
}

// epochToTime maps a missing (zero) timestamp to the zero time
func epochToTime(ts int64) time.Time {
	if ts <= 0 {
		return time.Time{}
	}
	return time.Unix(ts, 0).UTC()
}
