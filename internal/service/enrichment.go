package service

import (
	"context"
	"fmt"

	"github.com/weatherdash/backend/internal/config"
	"github.com/weatherdash/backend/internal/domain"
	"github.com/weatherdash/backend/pkg/utils"
)

// Enricher adds a secondary data source to a primary reading.
// A failed enrichment returns an error and leaves the reading untouched.
type Enricher interface {
	Name() string
	Enrich(ctx context.Context, weather *domain.Weather) error
}

// NewEnricher returns the enrichment strategy configured for this deployment
func NewEnricher(kind string, provider WeatherProvider) (Enricher, error) {
	switch kind {
	case config.EnrichmentAirQuality:
		return airQualityEnricher{provider: provider}, nil
	case config.EnrichmentUV:
		return uvEnricher{provider: provider}, nil
	case config.EnrichmentNone, "":
		return noopEnricher{}, nil
	default:
		return nil, fmt.Errorf("service: unknown enrichment %q", kind)
	}
}

type airQualityEnricher struct {
	provider WeatherProvider
}

func (e airQualityEnricher) Name() string { return config.EnrichmentAirQuality }

func (e airQualityEnricher) Enrich(ctx context.Context, weather *domain.Weather) error {
	index, err := e.provider.AirQuality(ctx, weather.Coordinates.Lat, weather.Coordinates.Lon)
	if err != nil {
		return err
	}
	weather.AirQuality = &domain.AirQuality{Index: index}
	return nil
}

type uvEnricher struct {
	provider WeatherProvider
}

func (e uvEnricher) Name() string { return config.EnrichmentUV }

func (e uvEnricher) Enrich(ctx context.Context, weather *domain.Weather) error {
	summary, err := e.provider.OneCall(ctx, weather.Coordinates.Lat, weather.Coordinates.Lon)
	if err != nil {
		return err
	}
	weather.UV = &domain.UVReport{
		Index:      utils.RoundTo(summary.UVIndex, 1),
		RainChance: utils.Clamp(summary.RainChance, 0, 1),
	}
	return nil
}

type noopEnricher struct{}

func (noopEnricher) Name() string { return config.EnrichmentNone }

func (noopEnricher) Enrich(context.Context, *domain.Weather) error { return nil }
