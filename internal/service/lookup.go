package service

import (
	"context"
	"errors"

	"github.com/weatherdash/backend/internal/domain"
)

var errNoGeocodingMatch = errors.New("service: geocoding returned no match")

// LookupStrategy is one way of turning a city name into current conditions.
// Strategies are tried in order until one succeeds.
type LookupStrategy interface {
	Name() string
	Lookup(ctx context.Context, city string, units domain.Units) (domain.CurrentConditions, error)
}

// directLookup asks the provider to match the city name itself
type directLookup struct {
	provider WeatherProvider
}

func (l directLookup) Name() string { return "direct" }

func (l directLookup) Lookup(ctx context.Context, city string, units domain.Units) (domain.CurrentConditions, error) {
	return l.provider.CurrentByName(ctx, city, units)
}

// geocodedLookup resolves the name through geocoding first and queries by coordinates.
// The reading carries the geocoded name and country.
type geocodedLookup struct {
	provider WeatherProvider
}

func (l geocodedLookup) Name() string { return "geocoded" }

func (l geocodedLookup) Lookup(ctx context.Context, city string, units domain.Units) (domain.CurrentConditions, error) {
	place, err := resolvePlace(ctx, l.provider, city)
	if err != nil {
		return domain.CurrentConditions{}, err
	}

	current, err := l.provider.CurrentByCoordinates(ctx, place.Lat, place.Lon, units)
	if err != nil {
		return domain.CurrentConditions{}, err
	}
	current.Coordinates.Name = place.Name
	current.Coordinates.Country = place.Country
	return current, nil
}

// DefaultStrategies returns the direct-then-geocoded lookup chain
func DefaultStrategies(provider WeatherProvider) []LookupStrategy {
	return []LookupStrategy{
		directLookup{provider: provider},
		geocodedLookup{provider: provider},
	}
}

// resolvePlace returns the most relevant geocoding match for city
func resolvePlace(ctx context.Context, provider WeatherProvider, city string) (domain.Place, error) {
	places, err := provider.Geocode(ctx, city, 1)
	if err != nil {
		return domain.Place{}, err
	}
	if len(places) == 0 {
		return domain.Place{}, errNoGeocodingMatch
	}
	return places[0], nil
}
