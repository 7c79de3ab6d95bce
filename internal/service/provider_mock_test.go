package service

import (
	"context"
	"errors"
	"strings"

	"github.com/weatherdash/backend/internal/domain"
)

var errUpstream = errors.New("upstream unavailable")

// mockProvider implements domain.WeatherProvider for tests
type mockProvider struct {
	byName   map[string]domain.CurrentConditions
	byCoords map[[2]float64]domain.CurrentConditions
	places   map[string][]domain.Place
	slots    []domain.ForecastSlot
	aqi      int
	oneCall  domain.OneCallSummary

	geocodeErr  error
	forecastErr error
	aqiErr      error
	oneCallErr  error

	// geocodeBlocks makes Geocode wait for ctx to end
	geocodeBlocks bool

	calls        map[string]int
	units        []domain.Units
	enrichCoords [][2]float64
}

func newMockProvider() *mockProvider {
	return &mockProvider{
		byName:   map[string]domain.CurrentConditions{},
		byCoords: map[[2]float64]domain.CurrentConditions{},
		places:   map[string][]domain.Place{},
		calls:    map[string]int{},
	}
}

func (m *mockProvider) CurrentByName(ctx context.Context, city string, units domain.Units) (domain.CurrentConditions, error) {
	m.calls["name"]++
	m.units = append(m.units, units)
	c, ok := m.byName[strings.ToLower(city)]
	if !ok {
		return domain.CurrentConditions{}, errUpstream
	}
	return c, nil
}

func (m *mockProvider) CurrentByCoordinates(ctx context.Context, lat, lon float64, units domain.Units) (domain.CurrentConditions, error) {
	m.calls["coords"]++
	m.units = append(m.units, units)
	c, ok := m.byCoords[[2]float64{lat, lon}]
	if !ok {
		return domain.CurrentConditions{}, errUpstream
	}
	return c, nil
}

func (m *mockProvider) Geocode(ctx context.Context, query string, limit int) ([]domain.Place, error) {
	m.calls["geocode"]++
	if m.geocodeBlocks {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if m.geocodeErr != nil {
		return nil, m.geocodeErr
	}
	places := m.places[strings.ToLower(query)]
	if len(places) > limit {
		places = places[:limit]
	}
	return places, nil
}

func (m *mockProvider) Forecast(ctx context.Context, lat, lon float64, units domain.Units) ([]domain.ForecastSlot, error) {
	m.calls["forecast"]++
	if m.forecastErr != nil {
		return nil, m.forecastErr
	}
	return m.slots, nil
}

func (m *mockProvider) AirQuality(ctx context.Context, lat, lon float64) (int, error) {
	m.calls["aqi"]++
	m.enrichCoords = append(m.enrichCoords, [2]float64{lat, lon})
	if m.aqiErr != nil {
		return 0, m.aqiErr
	}
	return m.aqi, nil
}

func (m *mockProvider) OneCall(ctx context.Context, lat, lon float64) (domain.OneCallSummary, error) {
	m.calls["onecall"]++
	m.enrichCoords = append(m.enrichCoords, [2]float64{lat, lon})
	if m.oneCallErr != nil {
		return domain.OneCallSummary{}, m.oneCallErr
	}
	return m.oneCall, nil
}

func londonConditions() domain.CurrentConditions {
	return domain.CurrentConditions{
		Coordinates: domain.Coordinates{Lat: 51.5085, Lon: -0.1257, Name: "London", Country: "GB"},
		Temperature: 12.7,
		FeelsLike:   11.9,
		Condition:   "light rain",
		Humidity:    81,
		WindSpeed:   10,
		WindDeg:     240,
		Clouds:      75,
		Visibility:  10000,
		Pressure:    1012,
		Sunrise:     1697696400,
		Sunset:      1697734200,
		UTCOffset:   3600,
	}
}
