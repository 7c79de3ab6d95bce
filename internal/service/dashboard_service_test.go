package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/weatherdash/backend/internal/domain"
)

func newTestDashboard(t *testing.T, provider *mockProvider, defaultUnits domain.Units) *DashboardService {
	t.Helper()

	enricher, err := NewEnricher("none", provider)
	require.NoError(t, err)

	log := zap.NewNop()
	return NewDashboardService(
		NewWeatherService(provider, enricher, log),
		NewForecastService(provider, log),
		NewPlaceService(provider, time.Second, log),
		defaultUnits,
	)
}

func TestDashboardQuery(t *testing.T) {
	svc := newTestDashboard(t, newMockProvider(), domain.Imperial)

	tests := []struct {
		requested string
		want      domain.Units
	}{
		{"metric", domain.Metric},
		{"imperial", domain.Imperial},
		{"", domain.Imperial},
		{"kelvin", domain.Imperial},
	}

	for _, tt := range tests {
		q := svc.Query("London", tt.requested)
		assert.Equal(t, "London", q.City)
		assert.Equal(t, tt.want, q.Units, "requested %q", tt.requested)
	}
}

func TestDashboardGetWeather(t *testing.T) {
	provider := newMockProvider()
	provider.byName["london"] = londonConditions()
	svc := newTestDashboard(t, provider, domain.Metric)

	weather, err := svc.GetWeather(context.Background(), svc.Query("London", ""))
	require.NoError(t, err)
	assert.Equal(t, "London", weather.City)
	assert.Equal(t, domain.Metric, weather.Units)
	assert.Nil(t, weather.AirQuality)
	assert.Nil(t, weather.UV)
}

func TestDashboardPopularCities(t *testing.T) {
	svc := newTestDashboard(t, newMockProvider(), domain.Metric)

	cities := svc.PopularCities()
	require.Len(t, cities, 7)
	assert.Equal(t, "New York", cities[0])

	cities[0] = "Gotham"
	assert.Equal(t, "New York", svc.PopularCities()[0])
}
