package domain

import (
	"context"
	"errors"
)

// ErrNotFound is the only lookup failure visible outside the service layer.
// Upstream outages and unknown locations both collapse to it.
var ErrNotFound = errors.New("location not found")

// CurrentConditions is the provider's current weather payload in requested units.
// The service treats WindSpeed as m/s regardless of units and converts it itself.
type CurrentConditions struct {
	Coordinates Coordinates
	Temperature float64
	FeelsLike   float64
	Condition   string
	Humidity    int
	WindSpeed   float64
	WindDeg     int
	Clouds      int
	Visibility  int
	Pressure    int
	Sunrise     int64
	Sunset      int64
	UTCOffset   int
}

// ForecastSlot is one 3-hour step of the provider forecast.
// Timestamp is the provider's "YYYY-MM-DD HH:MM:SS" label.
type ForecastSlot struct {
	Timestamp   string
	Temperature float64
	Condition   string
}

// OneCallSummary holds the fields used from the one-call endpoint
type OneCallSummary struct {
	UVIndex    float64
	RainChance float64
}

// WeatherProvider defines the upstream calls the dashboard depends on.
// Domain defines the interface, the openweather package implements it.
type WeatherProvider interface {
	// CurrentByName queries current weather by free-text city name
	CurrentByName(ctx context.Context, city string, units Units) (CurrentConditions, error)

	// CurrentByCoordinates queries current weather by latitude/longitude
	CurrentByCoordinates(ctx context.Context, lat, lon float64, units Units) (CurrentConditions, error)

	// Geocode resolves a free-text query to at most limit places, most relevant first
	Geocode(ctx context.Context, query string, limit int) ([]Place, error)

	// Forecast returns the 3-hour step forecast stream for coordinates
	Forecast(ctx context.Context, lat, lon float64, units Units) ([]ForecastSlot, error)

	// AirQuality returns the air quality index for coordinates
	AirQuality(ctx context.Context, lat, lon float64) (int, error)

	// OneCall returns UV index and rain probability for coordinates
	OneCall(ctx context.Context, lat, lon float64) (OneCallSummary, error)
}
