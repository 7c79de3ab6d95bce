package domain

import (
	"strings"
	"time"
)

// Units is the measurement system requested by the client
type Units string

const (
	Metric   Units = "metric"
	Imperial Units = "imperial"
)

// ParseUnits maps a query value to Units, using fallback for anything unrecognised
func ParseUnits(s string, fallback Units) Units {
	switch Units(strings.ToLower(strings.TrimSpace(s))) {
	case Metric:
		return Metric
	case Imperial:
		return Imperial
	default:
		return fallback
	}
}

// Valid reports whether u is a known unit system
func (u Units) Valid() bool {
	return u == Metric || u == Imperial
}

// TemperatureSuffix returns the suffix appended to formatted temperatures
func (u Units) TemperatureSuffix() string {
	if u == Imperial {
		return "°F"
	}
	return "°C"
}

// SpeedSuffix returns the suffix appended to formatted wind speeds
func (u Units) SpeedSuffix() string {
	if u == Imperial {
		return "mph"
	}
	return "m/s"
}

// LocationQuery is a free-text city lookup in a given unit system
type LocationQuery struct {
	City  string
	Units Units
}

// Coordinates identify a resolved place
type Coordinates struct {
	Lat     float64
	Lon     float64
	Name    string
	Country string
}

// AirQuality is the provider's air quality index (1 = Good .. 5 = Very Poor)
type AirQuality struct {
	Index int
}

// UVReport carries the one-call enrichment fields
type UVReport struct {
	Index      float64
	RainChance float64 // 0..1
}

// Weather represents current conditions for a location.
// Wind speed is in m/s for metric and mph for imperial readings.
type Weather struct {
	Temperature float64
	FeelsLike   float64
	Condition   string
	Humidity    int
	WindSpeed   float64
	WindDeg     int
	Clouds      int
	Visibility  int
	Pressure    int
	Sunrise     time.Time
	Sunset      time.Time
	UTCOffset   int
	City        string
	Country     string
	Units       Units
	Coordinates Coordinates

	// Enrichment, nil when the secondary source had no data
	AirQuality *AirQuality
	UV         *UVReport
}

// ForecastEntry is a single day of the collapsed forecast
type ForecastEntry struct {
	Date        time.Time
	Temperature float64
	Condition   string
}

// Forecast is an ordered, at most five day forecast
type Forecast struct {
	City    string
	Units   Units
	Entries []ForecastEntry
}

// MaxForecastDays caps the number of collapsed forecast entries
const MaxForecastDays = 5
