package presentation

import (
	"github.com/weatherdash/backend/internal/domain"
)

// WeatherReading is the display-ready payload of GET /api/weather/:city
type WeatherReading struct {
	City          string `json:"city"`
	Country       string `json:"country"`
	Temperature   string `json:"temperature"`
	FeelsLike     string `json:"feels_like"`
	Condition     string `json:"condition"`
	Humidity      string `json:"humidity"`
	WindSpeed     string `json:"wind_speed"`
	WindDirection string `json:"wind_direction"`
	Clouds        string `json:"clouds"`
	Visibility    string `json:"visibility"`
	Pressure      string `json:"pressure"`
	Sunrise       string `json:"sunrise"`
	Sunset        string `json:"sunset"`
	AQI           string `json:"aqi"`
	AQINumber     int    `json:"aqi_number"`
	UVIndex       string `json:"uv_index"`
	RainChance    string `json:"rain_chance"`
	Units         string `json:"units"`
	RealData      bool   `json:"real_data"`
}

// ForecastEntry is one formatted forecast day
type ForecastEntry struct {
	Date        string `json:"date"`
	Temperature string `json:"temperature"`
	Condition   string `json:"condition"`
}

// ForecastResponse is the payload of GET /api/forecast/:city
type ForecastResponse struct {
	City      string          `json:"city"`
	Forecasts []ForecastEntry `json:"forecasts"`
}

// Reading formats a weather reading for the dashboard
func Reading(w domain.Weather) WeatherReading {
	aqi, aqiNumber := AirQuality(w.AirQuality)

	return WeatherReading{
		City:          w.City,
		Country:       w.Country,
		Temperature:   Temperature(w.Temperature, w.Units),
		FeelsLike:     Temperature(w.FeelsLike, w.Units),
		Condition:     w.Condition,
		Humidity:      Percent(w.Humidity),
		WindSpeed:     Wind(w.WindSpeed, w.Units),
		WindDirection: Direction(w.WindDeg),
		Clouds:        Percent(w.Clouds),
		Visibility:    Visibility(w.Visibility),
		Pressure:      Pressure(w.Pressure),
		Sunrise:       Clock(w.Sunrise, w.UTCOffset),
		Sunset:        Clock(w.Sunset, w.UTCOffset),
		AQI:           aqi,
		AQINumber:     aqiNumber,
		UVIndex:       UVIndex(w.UV),
		RainChance:    RainChance(w.UV),
		Units:         string(w.Units),
		RealData:      true,
	}
}

// Forecast formats a collapsed forecast for the dashboard
func Forecast(f domain.Forecast) ForecastResponse {
	entries := make([]ForecastEntry, 0, len(f.Entries))
	for _, e := range f.Entries {
		entries = append(entries, ForecastEntry{
			Date:        ForecastDate(e.Date),
			Temperature: Temperature(e.Temperature, f.Units),
			Condition:   e.Condition,
		})
	}
	return ForecastResponse{
		City:      f.City,
		Forecasts: entries,
	}
}
