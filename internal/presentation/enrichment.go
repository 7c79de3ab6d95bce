package presentation

import (
	"fmt"
	"math"

	"github.com/weatherdash/backend/internal/domain"
)

var (
	aqiLabels = map[int]string{1: "Good", 2: "Fair", 3: "Moderate", 4: "Poor", 5: "Very Poor"}
	aqiColors = map[int]string{1: "🟢", 2: "🟡", 3: "🟠", 4: "🔴", 5: "🟣"}
)

// AirQuality renders the index as "<colour> <label>" and returns the index for the client.
// A nil reading renders as NoAirQuality with index 0.
func AirQuality(aq *domain.AirQuality) (string, int) {
	if aq == nil {
		return NoAirQuality, 0
	}

	label, ok := aqiLabels[aq.Index]
	if !ok {
		label = "Unknown"
	}
	color, ok := aqiColors[aq.Index]
	if !ok {
		color = "⚪"
	}
	return color + " " + label, aq.Index
}

// UVIndex renders "<index> (<band>)" using the WHO exposure bands
func UVIndex(uv *domain.UVReport) string {
	if uv == nil {
		return NoData
	}
	return fmt.Sprintf("%.1f (%s)", uv.Index, uvBand(uv.Index))
}

// RainChance renders the precipitation probability as a percentage
func RainChance(uv *domain.UVReport) string {
	if uv == nil {
		return NoData
	}
	return Percent(int(math.Round(uv.RainChance * 100)))
}

func uvBand(index float64) string {
	switch {
	case index < 3:
		return "Low"
	case index < 6:
		return "Moderate"
	case index < 8:
		return "High"
	case index < 11:
		return "Very High"
	default:
		return "Extreme"
	}
}
