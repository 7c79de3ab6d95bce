// Package presentation turns typed readings into the display strings the
// dashboard renders. Every numeric weather value leaves here with its unit.
package presentation

import (
	"fmt"
	"time"

	"github.com/weatherdash/backend/internal/domain"
)

// Sentinels rendered when data is unavailable
const (
	NoTime       = "--:--"
	NoData       = "No data"
	NoAirQuality = "⚪ No data"
)

const forecastDateLayout = "Mon, Jan 02"

// Temperature truncates toward zero and appends °C or °F
func Temperature(v float64, units domain.Units) string {
	return fmt.Sprintf("%d%s", int(v), units.TemperatureSuffix())
}

// Percent renders an integer percentage
func Percent(v int) string {
	return fmt.Sprintf("%d%%", v)
}

// Wind renders a wind speed already expressed in the units' speed unit
func Wind(v float64, units domain.Units) string {
	return fmt.Sprintf("%.1f %s", v, units.SpeedSuffix())
}

// Direction renders a wind bearing in degrees
func Direction(deg int) string {
	return fmt.Sprintf("%d°", deg)
}

// Visibility renders metres as kilometres
func Visibility(meters int) string {
	return fmt.Sprintf("%.1f km", float64(meters)/1000)
}

// Pressure renders hectopascals
func Pressure(hPa int) string {
	return fmt.Sprintf("%d hPa", hPa)
}

// Clock renders t as HH:MM at the given UTC offset, or NoTime for the zero time
func Clock(t time.Time, utcOffset int) string {
	if t.IsZero() {
		return NoTime
	}
	return t.In(time.FixedZone("", utcOffset)).Format("15:04")
}

// ForecastDate renders a forecast day as "Mon, Jan 02"
func ForecastDate(t time.Time) string {
	return t.Format(forecastDateLayout)
}
