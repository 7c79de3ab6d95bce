package openweather

import (
	"context"

	"github.com/weatherdash/backend/internal/domain"
)

// Forecast fetches the 5 day / 3 hour forecast stream for coordinates
func (c *Client) Forecast(ctx context.Context, lat, lon float64, units domain.Units) ([]domain.ForecastSlot, error) {
	params := coordParams(lat, lon)
	params.Set("units", string(units))

	var resp forecastResponse
	if err := c.get(ctx, forecastPath, params, &resp); err != nil {
		return nil, err
	}

	slots := make([]domain.ForecastSlot, 0, len(resp.List))
	for _, item := range resp.List {
		condition := ""
		if len(item.Weather) > 0 {
			condition = item.Weather[0].Description
		}
		slots = append(slots, domain.ForecastSlot{
			Timestamp:   item.DtTxt,
			Temperature: item.Main.Temp,
			Condition:   condition,
		})
	}
	return slots, nil
}
