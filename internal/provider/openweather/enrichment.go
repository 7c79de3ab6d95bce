package openweather

import (
	"context"
	"errors"

	"github.com/weatherdash/backend/internal/domain"
)

// ErrNoData is returned when an enrichment endpoint answers without usable values
var ErrNoData = errors.New("openweather: no data in response")

// AirQuality returns the air quality index (1..5) for coordinates
func (c *Client) AirQuality(ctx context.Context, lat, lon float64) (int, error) {
	var resp airPollutionResponse
	if err := c.get(ctx, airPollutionPath, coordParams(lat, lon), &resp); err != nil {
		return 0, err
	}
	if len(resp.List) == 0 {
		return 0, ErrNoData
	}
	return resp.List[0].Main.AQI, nil
}

// OneCall returns the current UV index and today's precipitation probability
func (c *Client) OneCall(ctx context.Context, lat, lon float64) (domain.OneCallSummary, error) {
	params := coordParams(lat, lon)
	params.Set("exclude", "minutely,hourly,alerts")

	var resp oneCallResponse
	if err := c.get(ctx, oneCallPath, params, &resp); err != nil {
		return domain.OneCallSummary{}, err
	}
	if len(resp.Daily) == 0 {
		return domain.OneCallSummary{}, ErrNoData
	}
	return domain.OneCallSummary{
		UVIndex:    resp.Current.UVI,
		RainChance: resp.Daily[0].Pop,
	}, nil
}
