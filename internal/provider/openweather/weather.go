package openweather

import (
	"context"
	"fmt"
	"net/url"

	"github.com/weatherdash/backend/internal/domain"
)

// CurrentByName fetches current weather using the provider's own name matching
func (c *Client) CurrentByName(ctx context.Context, city string, units domain.Units) (domain.CurrentConditions, error) {
	params := url.Values{}
	params.Set("q", city)
	params.Set("units", string(units))
	return c.current(ctx, params)
}

// CurrentByCoordinates fetches current weather for a latitude/longitude pair
func (c *Client) CurrentByCoordinates(ctx context.Context, lat, lon float64, units domain.Units) (domain.CurrentConditions, error) {
	params := coordParams(lat, lon)
	params.Set("units", string(units))
	return c.current(ctx, params)
}

func (c *Client) current(ctx context.Context, params url.Values) (domain.CurrentConditions, error) {
	var resp currentResponse
	if err := c.get(ctx, weatherPath, params, &resp); err != nil {
		return domain.CurrentConditions{}, err
	}
	if len(resp.Weather) == 0 {
		return domain.CurrentConditions{}, fmt.Errorf("openweather: weather response for %q has no conditions", resp.Name)
	}

	return domain.CurrentConditions{
		Coordinates: domain.Coordinates{
			Lat:     resp.Coord.Lat,
			Lon:     resp.Coord.Lon,
			Name:    resp.Name,
			Country: resp.Sys.Country,
		},
		Temperature: resp.Main.Temp,
		FeelsLike:   resp.Main.FeelsLike,
		Condition:   resp.Weather[0].Description,
		Humidity:    resp.Main.Humidity,
		WindSpeed:   resp.Wind.Speed,
		WindDeg:     resp.Wind.Deg,
		Clouds:      resp.Clouds.All,
		Visibility:  resp.Visibility,
		Pressure:    resp.Main.Pressure,
		Sunrise:     resp.Sys.Sunrise,
		Sunset:      resp.Sys.Sunset,
		UTCOffset:   resp.Timezone,
	}, nil
}
