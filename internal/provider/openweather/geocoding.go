package openweather

import (
	"context"
	"net/url"
	"strconv"

	"github.com/weatherdash/backend/internal/domain"
)

// Geocode resolves a free-text location, most relevant match first
func (c *Client) Geocode(ctx context.Context, query string, limit int) ([]domain.Place, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))

	var results []geocodingResult
	if err := c.get(ctx, geocodingPath, params, &results); err != nil {
		return nil, err
	}

	places := make([]domain.Place, 0, len(results))
	for _, r := range results {
		places = append(places, domain.Place{
			Name:    r.Name,
			Country: r.Country,
			State:   r.State,
			Lat:     r.Lat,
			Lon:     r.Lon,
		})
	}
	return places, nil
}
