package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/weatherdash/backend/internal/domain"
)

const (
	weatherPath      = "/data/2.5/weather"
	forecastPath     = "/data/2.5/forecast"
	airPollutionPath = "/data/2.5/air_pollution"
	oneCallPath      = "/data/3.0/onecall"
	geocodingPath    = "/geo/1.0/direct"
)

// StatusError is returned when the provider answers with a non-2xx status
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("openweather: status %d: %s", e.Code, e.Message)
}

// Client talks to the OpenWeatherMap HTTP API
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

var _ domain.WeatherProvider = (*Client)(nil)

// NewClient creates a new provider client. Every call is bounded by timeout.
func NewClient(apiKey, baseURL string, timeout time.Duration) *Client {
	return &Client{
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// get performs a single GET and decodes the JSON body into out
func (c *Client) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	params.Set("appid", c.apiKey)
	endpoint := c.baseURL + path + "?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("openweather: failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("openweather: request to %s failed: %w", path, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("openweather: failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var errResp struct {
			Message string `json:"message"`
		}
		_ = json.Unmarshal(body, &errResp)
		return &StatusError{Code: resp.StatusCode, Message: errResp.Message}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("openweather: failed to decode %s response: %w", path, err)
	}
	return nil
}

func coordParams(lat, lon float64) url.Values {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	return params
}
