package config

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/weatherdash/backend/internal/domain"
)

// Enrichment sources selectable per deployment
const (
	EnrichmentAirQuality = "air_quality"
	EnrichmentUV         = "uv"
	EnrichmentNone       = "none"
)

// Config holds the application configuration. It is built once at startup
// and passed by reference to the provider client and services.
type Config struct {
	APIKey              string
	Port                string
	BaseURL             string
	Enrichment          string
	DefaultUnits        domain.Units
	RequestTimeout      time.Duration
	AutocompleteTimeout time.Duration
	Env                 string
}

// Load reads an optional .env file and the process environment
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment")
	}

	requestTimeout, err := getDuration("REQUEST_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}
	autocompleteTimeout, err := getDuration("AUTOCOMPLETE_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}

	// Unknown values stay raw so Validate can report them
	units := getEnv("DEFAULT_UNITS", string(domain.Metric))

	cfg := &Config{
		APIKey:              os.Getenv("API_KEY"),
		Port:                getEnv("PORT", "5000"),
		BaseURL:             getEnv("OPENWEATHER_BASE_URL", "https://api.openweathermap.org"),
		Enrichment:          getEnv("ENRICHMENT", EnrichmentAirQuality),
		DefaultUnits:        domain.ParseUnits(units, domain.Units(units)),
		RequestTimeout:      requestTimeout,
		AutocompleteTimeout: autocompleteTimeout,
		Env:                 getEnv("GO_ENV", "development"),
	}

	return cfg, cfg.Validate()
}

// Validate reports missing or malformed settings
func (c *Config) Validate() error {
	if c.APIKey == "" {
		return errors.New("config: API_KEY environment variable is required")
	}
	switch c.Enrichment {
	case EnrichmentAirQuality, EnrichmentUV, EnrichmentNone:
	default:
		return fmt.Errorf("config: unknown ENRICHMENT %q", c.Enrichment)
	}
	if !c.DefaultUnits.Valid() {
		return fmt.Errorf("config: unknown DEFAULT_UNITS %q", c.DefaultUnits)
	}
	if c.RequestTimeout <= 0 || c.AutocompleteTimeout <= 0 {
		return errors.New("config: timeouts must be positive")
	}
	return nil
}

// IsDevelopment reports whether the service runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("config: invalid %s: %w", key, err)
	}
	return d, nil
}
