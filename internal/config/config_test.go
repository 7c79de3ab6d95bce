package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weatherdash/backend/internal/domain"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("API_KEY", "test_key")
	t.Setenv("PORT", "")
	t.Setenv("ENRICHMENT", "")
	t.Setenv("DEFAULT_UNITS", "")
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("AUTOCOMPLETE_TIMEOUT", "")
	t.Setenv("OPENWEATHER_BASE_URL", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "test_key", cfg.APIKey)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "https://api.openweathermap.org", cfg.BaseURL)
	assert.Equal(t, EnrichmentAirQuality, cfg.Enrichment)
	assert.Equal(t, domain.Metric, cfg.DefaultUnits)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 5*time.Second, cfg.AutocompleteTimeout)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("API_KEY", "test_key")
	t.Setenv("PORT", "8081")
	t.Setenv("ENRICHMENT", "uv")
	t.Setenv("DEFAULT_UNITS", "imperial")
	t.Setenv("REQUEST_TIMEOUT", "7s")
	t.Setenv("AUTOCOMPLETE_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8081", cfg.Port)
	assert.Equal(t, EnrichmentUV, cfg.Enrichment)
	assert.Equal(t, domain.Imperial, cfg.DefaultUnits)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 2*time.Second, cfg.AutocompleteTimeout)
}

func TestLoadNormalisesUnits(t *testing.T) {
	t.Setenv("API_KEY", "test_key")
	t.Setenv("ENRICHMENT", "")
	t.Setenv("REQUEST_TIMEOUT", "")
	t.Setenv("AUTOCOMPLETE_TIMEOUT", "")

	for _, raw := range []string{"Imperial", " IMPERIAL ", "imperial"} {
		t.Setenv("DEFAULT_UNITS", raw)

		cfg, err := Load()
		require.NoError(t, err, "DEFAULT_UNITS=%q", raw)
		assert.Equal(t, domain.Imperial, cfg.DefaultUnits)
	}
}

func TestIsDevelopment(t *testing.T) {
	assert.True(t, (&Config{Env: "development"}).IsDevelopment())
	assert.False(t, (&Config{Env: "production"}).IsDevelopment())
	assert.False(t, (&Config{}).IsDevelopment())
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name     string
		env      map[string]string
		errorMsg string
	}{
		{
			name:     "missing api key",
			env:      map[string]string{"API_KEY": ""},
			errorMsg: "API_KEY",
		},
		{
			name:     "unknown enrichment",
			env:      map[string]string{"API_KEY": "k", "ENRICHMENT": "pollen"},
			errorMsg: "ENRICHMENT",
		},
		{
			name:     "unknown units",
			env:      map[string]string{"API_KEY": "k", "DEFAULT_UNITS": "kelvin"},
			errorMsg: "DEFAULT_UNITS",
		},
		{
			name:     "bad timeout",
			env:      map[string]string{"API_KEY": "k", "REQUEST_TIMEOUT": "soon"},
			errorMsg: "REQUEST_TIMEOUT",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range []string{"API_KEY", "ENRICHMENT", "DEFAULT_UNITS", "REQUEST_TIMEOUT", "AUTOCOMPLETE_TIMEOUT"} {
				t.Setenv(key, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}
