package service

import (
	"github.com/weatherdash/backend/internal/domain"
)

// WeatherProvider is re-exported from domain for convenience
type WeatherProvider = domain.WeatherProvider
