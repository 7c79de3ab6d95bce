package service

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"go.uber.org/zap"

	"github.com/weatherdash/backend/internal/domain"
)

const (
	minSuggestLength = 2
	suggestLimit     = 5
)

// PlaceService provides city autocomplete
type PlaceService struct {
	provider WeatherProvider
	timeout  time.Duration
	log      *zap.Logger
}

// NewPlaceService creates a new place service. timeout bounds each geocoding call.
func NewPlaceService(provider WeatherProvider, timeout time.Duration, log *zap.Logger) *PlaceService {
	return &PlaceService{
		provider: provider,
		timeout:  timeout,
		log:      log,
	}
}

// Suggest returns up to five unique places matching prefix.
// Short prefixes and upstream failures yield an empty list.
func (s *PlaceService) Suggest(ctx context.Context, prefix string) []domain.CitySuggestion {
	query := strings.TrimSpace(prefix)
	if utf8.RuneCountInString(query) < minSuggestLength {
		return []domain.CitySuggestion{}
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	places, err := s.provider.Geocode(ctx, query, suggestLimit)
	if err != nil {
		s.log.Info("autocomplete lookup failed", zap.String("query", query), zap.Error(err))
		return []domain.CitySuggestion{}
	}

	suggestions := make([]domain.CitySuggestion, 0, len(places))
	seen := make(map[string]struct{}, len(places))
	for _, p := range places {
		key := strings.ToLower(p.Name) + "_" + p.Country + "_" + p.State
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}

		suggestions = append(suggestions, domain.CitySuggestion{
			Name:    p.Name,
			Display: suggestionLabel(p),
			Lat:     p.Lat,
			Lon:     p.Lon,
			Country: p.Country,
			State:   p.State,
		})
	}

	return suggestions
}

// suggestionLabel renders "name, state, country (lat, lon)", dropping missing parts.
// French places spell out the country after their region.
func suggestionLabel(p domain.Place) string {
	coords := fmt.Sprintf("(%.2f, %.2f)", p.Lat, p.Lon)

	switch {
	case p.Country == "FR" && p.State != "":
		return fmt.Sprintf("%s, %s, France %s", p.Name, p.State, coords)
	case p.State != "" && p.Country != "":
		return fmt.Sprintf("%s, %s, %s %s", p.Name, p.State, p.Country, coords)
	case p.Country != "":
		return fmt.Sprintf("%s, %s %s", p.Name, p.Country, coords)
	default:
		return fmt.Sprintf("%s %s", p.Name, coords)
	}
}
