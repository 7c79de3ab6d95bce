package domain

// Place is a single geocoding match
type Place struct {
	Name    string
	Country string
	State   string
	Lat     float64
	Lon     float64
}

// Coordinates converts a geocoding match to coordinates
func (p Place) Coordinates() Coordinates {
	return Coordinates{
		Lat:     p.Lat,
		Lon:     p.Lon,
		Name:    p.Name,
		Country: p.Country,
	}
}

// CitySuggestion is an autocomplete entry shown by the dashboard
type CitySuggestion struct {
	Name    string  `json:"name"`
	Display string  `json:"display"`
	Lat     float64 `json:"lat"`
	Lon     float64 `json:"lon"`
	Country string  `json:"country"`
	State   string  `json:"state"`
}

var popularCities = [...]string{"New York", "London", "Tokyo", "Paris", "Sydney", "Los Angeles", "Berlin"}

// PopularCities returns the static quick-access list rendered on the dashboard
func PopularCities() []string {
	cities := make([]string, len(popularCities))
	copy(cities, popularCities[:])
	return cities
}
