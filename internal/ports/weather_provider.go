package ports

import (
	"context"
	"time"
)

// WeatherData represents current conditions as reported by a provider
type WeatherData struct {
	City           string
	Latitude       float64
	Longitude      float64
	Temperature    float64
	Humidity       float64
	Condition      string
	Description    string
	TimezoneOffset int
	Timestamp      time.Time
}

// WeatherProvider defines the contract for weather data providers.
// units is the provider-side unit system parameter ("metric" or "imperial").
type WeatherProvider interface {
	GetCurrentWeather(ctx context.Context, city string, units string) (*WeatherData, error)
	GetProviderName() string
}
