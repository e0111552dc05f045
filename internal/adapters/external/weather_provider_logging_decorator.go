package external

import (
	"context"
	"time"

	"weatherview.app/internal/ports"
)

// WeatherProviderLoggingDecorator decorates weather providers with structured logging
type WeatherProviderLoggingDecorator struct {
	provider ports.WeatherProvider
	logger   ports.Logger
}

// NewWeatherProviderLoggingDecorator creates a new logging decorator for weather providers
func NewWeatherProviderLoggingDecorator(provider ports.WeatherProvider, logger ports.Logger) ports.WeatherProvider {
	return &WeatherProviderLoggingDecorator{
		provider: provider,
		logger:   logger,
	}
}

// GetCurrentWeather wraps the provider call with request, response and error logs
func (d *WeatherProviderLoggingDecorator) GetCurrentWeather(ctx context.Context, city string, units string) (*ports.WeatherData, error) {
	providerName := d.provider.GetProviderName()

	d.logger.Info("Weather API request started",
		ports.F("provider", providerName),
		ports.F("city", city),
		ports.F("units", units),
		ports.F("event", "request"))

	startTime := time.Now()
	weatherData, err := d.provider.GetCurrentWeather(ctx, city, units)
	duration := time.Since(startTime)

	if err != nil {
		d.logger.Error("Weather API request failed",
			ports.F("provider", providerName),
			ports.F("city", city),
			ports.F("event", "error"),
			ports.F("duration_ms", duration.Milliseconds()),
			ports.F("error", err.Error()))
		return nil, err
	}

	d.logger.Info("Weather API request completed",
		ports.F("provider", providerName),
		ports.F("city", city),
		ports.F("event", "response"),
		ports.F("duration_ms", duration.Milliseconds()),
		ports.F("condition", weatherData.Condition),
		ports.F("temperature", weatherData.Temperature),
		ports.F("humidity", weatherData.Humidity),
		ports.F("description", weatherData.Description))

	return weatherData, nil
}

// GetProviderName returns the wrapped provider's name so metrics labels stay stable
func (d *WeatherProviderLoggingDecorator) GetProviderName() string {
	return d.provider.GetProviderName()
}
