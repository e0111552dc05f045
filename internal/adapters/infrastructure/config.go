package infrastructure

import (
	"time"

	"weatherview.app/internal/config"
	"weatherview.app/internal/ports"
)

// ConfigProviderAdapter implements the ConfigProvider port
type ConfigProviderAdapter struct {
	config *config.Config
}

// NewConfigProviderAdapter creates a new config provider adapter
func NewConfigProviderAdapter(cfg *config.Config) *ConfigProviderAdapter {
	return &ConfigProviderAdapter{
		config: cfg,
	}
}

// GetServerConfig returns server configuration
func (c *ConfigProviderAdapter) GetServerConfig() ports.ServerConfig {
	return ports.ServerConfig{
		Port: c.config.Server.Port,
	}
}

// GetWeatherConfig returns weather configuration
func (c *ConfigProviderAdapter) GetWeatherConfig() ports.WeatherConfig {
	return ports.WeatherConfig{
		TimeFormat: c.config.Weather.TimeFormat,
	}
}

// GetMapConfig returns map widget configuration
func (c *ConfigProviderAdapter) GetMapConfig() ports.MapConfig {
	return ports.MapConfig{
		Zoom:        c.config.Map.Zoom,
		TileURL:     c.config.Map.TileURL,
		Attribution: c.config.Map.Attribution,
	}
}

// GetViewStoreConfig returns view state store configuration
func (c *ConfigProviderAdapter) GetViewStoreConfig() ports.ViewStoreConfig {
	return ports.ViewStoreConfig{
		Type:     c.config.ViewStore.Type.String(),
		StateTTL: time.Duration(c.config.ViewStore.StateTTLMinutes) * time.Minute,
	}
}
