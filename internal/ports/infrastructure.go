package ports

import (
	"time"
)

// WeatherConfig represents weather lookup configuration
type WeatherConfig struct {
	TimeFormat string
}

// MapConfig represents map widget configuration
type MapConfig struct {
	Zoom        int
	TileURL     string
	Attribution string
}

// ViewStoreConfig represents view state store configuration
type ViewStoreConfig struct {
	Type     string
	StateTTL time.Duration
}

// ServerConfig represents server configuration
type ServerConfig struct {
	Port int
}

// ConfigProvider defines the contract for configuration management
type ConfigProvider interface {
	GetWeatherConfig() WeatherConfig
	GetMapConfig() MapConfig
	GetViewStoreConfig() ViewStoreConfig
	GetServerConfig() ServerConfig
}

// Logger defines the contract for structured logging
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
}

// Field represents a log field
type Field struct {
	Key   string
	Value interface{}
}

// F creates a log field
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// MetricsRecorder defines the contract for render pipeline metrics
type MetricsRecorder interface {
	RecordFetch(provider string, outcome string, duration time.Duration)
	RecordRender(phase string)
	RecordCondition(class string)
}
