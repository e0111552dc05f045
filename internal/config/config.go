package config

import (
	"strings"

	"github.com/kelseyhightower/envconfig"
	"weatherview.app/pkg/errors"
)

const (
	maxRedisDB           = 15
	maxStateTTLMinutes   = 1440
	maxPortNumber        = 65535
	maxHTTPTimeoutSecond = 120
	maxMapZoom           = 19
)

// Config represents the application configuration structure
type Config struct {
	Server    ServerConfig    `split_words:"true"`
	Weather   WeatherConfig   `split_words:"true"`
	Map       MapConfig       `split_words:"true"`
	ViewStore ViewStoreConfig `split_words:"true"`
	LogLevel  string          `envconfig:"LOG_LEVEL" default:"info"`
}

type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

type WeatherConfig struct {
	OpenWeatherMapKey     string `envconfig:"OPENWEATHERMAP_API_KEY" required:"true"`
	OpenWeatherMapBaseURL string `envconfig:"OPENWEATHERMAP_API_BASE_URL" default:"https://api.openweathermap.org/data/2.5"`
	HTTPTimeoutSeconds    int    `envconfig:"WEATHER_HTTP_TIMEOUT_SECONDS" default:"10"`
	EnableLogging         bool   `envconfig:"WEATHER_ENABLE_LOGGING" default:"true"`
	LogFilePath           string `envconfig:"WEATHER_LOG_FILE_PATH" default:""`
	TimeFormat            string `envconfig:"TIME_FORMAT" default:"15:04"`
}

type MapConfig struct {
	Zoom        int    `envconfig:"MAP_ZOOM" default:"13"`
	TileURL     string `envconfig:"MAP_TILE_URL" default:"https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"`
	Attribution string `envconfig:"MAP_ATTRIBUTION" default:"&copy; <a href=\"https://www.openstreetmap.org/copyright\">OpenStreetMap</a> contributors"`
}

// StoreType represents the backend holding per-view UI state
type StoreType int

const (
	StoreTypeUnknown StoreType = iota
	StoreTypeMemory
	StoreTypeRedis
)

// String returns the string representation of store type
func (s StoreType) String() string {
	switch s {
	case StoreTypeMemory:
		return "memory"
	case StoreTypeRedis:
		return "redis"
	default:
		return "unknown"
	}
}

// IsValid checks if the store type is valid
func (s StoreType) IsValid() bool {
	return s == StoreTypeMemory || s == StoreTypeRedis
}

// StoreTypeFromString converts string to StoreType enum
func StoreTypeFromString(s string) StoreType {
	switch s {
	case "memory":
		return StoreTypeMemory
	case "redis":
		return StoreTypeRedis
	default:
		return StoreTypeUnknown
	}
}

// UnmarshalText implements encoding.TextUnmarshaler for envconfig
func (s *StoreType) UnmarshalText(text []byte) error {
	*s = StoreTypeFromString(string(text))
	return nil
}

// MarshalText implements encoding.TextMarshaler for envconfig
func (s StoreType) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

type ViewStoreConfig struct {
	Type            StoreType   `envconfig:"VIEW_STORE_TYPE" default:"memory"`
	StateTTLMinutes int         `envconfig:"VIEW_STATE_TTL_MINUTES" default:"30"`
	Redis           RedisConfig `split_words:"true"`
}

type RedisConfig struct {
	Addr         string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password     string `envconfig:"REDIS_PASSWORD" default:""`
	DB           int    `envconfig:"REDIS_DB" default:"0"`
	DialTimeout  int    `envconfig:"REDIS_DIAL_TIMEOUT" default:"5"`
	ReadTimeout  int    `envconfig:"REDIS_READ_TIMEOUT" default:"3"`
	WriteTimeout int    `envconfig:"REDIS_WRITE_TIMEOUT" default:"3"`
	KeyPrefix    string `envconfig:"REDIS_KEY_PREFIX" default:"weatherview:view:"`
}

func LoadConfig() (*Config, error) {
	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.NewConfigurationError("error processing config", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Weather.Validate(); err != nil {
		return err
	}
	if err := c.Map.Validate(); err != nil {
		return err
	}
	if err := c.ViewStore.Validate(); err != nil {
		return err
	}
	return nil
}

func (s *ServerConfig) Validate() error {
	if s.Port < 1 || s.Port > maxPortNumber {
		return errors.NewConfigurationError("SERVER_PORT must be between 1 and 65535", nil)
	}
	return nil
}

func (w *WeatherConfig) Validate() error {
	if strings.TrimSpace(w.OpenWeatherMapKey) == "" {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_KEY cannot be empty", nil)
	}
	if !strings.HasPrefix(w.OpenWeatherMapBaseURL, "http://") && !strings.HasPrefix(w.OpenWeatherMapBaseURL, "https://") {
		return errors.NewConfigurationError("OPENWEATHERMAP_API_BASE_URL must start with http:// or https://", nil)
	}
	if w.HTTPTimeoutSeconds < 1 || w.HTTPTimeoutSeconds > maxHTTPTimeoutSecond {
		return errors.NewConfigurationError("WEATHER_HTTP_TIMEOUT_SECONDS must be between 1 and 120", nil)
	}
	if w.TimeFormat == "" {
		return errors.NewConfigurationError("TIME_FORMAT cannot be empty", nil)
	}
	return nil
}

func (m *MapConfig) Validate() error {
	if m.Zoom < 1 || m.Zoom > maxMapZoom {
		return errors.NewConfigurationError("MAP_ZOOM must be between 1 and 19", nil)
	}
	if m.TileURL == "" {
		return errors.NewConfigurationError("MAP_TILE_URL cannot be empty", nil)
	}
	return nil
}

func (v *ViewStoreConfig) Validate() error {
	if !v.Type.IsValid() {
		return errors.NewConfigurationError("VIEW_STORE_TYPE must be one of: memory, redis", nil)
	}
	if v.StateTTLMinutes < 1 || v.StateTTLMinutes > maxStateTTLMinutes {
		return errors.NewConfigurationError("VIEW_STATE_TTL_MINUTES must be between 1 and 1440 minutes", nil)
	}

	if v.Type == StoreTypeRedis {
		return v.Redis.Validate()
	}

	return nil
}

func (r *RedisConfig) Validate() error {
	if r.Addr == "" {
		return errors.NewConfigurationError("REDIS_ADDR cannot be empty when using Redis store", nil)
	}
	if r.DB < 0 || r.DB > maxRedisDB {
		return errors.NewConfigurationError("REDIS_DB must be between 0 and 15", nil)
	}
	if r.DialTimeout < 1 {
		return errors.NewConfigurationError("REDIS_DIAL_TIMEOUT must be at least 1 second", nil)
	}
	if r.ReadTimeout < 1 {
		return errors.NewConfigurationError("REDIS_READ_TIMEOUT must be at least 1 second", nil)
	}
	if r.WriteTimeout < 1 {
		return errors.NewConfigurationError("REDIS_WRITE_TIMEOUT must be at least 1 second", nil)
	}
	return nil
}
