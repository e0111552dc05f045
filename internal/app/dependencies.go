package app

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"weatherview.app/internal/adapters/external"
	"weatherview.app/internal/adapters/infrastructure"
	"weatherview.app/internal/config"
	"weatherview.app/internal/ports"
	"weatherview.app/pkg/logger"
)

type DependencyContainer struct {
	config  DependencyConfig
	ports   *ports.ApplicationPorts
	closers []io.Closer
}

type DependencyConfig struct {
	Weather   config.WeatherConfig
	ViewStore config.ViewStoreConfig
	LogLevel  string
	// Registerer receives the view metrics; nil means prometheus.DefaultRegisterer
	Registerer prometheus.Registerer
	// HTTPClient replaces the provider's HTTP client, mainly in tests
	HTTPClient external.HTTPClient
}

func NewDependencyContainer(depConfig DependencyConfig, appConfig *config.Config) (*DependencyContainer, error) {
	container := &DependencyContainer{
		config: depConfig,
	}

	if err := container.initializePorts(appConfig); err != nil {
		_ = container.Cleanup()
		return nil, fmt.Errorf("initialize ports: %w", err)
	}

	return container, nil
}

func (c *DependencyContainer) initializePorts(appConfig *config.Config) error {
	slog.Info("Initializing ports...")

	level := logger.ParseLevel(c.config.LogLevel)
	var appLogger ports.Logger = infrastructure.NewSlogLoggerAdapter(nil)

	if c.config.Weather.EnableLogging && c.config.Weather.LogFilePath != "" {
		fileLogger, err := infrastructure.NewFileLoggerAdapter(c.config.Weather.LogFilePath, level)
		if err != nil {
			slog.Warn("Failed to create file logger, falling back to slog", "error", err)
		} else {
			c.closers = append(c.closers, fileLogger)
			appLogger = infrastructure.NewMultiLogger(appLogger, fileLogger)
			slog.Info("File logging enabled", "path", c.config.Weather.LogFilePath)
		}
	}

	var provider ports.WeatherProvider = external.NewOpenWeatherMapProviderAdapter(external.OpenWeatherMapProviderParams{
		APIKey:  c.config.Weather.OpenWeatherMapKey,
		BaseURL: c.config.Weather.OpenWeatherMapBaseURL,
		Timeout: time.Duration(c.config.Weather.HTTPTimeoutSeconds) * time.Second,
		Client:  c.config.HTTPClient,
		Logger:  appLogger,
	})

	if c.config.Weather.EnableLogging {
		provider = external.NewWeatherProviderLoggingDecorator(provider, appLogger)
		slog.Info("Weather provider logging enabled")
	}

	store, err := external.NewStateStoreFactory().CreateStateStore(&c.config.ViewStore)
	if err != nil {
		slog.Error("Failed to create view state store", "error", err)
		return fmt.Errorf("create view state store: %w", err)
	}
	if closer, ok := store.(io.Closer); ok {
		c.closers = append(c.closers, closer)
	}

	slog.Info("View state store initialized",
		"type", c.config.ViewStore.Type.String(),
		"ttl_minutes", c.config.ViewStore.StateTTLMinutes)

	registerer := c.config.Registerer
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	c.ports = &ports.ApplicationPorts{
		WeatherProvider: provider,
		StateStore:      store,

		ConfigProvider: infrastructure.NewConfigProviderAdapter(appConfig),
		Logger:         appLogger,
		Metrics:        infrastructure.NewPrometheusMetricsRecorder(registerer),
	}

	slog.Info("Ports initialized successfully")
	return nil
}

func (c *DependencyContainer) ApplicationPorts() *ports.ApplicationPorts {
	return c.ports
}

// Cleanup closes the state store connection and the log file
func (c *DependencyContainer) Cleanup() error {
	var firstErr error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	c.closers = nil
	return firstErr
}
