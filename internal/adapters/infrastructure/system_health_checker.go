package infrastructure

import (
	"context"

	"weatherview.app/internal/ports"
)

// SystemHealthChecker aggregates all health checks
type SystemHealthChecker struct {
	storeChecker    ports.HealthChecker
	providerChecker ports.HealthChecker
	configProvider  ports.ConfigProvider
}

// SystemHealthCheckerConfig holds the configuration for creating a system health checker
type SystemHealthCheckerConfig struct {
	StoreChecker    ports.HealthChecker
	ProviderChecker ports.HealthChecker
	ConfigProvider  ports.ConfigProvider
}

// NewSystemHealthChecker creates a new system health checker
func NewSystemHealthChecker(config SystemHealthCheckerConfig) *SystemHealthChecker {
	return &SystemHealthChecker{
		storeChecker:    config.StoreChecker,
		providerChecker: config.ProviderChecker,
		configProvider:  config.ConfigProvider,
	}
}

// CheckAll performs health checks on all components
func (s *SystemHealthChecker) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	results := make(map[string]ports.HealthStatus)

	if s.storeChecker != nil {
		results["viewStore"] = s.storeChecker.Check(ctx)
	}

	if s.providerChecker != nil {
		results["weatherProvider"] = s.providerChecker.Check(ctx)
	}

	if s.configProvider != nil {
		mapConfig := s.configProvider.GetMapConfig()
		storeConfig := s.configProvider.GetViewStoreConfig()
		results["config"] = ports.HealthStatus{
			Component: "config",
			Status:    statusHealthy,
			Details: map[string]interface{}{
				"mapZoom":    mapConfig.Zoom,
				"viewStore":  storeConfig.Type,
				"stateTTL":   storeConfig.StateTTL.String(),
				"timeFormat": s.configProvider.GetWeatherConfig().TimeFormat,
			},
		}
	}

	return results
}
