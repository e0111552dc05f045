package infrastructure

import (
	"context"

	"weatherview.app/internal/ports"
)

const (
	statusHealthy   = "healthy"
	statusUnhealthy = "unhealthy"
)

// StateStoreHealthChecker pings the view state store
type StateStoreHealthChecker struct {
	store ports.StateStore
}

func NewStateStoreHealthChecker(store ports.StateStore) *StateStoreHealthChecker {
	return &StateStoreHealthChecker{store: store}
}

func (s *StateStoreHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "viewStore",
		Status:    statusHealthy,
		Details:   map[string]interface{}{},
	}

	if s.store == nil {
		status.Status = statusUnhealthy
		status.Error = "view state store is not configured"
		return status
	}

	status.Details["type"] = s.store.Name()
	if err := s.store.Ping(ctx); err != nil {
		status.Status = statusUnhealthy
		status.Error = err.Error()
	}

	return status
}

// WeatherProviderHealthChecker reports whether a provider is wired.
// It does not call the upstream API, so checks never spend quota.
type WeatherProviderHealthChecker struct {
	provider ports.WeatherProvider
}

func NewWeatherProviderHealthChecker(provider ports.WeatherProvider) *WeatherProviderHealthChecker {
	return &WeatherProviderHealthChecker{provider: provider}
}

func (w *WeatherProviderHealthChecker) Check(ctx context.Context) ports.HealthStatus {
	status := ports.HealthStatus{
		Component: "weatherProvider",
		Status:    statusHealthy,
		Details: map[string]interface{}{
			"configured": true,
		},
	}

	if w.provider == nil {
		status.Status = statusUnhealthy
		status.Error = "weather provider is not available"
		status.Details["configured"] = false
		return status
	}

	status.Details["provider"] = w.provider.GetProviderName()
	return status
}
