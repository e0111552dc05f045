// Package ports defines the interfaces for external dependencies in our hexagonal architecture.
// These interfaces are implemented by adapters.
package ports

// ApplicationPorts aggregates all ports for dependency injection
type ApplicationPorts struct {
	WeatherProvider WeatherProvider
	StateStore      StateStore

	ConfigProvider ConfigProvider
	Logger         Logger
	Metrics        MetricsRecorder
}
