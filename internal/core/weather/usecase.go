package weather

import (
	"context"
	"fmt"
	"strings"
	"time"

	"weatherview.app/internal/ports"
	"weatherview.app/pkg/errors"
)

const outcomeSuccess = "success"

type UseCase struct {
	provider ports.WeatherProvider
	logger   ports.Logger
	metrics  ports.MetricsRecorder
}

type UseCaseDependencies struct {
	Provider ports.WeatherProvider
	Logger   ports.Logger
	Metrics  ports.MetricsRecorder
}

func NewUseCase(deps UseCaseDependencies) (*UseCase, error) {
	if deps.Provider == nil {
		return nil, errors.NewValidationError("weather provider is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	if deps.Metrics == nil {
		return nil, errors.NewValidationError("metrics is required")
	}

	return &UseCase{
		provider: deps.Provider,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
	}, nil
}

// Fetch performs exactly one provider call for the query. Every error it returns
// is an *errors.AppError of a fetch kind (network, parse or not found).
func (uc *UseCase) Fetch(ctx context.Context, query Query) (*Observation, error) {
	uc.logger.Debug("Fetching weather",
		ports.F("city", query.City),
		ports.F("units", query.Units.Param()))

	start := time.Now()
	observation, err := uc.fetch(ctx, query)
	duration := time.Since(start)

	if err != nil {
		kind := errors.FetchKind(err)
		uc.metrics.RecordFetch(uc.provider.GetProviderName(), outcomeLabel(kind), duration)
		uc.logger.Warn("Weather fetch failed",
			ports.F("city", query.City),
			ports.F("kind", kind.String()),
			ports.F("error", err))
		return nil, err
	}

	uc.metrics.RecordFetch(uc.provider.GetProviderName(), outcomeSuccess, duration)
	uc.logger.Debug("Weather fetched",
		ports.F("city", observation.Name),
		ports.F("condition", observation.Condition),
		ports.F("lat", observation.Latitude),
		ports.F("lon", observation.Longitude))
	return observation, nil
}

func (uc *UseCase) fetch(ctx context.Context, query Query) (*Observation, error) {
	data, err := uc.provider.GetCurrentWeather(ctx, query.City, query.Units.Param())
	if err != nil {
		if appErr, ok := errors.As(err); ok && appErr.Type.IsFetchKind() {
			return nil, err
		}
		return nil, errors.NewNetworkError(fmt.Sprintf("weather provider %s failed", uc.provider.GetProviderName()), err)
	}
	if data == nil {
		return nil, errors.NewParseError("weather provider returned no data", nil)
	}

	observation := convertFromPortsWeather(data)
	if err := observation.Validate(); err != nil {
		return nil, errors.NewParseError("invalid weather data from provider: "+err.Error(), nil)
	}
	return observation, nil
}

func convertFromPortsWeather(data *ports.WeatherData) *Observation {
	return &Observation{
		Name:           data.City,
		Latitude:       data.Latitude,
		Longitude:      data.Longitude,
		Temperature:    data.Temperature,
		Humidity:       data.Humidity,
		Condition:      data.Condition,
		Description:    data.Description,
		TimezoneOffset: data.TimezoneOffset,
	}
}

func outcomeLabel(kind errors.ErrorType) string {
	return strings.ToLower(strings.TrimSuffix(kind.String(), "_ERROR"))
}
