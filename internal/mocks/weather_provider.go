package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
	"weatherview.app/internal/ports"
)

// WeatherProvider is a testify mock for ports.WeatherProvider
type WeatherProvider struct {
	mock.Mock
}

// NewWeatherProvider creates a mock that asserts its expectations on test cleanup
func NewWeatherProvider(t interface {
	mock.TestingT
	Cleanup(func())
}) *WeatherProvider {
	m := &WeatherProvider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

func (m *WeatherProvider) GetCurrentWeather(ctx context.Context, city string, units string) (*ports.WeatherData, error) {
	args := m.Called(ctx, city, units)
	var data *ports.WeatherData
	if v := args.Get(0); v != nil {
		data = v.(*ports.WeatherData)
	}
	return data, args.Error(1)
}

func (m *WeatherProvider) GetProviderName() string {
	args := m.Called()
	return args.String(0)
}
