package external

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherview.app/internal/mocks"
	"weatherview.app/pkg/errors"
)

const londonResponse = `{
	"coord": {"lon": -0.12, "lat": 51.5},
	"weather": [{"id": 500, "main": "Rain", "description": "light rain", "icon": "10d"}],
	"main": {"temp": 15, "feels_like": 14.2, "humidity": 70},
	"timezone": 0,
	"name": "London",
	"cod": 200
}`

func newTestProvider(baseURL string) *OpenWeatherMapProviderAdapter {
	return NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		APIKey:  "test-api-key",
		BaseURL: baseURL,
		Timeout: 2 * time.Second,
		Logger:  mocks.NewLogger(),
	}).(*OpenWeatherMapProviderAdapter)
}

func serveJSON(t *testing.T, status int, body string, check func(r *http.Request)) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if check != nil {
			check(r)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, err := w.Write([]byte(body))
		assert.NoError(t, err)
	}))
	t.Cleanup(server.Close)
	return server
}

func TestOpenWeatherMapProvider_GetCurrentWeather_Success(t *testing.T) {
	server := serveJSON(t, http.StatusOK, londonResponse, func(r *http.Request) {
		assert.Equal(t, "/weather", r.URL.Path)
		assert.Equal(t, "London", r.URL.Query().Get("q"))
		assert.Equal(t, "test-api-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
	})

	data, err := newTestProvider(server.URL).GetCurrentWeather(context.Background(), "London", "metric")

	require.NoError(t, err)
	assert.Equal(t, "London", data.City)
	assert.Equal(t, 51.5, data.Latitude)
	assert.Equal(t, -0.12, data.Longitude)
	assert.Equal(t, 15.0, data.Temperature)
	assert.Equal(t, 70.0, data.Humidity)
	assert.Equal(t, "Rain", data.Condition)
	assert.Equal(t, "light rain", data.Description)
	assert.Equal(t, 0, data.TimezoneOffset)
	assert.False(t, data.Timestamp.IsZero())
}

func TestOpenWeatherMapProvider_EscapesCityAndForwardsUnits(t *testing.T) {
	server := serveJSON(t, http.StatusOK, londonResponse, func(r *http.Request) {
		assert.Equal(t, "São Paulo&x=1", r.URL.Query().Get("q"))
		assert.Equal(t, "imperial", r.URL.Query().Get("units"))
		assert.Empty(t, r.URL.Query().Get("x"))
	})

	_, err := newTestProvider(server.URL+"/").GetCurrentWeather(context.Background(), "São Paulo&x=1", "imperial")
	require.NoError(t, err)
}

func TestOpenWeatherMapProvider_EmptyCityIsForwarded(t *testing.T) {
	called := false
	server := serveJSON(t, http.StatusBadRequest, `{"cod":"400","message":"Nothing to geocode"}`, func(r *http.Request) {
		called = true
		assert.True(t, r.URL.Query().Has("q"))
		assert.Equal(t, "", r.URL.Query().Get("q"))
	})

	data, err := newTestProvider(server.URL).GetCurrentWeather(context.Background(), "", "metric")

	assert.True(t, called)
	assert.Nil(t, data)
	assert.True(t, errors.IsNotFoundError(err))
	assert.Contains(t, err.Error(), "Nothing to geocode")
}

func TestOpenWeatherMapProvider_StatusMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		kind    errors.ErrorType
		message string
	}{
		{"NotFound", http.StatusNotFound, `{"cod":"404","message":"city not found"}`, errors.NotFoundError, "city not found"},
		{"Unauthorized", http.StatusUnauthorized, `{"cod":401,"message":"Invalid API key"}`, errors.NetworkError, "returned status 401"},
		{"ServerError", http.StatusBadGateway, `upstream down`, errors.NetworkError, "upstream down"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := serveJSON(t, tt.status, tt.body, nil)

			data, err := newTestProvider(server.URL).GetCurrentWeather(context.Background(), "Atlantis", "metric")

			assert.Nil(t, data)
			appErr, ok := errors.As(err)
			require.True(t, ok)
			assert.Equal(t, tt.kind, appErr.Type)
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestOpenWeatherMapProvider_ParseFailures(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		message string
	}{
		{"InvalidJSON", `{"invalid": json`, "failed to decode"},
		{"MissingCoord", `{"name":"X","main":{"temp":1,"humidity":2},"weather":[{"main":"Clear"}]}`, "no coord"},
		{"MissingMain", `{"name":"X","coord":{"lat":1,"lon":2},"weather":[{"main":"Clear"}]}`, "no main"},
		{"EmptyWeather", `{"name":"X","coord":{"lat":1,"lon":2},"main":{"temp":1,"humidity":2},"weather":[]}`, "no weather entries"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := serveJSON(t, http.StatusOK, tt.body, nil)

			data, err := newTestProvider(server.URL).GetCurrentWeather(context.Background(), "X", "metric")

			assert.Nil(t, data)
			assert.True(t, errors.IsParseError(err))
			assert.Contains(t, err.Error(), tt.message)
		})
	}
}

func TestOpenWeatherMapProvider_NetworkError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	data, err := newTestProvider(baseURL).GetCurrentWeather(context.Background(), "London", "metric")

	assert.Nil(t, data)
	assert.True(t, errors.IsNetworkError(err))
	assert.Contains(t, err.Error(), "failed to call OpenWeatherMap")
}

func TestOpenWeatherMapProvider_ContextCancelled(t *testing.T) {
	server := serveJSON(t, http.StatusOK, londonResponse, nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestProvider(server.URL).GetCurrentWeather(ctx, "London", "metric")

	assert.True(t, errors.IsNetworkError(err))
}

func TestOpenWeatherMapProvider_Defaults(t *testing.T) {
	provider := NewOpenWeatherMapProviderAdapter(OpenWeatherMapProviderParams{
		APIKey: "k",
		Logger: mocks.NewLogger(),
	}).(*OpenWeatherMapProviderAdapter)

	assert.Equal(t, "openweathermap", provider.GetProviderName())
	assert.Equal(t, defaultOpenWeatherMapBaseURL, provider.baseURL)
	assert.Equal(t,
		"https://api.openweathermap.org/data/2.5/weather?appid=k&q=London&units=metric",
		provider.requestURL("London", "metric"))
}
