package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherview.app/internal/adapters/external"
	"weatherview.app/internal/core/view"
	"weatherview.app/internal/core/weather"
	"weatherview.app/internal/mocks"
	"weatherview.app/internal/ports"
	"weatherview.app/pkg/errors"
)

const testViewID = "3f2b8c1e-9a4d-4e6f-8b2a-1c5d7e9f0a12"

type testServer struct {
	router   *gin.Engine
	provider *mocks.WeatherProvider
	store    *external.MemoryStateStore
}

type stubHealth struct {
	results map[string]ports.HealthStatus
}

func (s stubHealth) CheckAll(ctx context.Context) map[string]ports.HealthStatus {
	return s.results
}

func setupViewTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	provider := mocks.NewWeatherProvider(t)
	provider.On("GetProviderName").Return("openweathermap").Maybe()

	logger := mocks.NewLogger()
	metrics := mocks.NewMetricsRecorder()
	store := external.NewMemoryStateStore()

	useCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		Provider: provider,
		Logger:   logger,
		Metrics:  metrics,
	})
	require.NoError(t, err)

	controller, err := view.NewController(view.ControllerDependencies{
		Fetcher:  useCase,
		Store:    store,
		Renderer: view.NewRenderer(view.RendererConfig{}),
		Logger:   logger,
		Metrics:  metrics,
		StateTTL: time.Minute,
		Clock:    func() time.Time { return time.Date(2024, 3, 10, 14, 5, 0, 0, time.UTC) },
	})
	require.NoError(t, err)

	server, err := NewHTTPServerAdapter(ServerOptions{
		Config:     ServerConfig{Port: 8080},
		Controller: controller,
		HealthChecker: stubHealth{results: map[string]ports.HealthStatus{
			"viewStore": {Component: "viewStore", Status: "healthy"},
		}},
		NewViewID: func() string { return testViewID },
	})
	require.NoError(t, err)

	return &testServer{router: server.GetRouter(), provider: provider, store: store}
}

func londonData() *ports.WeatherData {
	return &ports.WeatherData{
		City:        "London",
		Latitude:    51.5,
		Longitude:   -0.12,
		Temperature: 15,
		Humidity:    70,
		Condition:   "Rain",
		Description: "light rain",
	}
}

func doRequest(router *gin.Engine, method, target string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeResult(t *testing.T, w *httptest.ResponseRecorder) view.Result {
	t.Helper()
	var result view.Result
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &result))
	return result
}

func TestIndex_IssuesViewID(t *testing.T) {
	ts := setupViewTestServer(t)

	w := doRequest(ts.router, http.MethodGet, "/")

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, `data-view-id="`+testViewID+`"`)
	assert.Contains(t, body, `data-failure-html="&lt;p&gt;City not found or error fetching data.&lt;/p&gt;"`)
	assert.Contains(t, body, `id="cityInput"`)
	assert.Contains(t, body, `id="unitToggle"`)
	assert.Contains(t, body, `id="getWeatherBtn"`)
	assert.Contains(t, body, `id="weatherResult"`)
	assert.Contains(t, body, `id="map"`)
	assert.Contains(t, body, "leaflet")
}

func TestGetWeather_Success(t *testing.T) {
	ts := setupViewTestServer(t)
	ts.provider.On("GetCurrentWeather", mock.Anything, "London", "metric").Return(londonData(), nil).Once()

	w := doRequest(ts.router, http.MethodGet, "/api/weather?city=London&view="+testViewID)

	require.Equal(t, http.StatusOK, w.Code)
	result := decodeResult(t, w)
	assert.Nil(t, result.Failure)
	assert.Equal(t, view.PhaseRendered, result.State.Phase)
	assert.Equal(t, weather.ConditionRainy, result.State.Display.BodyClass)
	assert.Contains(t, result.State.Display.ResultHTML, "Temperature: 15°C")
	require.NotEmpty(t, result.Patches)
	assert.Equal(t, view.OpClearBodyClasses, result.Patches[0].Op)

	_, err := ts.store.Get(context.Background(), testViewID)
	assert.NoError(t, err)
}

func TestGetWeather_FahrenheitToggle(t *testing.T) {
	ts := setupViewTestServer(t)
	ts.provider.On("GetCurrentWeather", mock.Anything, "Boston", "imperial").Return(londonData(), nil).Once()

	w := doRequest(ts.router, http.MethodGet, "/api/weather?city=Boston&fahrenheit=true&view="+testViewID)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, decodeResult(t, w).State.Display.ResultHTML, "°F")
}

func TestGetWeather_UnitsOverridesToggle(t *testing.T) {
	ts := setupViewTestServer(t)
	ts.provider.On("GetCurrentWeather", mock.Anything, "Oslo", "metric").Return(londonData(), nil).Once()

	w := doRequest(ts.router, http.MethodGet, "/api/weather?city=Oslo&fahrenheit=true&units=metric&view="+testViewID)

	require.Equal(t, http.StatusOK, w.Code)
}

func TestGetWeather_NotFoundIsRenderedFailure(t *testing.T) {
	ts := setupViewTestServer(t)
	ts.provider.On("GetCurrentWeather", mock.Anything, "Atlantis", "metric").
		Return(nil, errors.NewNotFoundError("city not found")).Once()

	w := doRequest(ts.router, http.MethodGet, "/api/weather?city=Atlantis&view="+testViewID)

	require.Equal(t, http.StatusOK, w.Code)
	result := decodeResult(t, w)
	require.NotNil(t, result.Failure)
	assert.Equal(t, "NOT_FOUND_ERROR", result.Failure.Kind)
	assert.Equal(t, view.PhaseFailed, result.State.Phase)
	require.Len(t, result.Patches, 1)
	assert.Equal(t, view.FailureHTML, result.Patches[0].HTML)
}

func TestGetWeather_EmptyCityIsForwarded(t *testing.T) {
	ts := setupViewTestServer(t)
	ts.provider.On("GetCurrentWeather", mock.Anything, "", "metric").
		Return(nil, errors.NewNotFoundError("Nothing to geocode")).Once()

	w := doRequest(ts.router, http.MethodGet, "/api/weather?view="+testViewID)

	require.Equal(t, http.StatusOK, w.Code)
	assert.NotNil(t, decodeResult(t, w).Failure)
}

func TestGetWeather_MissingViewGetsOne(t *testing.T) {
	ts := setupViewTestServer(t)
	ts.provider.On("GetCurrentWeather", mock.Anything, "London", "metric").Return(londonData(), nil).Once()

	w := doRequest(ts.router, http.MethodGet, "/api/weather?city=London")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, testViewID, decodeResult(t, w).State.ViewID)
}

func TestGetWeather_NoMapContainer(t *testing.T) {
	ts := setupViewTestServer(t)
	ts.provider.On("GetCurrentWeather", mock.Anything, "London", "metric").Return(londonData(), nil).Once()

	w := doRequest(ts.router, http.MethodGet, "/api/weather?city=London&map=false&view="+testViewID)

	require.Equal(t, http.StatusOK, w.Code)
	result := decodeResult(t, w)
	assert.Nil(t, result.State.Map)
	assert.Equal(t, view.OpSkipMap, result.Patches[len(result.Patches)-1].Op)
}

func TestGetWeather_ResetViewKeepsPageMap(t *testing.T) {
	ts := setupViewTestServer(t)
	ts.provider.On("GetCurrentWeather", mock.Anything, "London", "metric").Return(londonData(), nil).Twice()

	w := doRequest(ts.router, http.MethodGet, "/api/weather?city=London&view="+testViewID)
	require.Equal(t, http.StatusOK, w.Code)
	first := decodeResult(t, w)
	require.NotNil(t, first.State.Map)
	pageMap := first.State.Map.Instance

	w = doRequest(ts.router, http.MethodDelete, "/api/views/"+testViewID)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(ts.router, http.MethodGet, "/api/weather?city=London&view="+testViewID+"&mapInstance="+pageMap)
	require.Equal(t, http.StatusOK, w.Code)
	second := decodeResult(t, w)

	for _, p := range second.Patches {
		assert.NotEqual(t, view.OpCreateMap, p.Op)
	}
	require.NotNil(t, second.State.Map)
	assert.Equal(t, pageMap, second.State.Map.Instance)
	assert.Equal(t, view.OpAddMarker, second.Patches[len(second.Patches)-1].Op)
}

func TestGetWeather_InvalidQuery(t *testing.T) {
	tests := []struct {
		name  string
		query string
	}{
		{"BadViewID", "city=London&view=not-a-uuid"},
		{"BadUnits", "city=London&units=kelvin&view=" + testViewID},
		{"BadMapFlag", "city=London&map=maybe&view=" + testViewID},
		{"BadMapInstance", "city=London&mapInstance=leaflet-1&view=" + testViewID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := setupViewTestServer(t)

			w := doRequest(ts.router, http.MethodGet, "/api/weather?"+tt.query)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			var resp ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, "Invalid request format", resp.Error)
			assert.Equal(t, view.FailureHTML, resp.ResultHTML)
		})
	}
}

func TestViews_CurrentAndReset(t *testing.T) {
	ts := setupViewTestServer(t)
	ts.provider.On("GetCurrentWeather", mock.Anything, "London", "metric").Return(londonData(), nil).Once()

	w := doRequest(ts.router, http.MethodGet, "/api/views/"+testViewID)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"phase":"idle"`)

	doRequest(ts.router, http.MethodGet, "/api/weather?city=London&view="+testViewID)

	w = doRequest(ts.router, http.MethodGet, "/api/views/"+testViewID)
	assert.Contains(t, w.Body.String(), `"phase":"rendered"`)

	w = doRequest(ts.router, http.MethodDelete, "/api/views/"+testViewID)
	require.Equal(t, http.StatusOK, w.Code)

	w = doRequest(ts.router, http.MethodGet, "/api/views/"+testViewID)
	assert.Contains(t, w.Body.String(), `"phase":"idle"`)
}

func TestViews_InvalidID(t *testing.T) {
	ts := setupViewTestServer(t)

	for _, method := range []string{http.MethodGet, http.MethodDelete} {
		w := doRequest(ts.router, method, "/api/views/"+strings.Repeat("x", 36))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}
}

func TestHealthAndMetricsRoutes(t *testing.T) {
	ts := setupViewTestServer(t)

	w := doRequest(ts.router, http.MethodGet, "/api/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "viewStore")

	w = doRequest(ts.router, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHTTPServerAdapter_Addr(t *testing.T) {
	server, err := NewHTTPServerAdapter(ServerOptions{
		Config:        ServerConfig{Port: 9091},
		Controller:    &view.Controller{},
		HealthChecker: stubHealth{},
	})
	require.NoError(t, err)

	assert.Equal(t, ":9091", server.Addr())
}

func TestNewHTTPServerAdapter_Validation(t *testing.T) {
	_, err := NewHTTPServerAdapter(ServerOptions{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "view controller is required")
}
