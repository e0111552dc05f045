// Package external provides adapters for external services
// These adapters implement ports for the weather provider and the view state stores
package external

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"weatherview.app/internal/ports"
	"weatherview.app/pkg/errors"
)

const (
	defaultOpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5"
	defaultHTTPTimeout           = 10 * time.Second
	maxErrorBodyBytes            = 4096
)

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// OpenWeatherMapProviderAdapter implements WeatherProvider port for OpenWeatherMap
type OpenWeatherMapProviderAdapter struct {
	apiKey  string
	baseURL string
	client  HTTPClient
	logger  ports.Logger
}

// OpenWeatherMapProviderParams holds parameters for creating OpenWeatherMap provider
type OpenWeatherMapProviderParams struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
	Client  HTTPClient
	Logger  ports.Logger
}

// OpenWeatherMapResponse represents the parts of the current weather response the view uses.
// Coord and Main are pointers so that an absent object can be told apart from zero values.
type OpenWeatherMapResponse struct {
	Name     string `json:"name"`
	Timezone int    `json:"timezone"`
	Coord    *struct {
		Lat float64 `json:"lat"`
		Lon float64 `json:"lon"`
	} `json:"coord"`
	Main *struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

type openWeatherMapErrorResponse struct {
	Message string `json:"message"`
}

// NewOpenWeatherMapProviderAdapter creates a new OpenWeatherMap provider adapter
func NewOpenWeatherMapProviderAdapter(params OpenWeatherMapProviderParams) ports.WeatherProvider {
	baseURL := strings.TrimRight(params.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultOpenWeatherMapBaseURL
	}

	client := params.Client
	if client == nil {
		timeout := params.Timeout
		if timeout <= 0 {
			timeout = defaultHTTPTimeout
		}
		client = &http.Client{Timeout: timeout}
	}

	return &OpenWeatherMapProviderAdapter{
		apiKey:  params.APIKey,
		baseURL: baseURL,
		client:  client,
		logger:  params.Logger,
	}
}

// GetCurrentWeather retrieves current weather from OpenWeatherMap. The city is
// sent as given, including an empty string.
func (p *OpenWeatherMapProviderAdapter) GetCurrentWeather(ctx context.Context, city string, units string) (*ports.WeatherData, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.requestURL(city, units), nil)
	if err != nil {
		return nil, errors.NewNetworkError("failed to build OpenWeatherMap request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, errors.NewNetworkError("failed to call OpenWeatherMap", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			p.logger.Warn("Failed to close OpenWeatherMap response body", ports.F("error", closeErr))
		}
	}()

	if resp.StatusCode == http.StatusNotFound || resp.StatusCode == http.StatusBadRequest {
		return nil, errors.NewNotFoundError(fmt.Sprintf("city %q not found: %s", city, p.errorMessage(resp.Body)))
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, errors.NewNetworkError(
			fmt.Sprintf("OpenWeatherMap returned status %d", resp.StatusCode),
			fmt.Errorf("%s", p.errorMessage(resp.Body)))
	}

	var apiResp OpenWeatherMapResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return nil, errors.NewParseError("failed to decode OpenWeatherMap response", err)
	}

	return toWeatherData(&apiResp)
}

// GetProviderName returns the name of this weather provider
func (p *OpenWeatherMapProviderAdapter) GetProviderName() string {
	return "openweathermap"
}

func (p *OpenWeatherMapProviderAdapter) requestURL(city, units string) string {
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", p.apiKey)
	query.Set("units", units)
	return p.baseURL + "/weather?" + query.Encode()
}

func (p *OpenWeatherMapProviderAdapter) errorMessage(body io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(body, maxErrorBodyBytes))
	if err != nil || len(raw) == 0 {
		return "no details"
	}
	var apiErr openWeatherMapErrorResponse
	if json.Unmarshal(raw, &apiErr) == nil && apiErr.Message != "" {
		return apiErr.Message
	}
	return strings.TrimSpace(string(raw))
}

func toWeatherData(apiResp *OpenWeatherMapResponse) (*ports.WeatherData, error) {
	switch {
	case apiResp.Coord == nil:
		return nil, errors.NewParseError("OpenWeatherMap response has no coord", nil)
	case apiResp.Main == nil:
		return nil, errors.NewParseError("OpenWeatherMap response has no main", nil)
	case len(apiResp.Weather) == 0:
		return nil, errors.NewParseError("OpenWeatherMap response has no weather entries", nil)
	}

	return &ports.WeatherData{
		City:           apiResp.Name,
		Latitude:       apiResp.Coord.Lat,
		Longitude:      apiResp.Coord.Lon,
		Temperature:    apiResp.Main.Temp,
		Humidity:       apiResp.Main.Humidity,
		Condition:      apiResp.Weather[0].Main,
		Description:    apiResp.Weather[0].Description,
		TimezoneOffset: apiResp.Timezone,
		Timestamp:      time.Now(),
	}, nil
}
