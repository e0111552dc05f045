package view

import (
	"bytes"
	"html/template"
	"strconv"
	"time"

	"github.com/google/uuid"
	"weatherview.app/internal/core/weather"
)

// FailureHTML replaces the result panel whenever a lookup fails, whatever the cause
const FailureHTML = "<p>City not found or error fetching data.</p>"

const (
	DefaultZoom        = 13
	DefaultTileURL     = "https://{s}.tile.openstreetmap.org/{z}/{x}/{y}.png"
	DefaultAttribution = `&copy; <a href="https://www.openstreetmap.org/copyright">OpenStreetMap</a> contributors`
)

var resultTemplate = template.Must(template.New("result").Parse(
	`<h2>Weather in {{.Name}}</h2>
<p>Temperature: {{.Temperature}}{{.Symbol}}</p>
<p>Humidity: {{.Humidity}}%</p>
<p>Conditions: {{.Description}}</p>
<p>Local Time: {{.LocalTime}}</p>`))

var popupTemplate = template.Must(template.New("popup").Parse(
	`<b>{{.Name}}</b><br>Weather: {{.Description}}`))

type resultData struct {
	Name        string
	Temperature string
	Symbol      string
	Humidity    string
	Description string
	LocalTime   string
}

// RendererConfig controls the fixed parts of the rendered view
type RendererConfig struct {
	Zoom        int
	TileURL     string
	Attribution string
	TimeLayout  string
}

// Renderer computes next view states. It performs no I/O.
type Renderer struct {
	config      RendererConfig
	newInstance func() string
}

// NewRenderer creates a renderer, filling unset options with defaults
func NewRenderer(config RendererConfig) *Renderer {
	if config.Zoom == 0 {
		config.Zoom = DefaultZoom
	}
	if config.TileURL == "" {
		config.TileURL = DefaultTileURL
	}
	if config.Attribution == "" {
		config.Attribution = DefaultAttribution
	}
	if config.TimeLayout == "" {
		config.TimeLayout = weather.DefaultTimeLayout
	}
	return &Renderer{
		config:      config,
		newInstance: uuid.NewString,
	}
}

// RenderPending marks a view as waiting for the provider without touching what it shows
func (r *Renderer) RenderPending(prev State, now time.Time) State {
	next := prev.Clone()
	next.Phase = PhasePending
	next.UpdatedAt = now
	return next
}

// RenderSuccess builds the complete next state for a successful lookup.
// When hasMap is false the map part of prev is carried over untouched.
func (r *Renderer) RenderSuccess(prev State, obs *weather.Observation, units weather.UnitSystem, now time.Time, hasMap bool) (State, error) {
	resultHTML, err := renderResult(obs, units, now, r.config.TimeLayout)
	if err != nil {
		return State{}, err
	}

	next := prev.Clone()
	next.Phase = PhaseRendered
	next.UpdatedAt = now
	next.Display = DisplayState{
		BodyClass:  obs.ConditionClass(),
		ResultHTML: resultHTML,
	}

	if !hasMap {
		return next, nil
	}

	popupHTML, err := renderPopup(obs)
	if err != nil {
		return State{}, err
	}

	instance := r.newInstance()
	if prev.Map != nil && prev.Map.Instance != "" {
		instance = prev.Map.Instance
	}

	revision := 1
	if prev.Map != nil && prev.Map.Marker != nil {
		revision = prev.Map.Marker.Revision + 1
	}

	center := LatLng{Lat: obs.Latitude, Lon: obs.Longitude}
	next.Map = &MapState{
		Instance:    instance,
		Center:      center,
		Zoom:        r.config.Zoom,
		TileURL:     r.config.TileURL,
		Attribution: r.config.Attribution,
		Marker: &Marker{
			Position:  center,
			PopupHTML: popupHTML,
			Open:      true,
			Revision:  revision,
		},
	}
	return next, nil
}

// RenderFailure replaces the result panel with the generic message. The body
// class and the map stay as they were.
func (r *Renderer) RenderFailure(prev State, now time.Time) State {
	next := prev.Clone()
	next.Phase = PhaseFailed
	next.UpdatedAt = now
	next.Display.ResultHTML = FailureHTML
	return next
}

func renderResult(obs *weather.Observation, units weather.UnitSystem, now time.Time, layout string) (string, error) {
	var buf bytes.Buffer
	err := resultTemplate.Execute(&buf, resultData{
		Name:        obs.Name,
		Temperature: formatNumber(obs.Temperature),
		Symbol:      units.Symbol(),
		Humidity:    formatNumber(obs.Humidity),
		Description: obs.Description,
		LocalTime:   weather.FormatLocalTime(now, obs.TimezoneOffset, layout),
	})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}

func renderPopup(obs *weather.Observation) (string, error) {
	var buf bytes.Buffer
	if err := popupTemplate.Execute(&buf, obs); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// formatNumber prints the shortest representation, so 15 stays "15" and 15.5 stays "15.5"
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
