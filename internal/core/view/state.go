// Package view holds the WeatherView controller: it turns one lookup into a
// complete next UI state for a page view and the patches that bring the
// browser from the previous state to the next one.
package view

import (
	"time"

	"weatherview.app/internal/core/weather"
)

// Phase is the lifecycle position of a page view
type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhasePending  Phase = "pending"
	PhaseRendered Phase = "rendered"
	PhaseFailed   Phase = "failed"
)

// LatLng is a coordinate pair in degrees
type LatLng struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Marker is the single location marker shown on the map
type Marker struct {
	Position  LatLng `json:"position"`
	PopupHTML string `json:"popupHtml"`
	Open      bool   `json:"open"`
	// Revision grows on every successful render so the popup is re-opened
	// even when the city did not change.
	Revision  int    `json:"revision"`
}

// MapState describes the map widget of a page view. Instance identifies the
// widget; it stays stable while the widget is reused.
type MapState struct {
	Instance    string  `json:"instance"`
	Center      LatLng  `json:"center"`
	Zoom        int     `json:"zoom"`
	TileURL     string  `json:"tileUrl"`
	Attribution string  `json:"attribution"`
	Marker      *Marker `json:"marker,omitempty"`
}

// DisplayState is the text panel plus the body condition class. BodyClass is
// empty until the first successful render.
type DisplayState struct {
	BodyClass  weather.ConditionClass `json:"bodyClass,omitempty"`
	ResultHTML string                 `json:"resultHtml"`
}

// State is everything the page shows for one view
type State struct {
	ViewID    string       `json:"viewId"`
	Phase     Phase        `json:"phase"`
	Display   DisplayState `json:"display"`
	Map       *MapState    `json:"map,omitempty"`
	UpdatedAt time.Time    `json:"updatedAt"`
}

// IdleState is the state of a view nothing has been rendered into yet
func IdleState(viewID string) State {
	return State{ViewID: viewID, Phase: PhaseIdle}
}

// Clone returns a deep copy so render passes never share map or marker pointers
func (s State) Clone() State {
	out := s
	if s.Map != nil {
		m := *s.Map
		if s.Map.Marker != nil {
			marker := *s.Map.Marker
			m.Marker = &marker
		}
		out.Map = &m
	}
	return out
}
