package mocks

import (
	"sync"
	"time"
)

// MetricsRecorder records calls for later assertions
type MetricsRecorder struct {
	mu         sync.Mutex
	Fetches    []FetchRecord
	Renders    []string
	Conditions []string
}

// FetchRecord is one RecordFetch call
type FetchRecord struct {
	Provider string
	Outcome  string
	Duration time.Duration
}

func NewMetricsRecorder() *MetricsRecorder {
	return &MetricsRecorder{}
}

func (m *MetricsRecorder) RecordFetch(provider string, outcome string, duration time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Fetches = append(m.Fetches, FetchRecord{Provider: provider, Outcome: outcome, Duration: duration})
}

func (m *MetricsRecorder) RecordRender(phase string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Renders = append(m.Renders, phase)
}

func (m *MetricsRecorder) RecordCondition(class string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Conditions = append(m.Conditions, class)
}
