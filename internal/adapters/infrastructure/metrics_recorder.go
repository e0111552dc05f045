package infrastructure

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PrometheusMetricsRecorder implements the MetricsRecorder port
type PrometheusMetricsRecorder struct {
	Fetches      *prometheus.CounterVec
	FetchLatency *prometheus.HistogramVec
	Renders      *prometheus.CounterVec
	Conditions   *prometheus.CounterVec
}

// NewPrometheusMetricsRecorder registers the view metrics on reg.
// Passing prometheus.DefaultRegisterer exposes them through promhttp.Handler().
func NewPrometheusMetricsRecorder(reg prometheus.Registerer) *PrometheusMetricsRecorder {
	factory := promauto.With(reg)

	return &PrometheusMetricsRecorder{
		Fetches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weatherview_fetch_total",
				Help: "The total number of weather lookups by outcome",
			},
			[]string{"provider", "outcome"},
		),
		FetchLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "weatherview_fetch_duration_seconds",
				Help:    "Weather lookup duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
		Renders: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weatherview_render_total",
				Help: "The total number of view renders by resulting phase",
			},
			[]string{"phase"},
		),
		Conditions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "weatherview_condition_class_total",
				Help: "The total number of successful renders by condition class",
			},
			[]string{"class"},
		),
	}
}

func (m *PrometheusMetricsRecorder) RecordFetch(provider string, outcome string, duration time.Duration) {
	m.Fetches.WithLabelValues(provider, outcome).Inc()
	m.FetchLatency.WithLabelValues(provider).Observe(duration.Seconds())
}

func (m *PrometheusMetricsRecorder) RecordRender(phase string) {
	m.Renders.WithLabelValues(phase).Inc()
}

func (m *PrometheusMetricsRecorder) RecordCondition(class string) {
	m.Conditions.WithLabelValues(class).Inc()
}
