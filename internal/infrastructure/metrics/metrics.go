package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Companion-API Metrics
var (
	// Request counters
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "companion",
			Subsystem: "api",
			Name:      "requests_total",
			Help:      "Total number of HTTP requests",
		},
		[]string{"method", "endpoint", "status"},
	)

	// Request duration histogram
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "companion",
			Subsystem: "api",
			Name:      "request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"method", "endpoint"},
	)

	// Turn counters
	TurnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "companion",
			Subsystem: "api",
			Name:      "turns_total",
			Help:      "Total chat turns processed",
		},
		[]string{"kind", "status"},
	)

	// Provider call counters
	ProviderCallsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "companion",
			Subsystem: "api",
			Name:      "provider_calls_total",
			Help:      "Total completion provider calls",
		},
		[]string{"provider", "operation", "status"},
	)

	// Provider call duration histogram
	ProviderCallDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "companion",
			Subsystem: "api",
			Name:      "provider_call_duration_seconds",
			Help:      "Completion provider call duration in seconds",
			Buckets:   []float64{0.1, 0.5, 1, 2, 5, 10, 30, 60},
		},
		[]string{"provider", "operation"},
	)

	// Game event counters
	GameEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "companion",
			Subsystem: "api",
			Name:      "game_events_total",
			Help:      "Total game lifecycle events",
		},
		[]string{"game", "event"},
	)

	// Relationship score gauge
	RelationshipScore = promauto.NewGauge(
		prometheus.GaugeOpts{
			Namespace: "companion",
			Subsystem: "api",
			Name:      "relationship_score",
			Help:      "Current relationship score",
		},
	)
)

// RecordRequest records an HTTP request
func RecordRequest(method, endpoint, status string, durationSec float64) {
	RequestsTotal.WithLabelValues(method, endpoint, status).Inc()
	RequestDuration.WithLabelValues(method, endpoint).Observe(durationSec)
}

// RecordTurn records one processed chat turn
func RecordTurn(kind, status string) {
	TurnsTotal.WithLabelValues(kind, status).Inc()
}

// RecordProviderCall records a completion or transcription call
func RecordProviderCall(provider, operation, status string, durationSec float64) {
	ProviderCallsTotal.WithLabelValues(provider, operation, status).Inc()
	ProviderCallDuration.WithLabelValues(provider, operation).Observe(durationSec)
}

// RecordGameEvent records a game start, exit, or turn
func RecordGameEvent(game, event string) {
	GameEventsTotal.WithLabelValues(game, event).Inc()
}

// SetRelationshipScore publishes the current score
func SetRelationshipScore(score int) {
	RelationshipScore.Set(float64(score))
}
