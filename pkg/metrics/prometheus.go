// Package metrics exposes Prometheus counters for the game engine and its leaderboard.
package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Turn results.
const (
	TurnAccepted = "accepted"
	TurnRejected = "rejected"
)

// Manager holds every metric of the service on its own registry.
type Manager struct {
	namespace string
	subsystem string
	buckets   []float64
	registry  *prometheus.Registry

	turns              *prometheus.CounterVec
	gamesFinished      *prometheus.CounterVec
	leaderboardUpdates prometheus.Counter
	leaderboardErrors  prometheus.Counter
	leaderboardPlayers prometheus.Gauge

	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Option configures a Manager.
type Option func(*Manager)

// WithNamespace overrides the metric namespace.
func WithNamespace(namespace string) Option {
	return func(m *Manager) {
		m.namespace = namespace
	}
}

// WithRegistry registers the metrics on the given registry instead of a fresh one.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(m *Manager) {
		m.registry = registry
	}
}

// WithHistogramBuckets sets the request duration buckets, in milliseconds.
func WithHistogramBuckets(buckets []float64) Option {
	return func(m *Manager) {
		m.buckets = buckets
	}
}

// NewManager creates the metrics. Without WithRegistry every manager gets its own registry.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace: "tictactoe",
		subsystem: "engine",
		buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
	}

	for _, opt := range opts {
		opt(m)
	}

	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}

	m.initializeMetrics()

	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.turns = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "moves_total",
		Help:      "Total number of moves by result",
	}, []string{"result"})

	m.gamesFinished = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "games_finished_total",
		Help:      "Total number of finished games by outcome",
	}, []string{"outcome"})

	m.leaderboardUpdates = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "leaderboard_updates_total",
		Help:      "Total number of persisted leaderboard updates",
	})

	m.leaderboardErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "leaderboard_errors_total",
		Help:      "Total number of failed leaderboard writes",
	})

	m.leaderboardPlayers = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "leaderboard_players",
		Help:      "Number of players on the leaderboard",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_requests_total",
		Help:      "Total number of HTTP requests by endpoint and method",
	}, []string{"endpoint", "method", "status_code"})

	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "http_request_duration_milliseconds",
		Help:      "HTTP request duration in milliseconds",
		Buckets:   m.buckets,
	}, []string{"endpoint", "method", "status_code"})
}

// ObserveTurn counts a move as accepted or rejected.
func (m *Manager) ObserveTurn(result string) {
	m.turns.WithLabelValues(result).Inc()
}

// ObserveGameFinished counts a terminal outcome, entity.StatusWon or entity.StatusDrawn.
func (m *Manager) ObserveGameFinished(outcome string) {
	m.gamesFinished.WithLabelValues(outcome).Inc()
}

// ObserveLeaderboardUpdate counts a successful write and records the leaderboard size.
func (m *Manager) ObserveLeaderboardUpdate(players int) {
	m.leaderboardUpdates.Inc()
	m.SetLeaderboardPlayers(players)
}

// SetLeaderboardPlayers records the leaderboard size without counting a write.
func (m *Manager) SetLeaderboardPlayers(players int) {
	m.leaderboardPlayers.Set(float64(players))
}

func (m *Manager) ObserveLeaderboardError() {
	m.leaderboardErrors.Inc()
}

// Registry exposes the underlying registry.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Middleware records count and latency of every request served by next.
func (m *Manager) Middleware(endpoint string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next(recorder, r)

		status := strconv.Itoa(recorder.status)
		m.httpRequests.WithLabelValues(endpoint, r.Method, status).Inc()
		m.httpRequestDuration.WithLabelValues(endpoint, r.Method, status).
			Observe(float64(time.Since(start).Microseconds()) / 1000)
	}
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
