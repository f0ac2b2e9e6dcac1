package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestManager_Counters(t *testing.T) {
	// Given: a fresh manager
	m := NewManager()

	// When: game events are observed
	m.ObserveTurn(TurnAccepted)
	m.ObserveTurn(TurnAccepted)
	m.ObserveTurn(TurnRejected)
	m.ObserveGameFinished("won")
	m.ObserveLeaderboardUpdate(2)
	m.ObserveLeaderboardUpdate(3)
	m.ObserveLeaderboardError()

	// Then: each metric reflects them
	assert.InDelta(t, 2, testutil.ToFloat64(m.turns.WithLabelValues(TurnAccepted)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.turns.WithLabelValues(TurnRejected)), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.gamesFinished.WithLabelValues("won")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.leaderboardUpdates), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.leaderboardPlayers), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.leaderboardErrors), 0)
}

func TestManager_SetLeaderboardPlayers(t *testing.T) {
	m := NewManager()

	m.SetLeaderboardPlayers(4)

	assert.InDelta(t, 4, testutil.ToFloat64(m.leaderboardPlayers), 0)
	assert.InDelta(t, 0, testutil.ToFloat64(m.leaderboardUpdates), 0)
}

func TestManager_CustomRegistry(t *testing.T) {
	// Given: a caller owned registry and coarse buckets
	registry := prometheus.NewRegistry()
	m := NewManager(WithRegistry(registry), WithHistogramBuckets([]float64{10, 100}))
	require.Same(t, registry, m.Registry())

	// When: one request is served
	handler := m.Middleware("ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/ping", nil))

	// Then: the registry holds the duration with the configured buckets
	count, err := testutil.GatherAndCount(registry, "tictactoe_engine_http_request_duration_milliseconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)

	families, err := registry.Gather()
	require.NoError(t, err)

	var buckets int
	for _, family := range families {
		if family.GetName() == "tictactoe_engine_http_request_duration_milliseconds" {
			buckets = len(family.GetMetric()[0].GetHistogram().GetBucket())
		}
	}
	assert.Equal(t, 2, buckets)
}

func TestManager_SeparateRegistries(t *testing.T) {
	// Two managers must not collide on registration.
	first := NewManager()
	second := NewManager(WithNamespace("other"))

	first.ObserveTurn(TurnAccepted)

	assert.InDelta(t, 0, testutil.ToFloat64(second.turns.WithLabelValues(TurnAccepted)), 0)
}

func TestManager_MiddlewareAndHandler(t *testing.T) {
	m := NewManager()

	handler := m.Middleware("ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	handler(rec, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusTeapot, rec.Code)

	assert.InDelta(t, 1, testutil.ToFloat64(m.httpRequests.WithLabelValues("ping", http.MethodGet, "418")), 0)

	// And: the exposition contains the request counter
	metricsRec := httptest.NewRecorder()
	m.Handler().ServeHTTP(metricsRec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(metricsRec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "tictactoe_engine_http_requests_total")
}
