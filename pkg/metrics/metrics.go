// ABOUTME: Prometheus metrics for the news aggregation pipeline
// ABOUTME: Implements the news.Recorder contract and serves /metrics

package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "football_news"

// Manager owns the pipeline's Prometheus collectors.
type Manager struct {
	registry *prometheus.Registry

	articlesFetched *prometheus.CounterVec
	fetchErrors     *prometheus.CounterVec
	fetchDuration   *prometheus.HistogramVec
	persisted       prometheus.Counter
}

// NewManager creates and registers the pipeline collectors on a private
// registry.
func NewManager() *Manager {
	m := &Manager{
		registry: prometheus.NewRegistry(),
		articlesFetched: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "articles_fetched_total",
			Help:      "Articles each source contributed after filtering and normalization.",
		}, []string{"source"}),
		fetchErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_errors_total",
			Help:      "Source fetches that failed outright.",
		}, []string{"source"}),
		fetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "How long each source fetch took.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"source"}),
		persisted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "articles_persisted_total",
			Help:      "Articles written to the durable store.",
		}),
	}

	m.registry.MustRegister(m.articlesFetched, m.fetchErrors, m.fetchDuration, m.persisted)

	return m
}

// ObserveFetch records one source fetch.
func (m *Manager) ObserveFetch(source string, articles int, duration time.Duration, err error) {
	m.fetchDuration.WithLabelValues(source).Observe(duration.Seconds())

	if err != nil {
		m.fetchErrors.WithLabelValues(source).Inc()
		return
	}

	m.articlesFetched.WithLabelValues(source).Add(float64(articles))
}

// AddPersisted counts articles written to the durable store.
func (m *Manager) AddPersisted(count int) {
	m.persisted.Add(float64(count))
}

// Handler exposes the registry for the /metrics endpoint.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
