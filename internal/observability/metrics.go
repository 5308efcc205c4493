package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// slate assessment service.
type Metrics struct {
	AssessmentsTotal   *prometheus.CounterVec // labels: status={ok,too-early,unavailable,no-venue}
	SlateBuildDuration prometheus.Histogram
	SlateGames         prometheus.Histogram
	SlateReady         prometheus.Gauge

	// Weather provider metrics.
	ProviderRequests        *prometheus.CounterVec   // labels: shape={probability,amount}, outcome={success,error}
	ProviderRequestDuration *prometheus.HistogramVec // labels: shape
	ProviderCache           *prometheus.CounterVec   // labels: result={hit,miss}

	// Kafka publishing metrics.
	GamesPublished prometheus.Counter
	PublishErrors  prometheus.Counter
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		AssessmentsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gameday",
			Name:      "assessments_total",
			Help:      "Game weather assessments computed, by resulting status.",
		}, []string{"status"}),
		SlateBuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gameday",
			Name:      "slate_build_duration_seconds",
			Help:      "Duration of a complete slate build including weather fetches.",
			Buckets:   []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}),
		SlateGames: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "gameday",
			Name:      "slate_games",
			Help:      "Number of games per built slate.",
			Buckets:   []float64{0, 1, 2, 4, 6, 8, 10, 12, 15, 16},
		}),
		SlateReady: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "gameday",
			Name:      "slate_ready",
			Help:      "1 once at least one slate has been built successfully.",
		}),
		ProviderRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gameday",
			Name:      "provider_requests_total",
			Help:      "Weather provider requests by response shape and outcome.",
		}, []string{"shape", "outcome"}),
		ProviderRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "gameday",
			Name:      "provider_request_duration_seconds",
			Help:      "Weather provider request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"shape"}),
		ProviderCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "gameday",
			Name:      "provider_cache_total",
			Help:      "Weather cache lookups by result.",
		}, []string{"result"}),
		GamesPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gameday",
			Name:      "games_published_total",
			Help:      "Assessed games published to the sink topic.",
		}),
		PublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "gameday",
			Name:      "publish_errors_total",
			Help:      "Failed attempts to publish a slate.",
		}),
	}

	prometheus.MustRegister(
		m.AssessmentsTotal,
		m.SlateBuildDuration,
		m.SlateGames,
		m.SlateReady,
		m.ProviderRequests,
		m.ProviderRequestDuration,
		m.ProviderCache,
		m.GamesPublished,
		m.PublishErrors,
	)

	return m
}

// NewMetricsForTesting creates Metrics with a fresh registry to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		AssessmentsTotal:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "gameday", Name: "assessments_total"}, []string{"status"}),
		SlateBuildDuration:      prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "gameday", Name: "slate_build_duration_seconds"}),
		SlateGames:              prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "gameday", Name: "slate_games"}),
		SlateReady:              prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "gameday", Name: "slate_ready"}),
		ProviderRequests:        prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "gameday", Name: "provider_requests_total"}, []string{"shape", "outcome"}),
		ProviderRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{Namespace: "gameday", Name: "provider_request_duration_seconds"}, []string{"shape"}),
		ProviderCache:           prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "gameday", Name: "provider_cache_total"}, []string{"result"}),
		GamesPublished:          prometheus.NewCounter(prometheus.CounterOpts{Namespace: "gameday", Name: "games_published_total"}),
		PublishErrors:           prometheus.NewCounter(prometheus.CounterOpts{Namespace: "gameday", Name: "publish_errors_total"}),
	}
}
