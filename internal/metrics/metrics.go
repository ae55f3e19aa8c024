package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/benoasraf-100M/100m-daily-market-dashboard/internal/domain"
)

// Registry holds the dashboard's Prometheus metrics on a private
// registry so tests and embedders never fight over the global one.
type Registry struct {
	registry *prometheus.Registry

	FetchDuration  *prometheus.HistogramVec
	ProviderErrors *prometheus.CounterVec
	Renders        prometheus.Counter
	TotalScore     prometheus.Gauge
	PillarScores   *prometheus.GaugeVec
}

// New creates and registers all dashboard metrics.
func New() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),
		FetchDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "dashboard_fetch_duration_seconds",
				Help:    "Duration of upstream data fetches",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
			},
			[]string{"provider"},
		),
		ProviderErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dashboard_provider_errors_total",
				Help: "Upstream fetch failures by provider",
			},
			[]string{"provider"},
		),
		Renders: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "dashboard_renders_total",
				Help: "Completed score/allocation renders",
			},
		),
		TotalScore: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "dashboard_total_score",
				Help: "Most recent combined market score",
			},
		),
		PillarScores: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "dashboard_pillar_score",
				Help: "Most recent pillar scores",
			},
			[]string{"pillar"},
		),
	}

	r.registry.MustRegister(
		r.FetchDuration,
		r.ProviderErrors,
		r.Renders,
		r.TotalScore,
		r.PillarScores,
	)

	return r
}

// ObserveResult publishes the scores of a completed render.
func (r *Registry) ObserveResult(result domain.Result) {
	r.Renders.Inc()
	r.TotalScore.Set(result.Total.Value)
	r.PillarScores.WithLabelValues("cycle").Set(result.Pillars.Cycle.Value)
	r.PillarScores.WithLabelValues("sentiment").Set(result.Pillars.Sentiment.Value)
	r.PillarScores.WithLabelValues("rotation").Set(result.Pillars.Rotation.Value)
	r.PillarScores.WithLabelValues("leverage").Set(result.Pillars.Leverage.Value)
	r.PillarScores.WithLabelValues("flows").Set(result.Pillars.Flows.Value)
}

// ObserveFetch records one upstream call. Satisfies the fetch layer's
// observer hook.
func (r *Registry) ObserveFetch(provider string, d time.Duration, err error) {
	r.FetchDuration.WithLabelValues(provider).Observe(d.Seconds())
	if err != nil {
		r.ProviderErrors.WithLabelValues(provider).Inc()
	}
}

// Gather exposes the underlying registry for tests.
func (r *Registry) Gather() prometheus.Gatherer { return r.registry }

// Handler serves the scrape endpoint.
func (r *Registry) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{})
}
