package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var _ Metrics = (*Service)(nil)

// NewMetricsHandler returns an http.Handler for the given Gatherer.
// If no gatherer is provided, it uses the default one.
func NewMetricsHandler(gatherer ...prometheus.Gatherer) http.Handler {
	gath := prometheus.DefaultGatherer
	if len(gatherer) > 0 {
		gath = gatherer[0]
	}
	return promhttp.HandlerFor(gath, promhttp.HandlerOpts{})
}

// NewService creates and registers the Prometheus metrics.
// If no registerer is provided, it uses the default Prometheus registerer.
func NewService(registerer ...prometheus.Registerer) *Service {
	reg := prometheus.DefaultRegisterer
	if len(registerer) > 0 {
		reg = registerer[0]
	}

	s := &Service{
		AggregationsComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubtable_aggregations_computed_total",
			Help: "The total number of player stat aggregations computed (cache misses included).",
		}),
		AggregationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "clubtable_aggregation_duration_seconds",
			Help:    "The duration of individual aggregation passes.",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		CacheHits: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubtable_aggregation_cache_hits_total",
			Help: "The total number of aggregation cache hits.",
		}),
		CacheMisses: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubtable_aggregation_cache_misses_total",
			Help: "The total number of aggregation cache misses.",
		}),
		StandingsComputed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubtable_standings_computed_total",
			Help: "The total number of league tables computed.",
		}),
		NotifSent: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubtable_notifications_sent_total",
			Help: "The total number of notifications successfully sent.",
		}),
		NotifFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clubtable_notifications_failed_total",
			Help: "The total number of notifications that failed to send.",
		}),
		StartupTimeSeconds: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "clubtable_startup_duration_seconds",
			Help: "The duration of the application startup in seconds.",
		}),
	}

	reg.MustRegister(
		s.AggregationsComputed,
		s.AggregationDuration,
		s.CacheHits,
		s.CacheMisses,
		s.StandingsComputed,
		s.NotifSent,
		s.NotifFailed,
		s.StartupTimeSeconds,
	)

	return s
}

func (s *Service) IncAggregationsComputed() {
	s.AggregationsComputed.Inc()
}

func (s *Service) ObserveAggregationDuration(duration float64) {
	s.AggregationDuration.Observe(duration)
}

func (s *Service) IncCacheHits() {
	s.CacheHits.Inc()
}

func (s *Service) IncCacheMisses() {
	s.CacheMisses.Inc()
}

func (s *Service) IncStandingsComputed() {
	s.StandingsComputed.Inc()
}

func (s *Service) IncNotifSent() {
	s.NotifSent.Inc()
}

func (s *Service) IncNotifFailed() {
	s.NotifFailed.Inc()
}

func (s *Service) SetStartupTime(duration float64) {
	s.StartupTimeSeconds.Set(duration)
}
