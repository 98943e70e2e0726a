package metrics

import "github.com/prometheus/client_golang/prometheus"

// Service holds all the Prometheus metrics for the application.
// By defining them all in one place, we ensure consistency in naming and labeling.
type Service struct {
	AggregationsComputed prometheus.Counter
	AggregationDuration  prometheus.Histogram
	CacheHits            prometheus.Counter
	CacheMisses          prometheus.Counter
	StandingsComputed    prometheus.Counter
	NotifSent            prometheus.Counter
	NotifFailed          prometheus.Counter
	StartupTimeSeconds   prometheus.Gauge
}
