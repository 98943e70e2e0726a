package metrics

// Metrics defines the interface for collecting application metrics.
// This decouples the application from the specific metrics implementation (e.g., Prometheus).
type Metrics interface {
	IncAggregationsComputed()
	ObserveAggregationDuration(duration float64)
	IncCacheHits()
	IncCacheMisses()
	IncStandingsComputed()
	IncNotifSent()
	IncNotifFailed()
	SetStartupTime(duration float64)
}
