package metrics

import "sync"

// Mock is a thread-safe mock implementation of the Metrics interface.
type Mock struct {
	mu sync.Mutex

	AggregationsComputedCount int
	AggregationDurations      []float64
	CacheHitCount             int
	CacheMissCount            int
	StandingsComputedCount    int
	NotifSentCount            int
	NotifFailedCount          int
	StartupTime               float64
}

var _ Metrics = (*Mock)(nil)

// NewMock creates a new mock metrics instance.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) IncAggregationsComputed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AggregationsComputedCount++
}

func (m *Mock) ObserveAggregationDuration(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.AggregationDurations = append(m.AggregationDurations, duration)
}

func (m *Mock) IncCacheHits() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheHitCount++
}

func (m *Mock) IncCacheMisses() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CacheMissCount++
}

func (m *Mock) IncStandingsComputed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StandingsComputedCount++
}

func (m *Mock) IncNotifSent() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NotifSentCount++
}

func (m *Mock) IncNotifFailed() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.NotifFailedCount++
}

func (m *Mock) SetStartupTime(duration float64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.StartupTime = duration
}
