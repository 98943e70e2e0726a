// Package statcache memoizes aggregation results keyed by data version and
// scope. The cache never invalidates anything on its own: the store bumps the
// version on every write, so a stale result is simply a key nobody asks for
// again.
package statcache

import (
	"sync"

	"github.com/okrbeck/clubtable/internal/club"
	"github.com/okrbeck/clubtable/internal/metrics"
)

// Key identifies one memoized aggregation result. It is a struct rather than
// a concatenated string so a team id containing a separator character can
// never collide with another scope.
type Key struct {
	DataVersion      uint64
	TeamScope        string
	SeasonScope      string
	CompetitionScope string
}

// Cache is a read-mostly, write-once-per-key memo of aggregation results.
// Entries are trusted as exact for their key and never validated or mutated
// after being stored.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]map[string]club.AggregatedPlayerStats
	metrics metrics.Metrics
}

// New creates an empty cache. The metrics collaborator may be nil.
func New(m metrics.Metrics) *Cache {
	return &Cache{
		entries: make(map[Key]map[string]club.AggregatedPlayerStats),
		metrics: m,
	}
}

// GetOrCompute returns the stored value for key, computing and storing it on
// first sight. The compute function runs outside the lock; if two callers
// race on the same fresh key both compute, and the duplicate write is
// harmless because recomputing a key always yields the same value.
func (c *Cache) GetOrCompute(key Key, compute func() map[string]club.AggregatedPlayerStats) map[string]club.AggregatedPlayerStats {
	c.mu.RLock()
	value, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		if c.metrics != nil {
			c.metrics.IncCacheHits()
		}
		return value
	}

	if c.metrics != nil {
		c.metrics.IncCacheMisses()
	}
	value = compute()

	c.mu.Lock()
	if existing, ok := c.entries[key]; ok {
		value = existing
	} else {
		c.entries[key] = value
	}
	c.mu.Unlock()

	return value
}

// Len reports the number of distinct keys stored.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
