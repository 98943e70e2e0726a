package processor

import (
	"github.com/okrbeck/clubtable/internal/metrics"
	"github.com/okrbeck/clubtable/internal/pubsub"
	"github.com/okrbeck/clubtable/internal/roster"
	"github.com/okrbeck/clubtable/internal/statcache"
)

// Processor handles the business logic of serving stats, tables and match
// lists, and of recording results.
type Processor struct {
	store    Store
	roster   roster.Provider
	cache    *statcache.Cache
	pubsub   pubsub.PubSubClient
	notifier Notifier
	metrics  metrics.Metrics
}
