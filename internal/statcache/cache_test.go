package statcache_test

import (
	"sync"
	"testing"

	"github.com/okrbeck/clubtable/internal/club"
	"github.com/okrbeck/clubtable/internal/metrics"
	"github.com/okrbeck/clubtable/internal/statcache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOrCompute(t *testing.T) {
	metr := metrics.NewMock()
	cache := statcache.New(metr)
	key := statcache.Key{DataVersion: 1, TeamScope: "teamA", SeasonScope: "2024/25", CompetitionScope: "all"}

	calls := 0
	compute := func() map[string]club.AggregatedPlayerStats {
		calls++
		return map[string]club.AggregatedPlayerStats{"p1": {Goals: 3}}
	}

	first := cache.GetOrCompute(key, compute)
	second := cache.GetOrCompute(key, compute)

	assert.Equal(t, 1, calls, "a hit is never recomputed")
	assert.Equal(t, first, second)
	assert.Equal(t, 3, first["p1"].Goals)
	assert.Equal(t, 1, metr.CacheMissCount)
	assert.Equal(t, 1, metr.CacheHitCount)
}

func TestKeySensitivity(t *testing.T) {
	cache := statcache.New(nil)
	calls := 0
	compute := func() map[string]club.AggregatedPlayerStats {
		calls++
		return nil
	}

	base := statcache.Key{DataVersion: 1, TeamScope: "teamA", SeasonScope: "2024/25", CompetitionScope: "all"}
	variants := []statcache.Key{
		base,
		{DataVersion: 2, TeamScope: "teamA", SeasonScope: "2024/25", CompetitionScope: "all"},
		{DataVersion: 1, TeamScope: "teamB", SeasonScope: "2024/25", CompetitionScope: "all"},
		{DataVersion: 1, TeamScope: "teamA", SeasonScope: "2023/24", CompetitionScope: "all"},
		{DataVersion: 1, TeamScope: "teamA", SeasonScope: "2024/25", CompetitionScope: "c1"},
	}
	for _, k := range variants {
		cache.GetOrCompute(k, compute)
	}

	assert.Equal(t, len(variants), calls, "changing any key component misses")
	require.Equal(t, len(variants), cache.Len())

	cache.GetOrCompute(base, compute)
	assert.Equal(t, len(variants), calls, "the original key still hits")
}

func TestConcurrentReaders(t *testing.T) {
	cache := statcache.New(nil)
	key := statcache.Key{DataVersion: 7, TeamScope: "teamA", SeasonScope: "all", CompetitionScope: "all"}
	want := map[string]club.AggregatedPlayerStats{"p1": {Minutes: 90}}

	cache.GetOrCompute(key, func() map[string]club.AggregatedPlayerStats { return want })

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got := cache.GetOrCompute(key, func() map[string]club.AggregatedPlayerStats {
				t.Error("compute must not run for a cached key")
				return nil
			})
			assert.Equal(t, want, got)
		}()
	}
	wg.Wait()
}
