// Package cache provides the in-process response cache for the news gateway.
//
// The store is a bounded, time-expiring key-value map shared by all in-flight
// requests of a single process:
//
// - Fixed TTL per entry, counted from insertion (reads never refresh it)
// - Lazy expiry at lookup time, no background sweeper
// - Insertion-order (FIFO) eviction once the capacity is reached
// - Deterministic, credential-free cache key derivation
// - Hit/miss accounting with Prometheus metrics
//
// # Basic Usage
//
//	store := cache.NewStore[news.Result](1000, 10*time.Minute)
//
//	key := cache.Key("search", map[string]string{"q": "golang", "max": "10"})
//
//	if res, ok := store.Get(key); ok {
//		// cache hit
//		_ = res
//	}
//
//	store.Set(key, result)
//
// # Statistics
//
//	stats := cache.NewStats()
//	stats.RecordHit()
//	snap := stats.Snapshot(store.Size())
//
// # Metrics
//
// The package exports Prometheus metrics:
//
//   - news_cache_hits_total - Cache hits
//   - news_cache_misses_total - Cache misses
//   - news_cache_evictions_total - Entries evicted at capacity
//   - news_cache_entries - Current number of entries
package cache
