package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// cacheHits tracks lookups that returned a live entry.
	cacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "news_cache_hits_total",
			Help: "Total number of news cache hits",
		},
	)

	// cacheMisses tracks lookups that found no live entry.
	cacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "news_cache_misses_total",
			Help: "Total number of news cache misses",
		},
	)

	// cacheEvictions tracks entries dropped to stay within capacity.
	cacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "news_cache_evictions_total",
			Help: "Total number of cache entries evicted at capacity",
		},
	)

	// cacheEntries tracks the current entry count.
	cacheEntries = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "news_cache_entries",
			Help: "Current number of entries in the news cache",
		},
	)
)
