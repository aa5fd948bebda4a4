// Package metrics provides the centralized Prometheus metrics registry for
// the news gateway. All metrics are defined in their respective packages
// (cache, client, server) to maintain modularity and avoid circular
// dependencies.
//
// This package provides documentation and reference for all available metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the gateway.
// All metrics are automatically registered via promauto in their respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Cache Metrics (pkg/cache):
//   - news_cache_hits_total (Counter): Cache hits
//   - news_cache_misses_total (Counter): Cache misses
//   - news_cache_evictions_total (Counter): Entries evicted at capacity
//   - news_cache_entries (Gauge): Current number of cached entries
//
// Upstream Metrics (pkg/client):
//   - news_upstream_requests_total{endpoint, status} (Counter): Requests by endpoint and HTTP status
//   - news_upstream_request_duration_seconds{endpoint} (Histogram): Request duration by endpoint
//   - news_upstream_errors_total{kind} (Counter): Errors by kind (network, upstream, request)
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   rate(news_cache_hits_total[5m]) /
//   (rate(news_cache_hits_total[5m]) + rate(news_cache_misses_total[5m]))
//
//   # Upstream Error Rate
//   rate(news_upstream_errors_total[5m])
//
//   # P95 Upstream Latency
//   histogram_quantile(0.95, rate(news_upstream_request_duration_seconds_bucket[5m]))
