package cache

import (
	"math"
	"sync"
)

// Stats counts cache hits and misses for the lifetime of the process.
// Counters only move forward except on Reset, which is invoked as part of an
// explicit cache clear. Failed upstream calls are never recorded.
type Stats struct {
	mu     sync.Mutex
	hits   uint64
	misses uint64
}

// Snapshot is a point-in-time view of the cache statistics.
type Snapshot struct {
	Keys      int     `json:"keys"`
	Hits      uint64  `json:"hits"`
	Misses    uint64  `json:"misses"`
	HitRate   float64 `json:"hit_rate"`
	CacheSize int     `json:"cache_size"`
}

// NewStats creates a zeroed stats tracker.
func NewStats() *Stats {
	return &Stats{}
}

// RecordHit counts a lookup that found a live entry.
func (s *Stats) RecordHit() {
	s.mu.Lock()
	s.hits++
	s.mu.Unlock()
	cacheHits.Inc()
}

// RecordMiss counts a lookup that found no live entry.
func (s *Stats) RecordMiss() {
	s.mu.Lock()
	s.misses++
	s.mu.Unlock()
	cacheMisses.Inc()
}

// Reset zeroes both counters atomically.
func (s *Stats) Reset() {
	s.mu.Lock()
	s.hits = 0
	s.misses = 0
	s.mu.Unlock()
}

// Snapshot returns the current counters together with the given entry count.
// The hit rate is hits/(hits+misses) rounded to 3 decimal places, or 0 when
// no lookups have been recorded yet.
func (s *Stats) Snapshot(keyCount int) Snapshot {
	s.mu.Lock()
	hits, misses := s.hits, s.misses
	s.mu.Unlock()

	var rate float64
	if total := hits + misses; total > 0 {
		rate = math.Round(float64(hits)/float64(total)*1000) / 1000
	}

	return Snapshot{
		Keys:      keyCount,
		Hits:      hits,
		Misses:    misses,
		HitRate:   rate,
		CacheSize: keyCount,
	}
}
