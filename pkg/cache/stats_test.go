package cache

import (
	"sync"
	"testing"
)

func TestStats_Empty(t *testing.T) {
	stats := NewStats()

	snap := stats.Snapshot(0)
	if snap.Hits != 0 || snap.Misses != 0 {
		t.Errorf("fresh stats = %d hits / %d misses, want 0/0", snap.Hits, snap.Misses)
	}
	if snap.HitRate != 0 {
		t.Errorf("HitRate = %v with no lookups, want 0", snap.HitRate)
	}
}

func TestStats_HitRate(t *testing.T) {
	tests := []struct {
		name   string
		hits   int
		misses int
		want   float64
	}{
		{name: "all hits", hits: 5, misses: 0, want: 1},
		{name: "all misses", hits: 0, misses: 5, want: 0},
		{name: "two thirds", hits: 2, misses: 1, want: 0.667},
		{name: "one third", hits: 1, misses: 2, want: 0.333},
		{name: "half", hits: 3, misses: 3, want: 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stats := NewStats()
			for i := 0; i < tt.hits; i++ {
				stats.RecordHit()
			}
			for i := 0; i < tt.misses; i++ {
				stats.RecordMiss()
			}

			snap := stats.Snapshot(0)
			if snap.HitRate != tt.want {
				t.Errorf("HitRate = %v, want %v", snap.HitRate, tt.want)
			}
		})
	}
}

func TestStats_Snapshot(t *testing.T) {
	stats := NewStats()
	stats.RecordHit()
	stats.RecordHit()
	stats.RecordMiss()

	snap := stats.Snapshot(7)
	if snap.Hits != 2 {
		t.Errorf("Hits = %d, want 2", snap.Hits)
	}
	if snap.Misses != 1 {
		t.Errorf("Misses = %d, want 1", snap.Misses)
	}
	if snap.Keys != 7 || snap.CacheSize != 7 {
		t.Errorf("Keys/CacheSize = %d/%d, want 7/7", snap.Keys, snap.CacheSize)
	}
}

func TestStats_Reset(t *testing.T) {
	stats := NewStats()
	stats.RecordHit()
	stats.RecordMiss()
	stats.Reset()

	snap := stats.Snapshot(0)
	if snap.Hits != 0 || snap.Misses != 0 || snap.HitRate != 0 {
		t.Errorf("after Reset: %+v, want all zero", snap)
	}
}

func TestStats_Concurrent(t *testing.T) {
	stats := NewStats()

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				stats.RecordHit()
				stats.RecordMiss()
			}
		}()
	}
	wg.Wait()

	snap := stats.Snapshot(0)
	if snap.Hits != 800 || snap.Misses != 800 {
		t.Errorf("counters = %d/%d, want 800/800", snap.Hits, snap.Misses)
	}
}
