package cache

import (
	"container/list"
	"sync"
	"time"
)

const (
	// DefaultMaxSize is the default maximum number of cached entries.
	DefaultMaxSize = 1000

	// DefaultTTL is the default entry lifetime.
	DefaultTTL = 600 * time.Second
)

// entry is a cached value together with its insertion time. The TTL clock
// starts at insertion and is never refreshed by reads.
type entry[V any] struct {
	key        string
	value      V
	insertedAt time.Time
}

// Store is a bounded, time-expiring in-memory key-value store. It is safe for
// concurrent use by multiple goroutines; a race between two writers on the
// same key is benign (last writer wins, values for a key are idempotent).
type Store[V any] struct {
	mu      sync.Mutex
	entries map[string]*list.Element
	order   *list.List // front = oldest insertion
	maxSize int
	ttl     time.Duration
	now     func() time.Time
}

// NewStore creates a store with the given capacity and TTL. Non-positive
// values fall back to the defaults.
func NewStore[V any](maxSize int, ttl time.Duration) *Store[V] {
	if maxSize <= 0 {
		maxSize = DefaultMaxSize
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Store[V]{
		entries: make(map[string]*list.Element),
		order:   list.New(),
		maxSize: maxSize,
		ttl:     ttl,
		now:     time.Now,
	}
}

// SetClock replaces the store's time source (for testing TTL expiry).
func (s *Store[V]) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// Get returns the value for key if present and not expired. Expired entries
// are removed lazily here; there is no background sweep.
func (s *Store[V]) Get(key string) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var zero V
	elem, ok := s.entries[key]
	if !ok {
		return zero, false
	}

	e := elem.Value.(*entry[V])
	if s.expired(e) {
		s.remove(elem)
		return zero, false
	}

	return e.value, true
}

// Set stores a value under key. Re-setting an existing key counts as a fresh
// insertion: the TTL clock restarts and the entry moves to the back of the
// eviction order. When the capacity would be exceeded the oldest-inserted
// entry is evicted first.
func (s *Store[V]) Set(key string, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if elem, ok := s.entries[key]; ok {
		e := elem.Value.(*entry[V])
		e.value = value
		e.insertedAt = s.now()
		s.order.MoveToBack(elem)
		return
	}

	// Drop expired entries before counting against capacity.
	s.sweep()

	for len(s.entries) >= s.maxSize {
		oldest := s.order.Front()
		if oldest == nil {
			break
		}
		s.remove(oldest)
		cacheEvictions.Inc()
	}

	elem := s.order.PushBack(&entry[V]{key: key, value: value, insertedAt: s.now()})
	s.entries[key] = elem
	cacheEntries.Set(float64(len(s.entries)))
}

// Clear removes all entries unconditionally.
func (s *Store[V]) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = make(map[string]*list.Element)
	s.order.Init()
	cacheEntries.Set(0)
}

// Size returns the number of live (non-expired) entries.
func (s *Store[V]) Size() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sweep()
	return len(s.entries)
}

// sweep removes expired entries from the front of the insertion order.
// Entries expire in insertion order because the TTL is fixed, so it can stop
// at the first live one. Caller must hold s.mu.
func (s *Store[V]) sweep() {
	for {
		front := s.order.Front()
		if front == nil || !s.expired(front.Value.(*entry[V])) {
			return
		}
		s.remove(front)
	}
}

// expired reports whether e's lifetime has elapsed. Caller must hold s.mu.
func (s *Store[V]) expired(e *entry[V]) bool {
	return s.now().Sub(e.insertedAt) >= s.ttl
}

// remove deletes elem from both the map and the insertion order. Caller must
// hold s.mu.
func (s *Store[V]) remove(elem *list.Element) {
	e := elem.Value.(*entry[V])
	delete(s.entries, e.key)
	s.order.Remove(elem)
	cacheEntries.Set(float64(len(s.entries)))
}
