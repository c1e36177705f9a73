package charts

import (
	"sync"
	"time"
)

// DefaultCacheTTL is how long a computed chart stays fresh before the next
// request recomputes it.
const DefaultCacheTTL = time.Hour

// Entry is a cached value together with the instant it was fetched.
type Entry[T any] struct {
	Value     T
	FetchedAt time.Time
}

// Stale reports whether the entry needs refreshing at the given instant.
// A zero entry (never fetched) is always stale.
func (e Entry[T]) Stale(now time.Time, ttl time.Duration) bool {
	if e.FetchedAt.IsZero() {
		return true
	}
	return now.Sub(e.FetchedAt) >= ttl
}

// Cache memoizes one computed chart with a freshness window and guarantees at
// most one in-flight fetch at a time; concurrent callers block on the ongoing
// fetch instead of starting their own. Last write wins — acceptable since the
// fetches are idempotent reads.
type Cache[T any] struct {
	mu       sync.Mutex
	ttl      time.Duration
	entry    Entry[T]
	inflight bool
	done     chan struct{}
}

func NewCache[T any](ttl time.Duration) *Cache[T] {
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &Cache[T]{ttl: ttl}
}

// Get returns the cached value if it is still fresh at now, otherwise runs
// fetch and stores its result. Fetch errors are returned without poisoning
// the cache; a later caller retries.
func (c *Cache[T]) Get(now time.Time, fetch func() (T, error)) (T, error) {
	c.mu.Lock()
	for {
		if !c.entry.Stale(now, c.ttl) {
			value := c.entry.Value
			c.mu.Unlock()
			return value, nil
		}
		if !c.inflight {
			break
		}
		done := c.done
		c.mu.Unlock()
		<-done
		c.mu.Lock()
	}
	c.inflight = true
	c.done = make(chan struct{})
	c.mu.Unlock()

	value, err := fetch()

	c.mu.Lock()
	c.inflight = false
	close(c.done)
	if err == nil {
		c.entry = Entry[T]{Value: value, FetchedAt: now}
	}
	c.mu.Unlock()

	if err != nil {
		var zero T
		return zero, err
	}
	return value, nil
}

// Invalidate drops the cached value so the next Get refetches.
func (c *Cache[T]) Invalidate() {
	c.mu.Lock()
	c.entry = Entry[T]{}
	c.mu.Unlock()
}
