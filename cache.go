package dynlru

// Cache holds onto a value only after its key has been requested at
// least twice in recent memory. It is built from two RecencyMap tiers
// over the same key space:
//
//   - a seen ledger that records keys requested once, without values;
//   - a value store that caches values for keys requested again while
//     their ledger entry is still alive.
//
// A key lives in at most one tier at a time. Its lifecycle is
// unknown -> seen -> cached, where either tier may evict the key back
// to unknown under LRU pressure. There is no direct path from unknown
// to cached: caching always requires a repeat request.
//
// Cache is not safe for concurrent use; callers that share an instance
// across goroutines must provide their own locking.
type Cache[K comparable, V any] struct {
	seen   *RecencyMap[K, struct{}]
	store  *RecencyMap[K, V]
	hits   uint64
	misses uint64
}

// New creates a cache whose seen ledger holds up to seenCapacity keys
// and whose value store holds up to storeCapacity values. Either
// capacity may be 0: a zero seen capacity disables promotion entirely,
// a zero store capacity disables value caching. Negative capacities
// are treated as 0.
func New[K comparable, V any](seenCapacity, storeCapacity int) *Cache[K, V] {
	return &Cache[K, V]{
		seen:  NewRecencyMap[K, struct{}](seenCapacity),
		store: NewRecencyMap[K, V](storeCapacity),
	}
}

// GetOrCompute returns the value for key, calling produce when the
// value store cannot supply it. Exactly one of three cases applies:
//
//   - Hit: key is in the value store. The stored value is returned,
//     its recency refreshed, and produce is not called.
//   - Promotion: key is in the seen ledger. produce is called, the key
//     leaves the ledger, and the new value is cached in the store.
//   - First sighting: key is in neither tier. produce is called and
//     only the key is recorded in the seen ledger; the value is
//     returned without being cached.
//
// produce is called at most once per call. If it returns an error or
// panics, that failure propagates to the caller and the cache is left
// exactly as it was: no tier is mutated before produce has returned
// successfully.
func (c *Cache[K, V]) GetOrCompute(key K, produce func() (V, error)) (V, error) {
	if value, ok := c.store.GetAndTouch(key); ok {
		c.hits++
		return value, nil
	}

	promote := c.seen.Contains(key)

	value, err := produce()
	if err != nil {
		var zero V
		return zero, err
	}
	c.misses++

	if promote {
		c.seen.Remove(key)
		c.store.Insert(key, value)
	} else {
		c.seen.Insert(key, struct{}{})
	}
	return value, nil
}

// ContainsCached reports whether key currently has a cached value.
// Keys seen only once are not reported as cached.
func (c *Cache[K, V]) ContainsCached(key K) bool {
	return c.store.Contains(key)
}

// SetCapacities resizes both tiers independently. Shrinking a tier
// below its current size immediately evicts its least recently used
// entries; growing never evicts. Either capacity may be 0.
func (c *Cache[K, V]) SetCapacities(seenCapacity, storeCapacity int) {
	c.seen.SetCapacity(seenCapacity)
	c.store.SetCapacity(storeCapacity)
}

// SeenLen returns the number of keys currently in the seen ledger.
func (c *Cache[K, V]) SeenLen() int {
	return c.seen.Len()
}

// CachedLen returns the number of values currently in the value store.
func (c *Cache[K, V]) CachedLen() int {
	return c.store.Len()
}

// Clear empties both tiers. Hit/miss statistics are kept; use
// ResetStats to zero them.
func (c *Cache[K, V]) Clear() {
	c.seen.Clear()
	c.store.Clear()
}

// Stats returns the number of lookups served from the value store and
// the number that had to call the producer. Lookups whose producer
// failed count as neither.
func (c *Cache[K, V]) Stats() (hits, misses uint64) {
	return c.hits, c.misses
}

// ResetStats zeroes the hit/miss counters.
func (c *Cache[K, V]) ResetStats() {
	c.hits = 0
	c.misses = 0
}
