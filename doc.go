// Package dynlru provides a bounded-memory LRU cache that only retains
// a value after the same key has been requested at least twice.
//
// Most workloads that look cacheable are dominated by keys requested
// exactly once: large data structures that cross-reference a few shared
// chunks, dictionary-compressed files sharing a handful of dictionaries,
// images embedding the same color profiles. A conventional LRU pays
// full storage cost for every one of those single-use keys. This cache
// does not: a first request only records the key in a lightweight
// "seen" ledger, and the value is cached only when the key comes back
// while its ledger entry is still alive.
//
// # Key Features
//
//   - Generic over any comparable key type and any value type
//   - Two independent LRU tiers: a keys-only seen ledger and a value store
//   - Values are cached only on the second request, never the first
//   - Both tier capacities are adjustable at runtime, including to 0
//   - Hit/miss statistics
//   - Zero dependencies - uses only Go standard library
//   - O(1) lookup, promotion, and eviction
//
// # Usage
//
// Create a cache with capacities for both tiers:
//
//	cache := dynlru.New[string, []byte](1024, 128)
//
// All reads and writes go through a single entry point. The producer
// is only called when the value store cannot answer:
//
//	profile, err := cache.GetOrCompute(profileID, func() ([]byte, error) {
//		return loadColorProfile(profileID)
//	})
//
// The first request for a key calls the producer and remembers only
// the key. A second request while that memory lasts calls the producer
// once more and caches the result; from then on the cached value is
// returned and the producer stays untouched:
//
//	cache.GetOrCompute("dict-7", load) // producer called, not cached
//	cache.GetOrCompute("dict-7", load) // producer called, now cached
//	cache.GetOrCompute("dict-7", load) // served from cache
//
// Capacities can be changed at any time; shrinking evicts the least
// recently used entries immediately:
//
//	cache.SetCapacities(4096, 256)
//
// # Errors
//
// The cache itself cannot fail. An error returned by the producer is
// passed through unchanged, and the cache is left exactly as it was
// before the call: nothing is recorded or cached for a failed
// production. A producer panic propagates the same way.
//
// # Concurrency
//
// The cache performs no internal locking. Share an instance across
// goroutines by wrapping it in a mutex:
//
//	var mu sync.Mutex
//	mu.Lock()
//	v, err := cache.GetOrCompute(key, produce)
//	mu.Unlock()
//
// # Performance Characteristics
//
//   - GetOrCompute, ContainsCached: O(1) plus the producer's own cost
//   - SetCapacities, Clear: O(number of entries removed)
//   - Memory is bounded by the two configured capacities at all times;
//     the seen ledger stores keys only, so its per-entry cost is small
//
// The recency order of each tier lives in a slice-backed arena of
// nodes linked by integer indices, so steady-state operation allocates
// nothing beyond map bookkeeping.
package dynlru
