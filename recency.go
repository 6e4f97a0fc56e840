package dynlru

// noNode marks an empty link or an empty list in the node arena.
const noNode = -1

type recencyNode[K comparable, P any] struct {
	key     K
	payload P
	prev    int
	next    int
}

// RecencyMap is a bounded map that keeps its entries in strict
// most-recently-used order. Every insert and every successful lookup
// moves the touched key to the front of the order; when the entry
// count would exceed the capacity, the entry at the back is evicted.
//
// The order is a doubly-linked list stored in a slice-backed arena and
// addressed by stable integer indices, with a map from key to index.
// All single-entry operations are O(1); SetCapacity and Clear are
// linear in the number of entries they remove.
//
// The capacity can be changed at any time, and 0 is legal: inserts
// into a zero-capacity map are dropped immediately.
//
// RecencyMap is not safe for concurrent use.
type RecencyMap[K comparable, P any] struct {
	capacity int
	index    map[K]int
	nodes    []recencyNode[K, P]
	free     []int
	head     int // most recently used
	tail     int // least recently used
}

// NewRecencyMap creates an empty map bounded by capacity.
// A negative capacity is treated as 0.
func NewRecencyMap[K comparable, P any](capacity int) *RecencyMap[K, P] {
	if capacity < 0 {
		capacity = 0
	}
	return &RecencyMap[K, P]{
		capacity: capacity,
		index:    make(map[K]int),
		head:     noNode,
		tail:     noNode,
	}
}

// GetAndTouch returns the payload stored for key and marks the key as
// most recently used. Returns the zero payload and false if the key is
// absent.
func (m *RecencyMap[K, P]) GetAndTouch(key K) (P, bool) {
	i, ok := m.index[key]
	if !ok {
		var zero P
		return zero, false
	}
	m.moveToFront(i)
	return m.nodes[i].payload, true
}

// Insert adds or overwrites the entry for key and marks it as most
// recently used. If the insert pushes the entry count above the
// capacity, the least recently used entry is evicted; the entry just
// inserted is never the one evicted. With capacity 0 the insert of a
// new key is a no-op.
func (m *RecencyMap[K, P]) Insert(key K, payload P) {
	if i, ok := m.index[key]; ok {
		m.nodes[i].payload = payload
		m.moveToFront(i)
		return
	}
	if m.capacity == 0 {
		return
	}
	i := m.alloc(key, payload)
	m.index[key] = i
	m.pushFront(i)
	if len(m.index) > m.capacity {
		m.evictOldest()
	}
}

// Remove deletes the entry for key and returns its payload.
// The recency order of the remaining entries is unchanged.
func (m *RecencyMap[K, P]) Remove(key K) (P, bool) {
	i, ok := m.index[key]
	if !ok {
		var zero P
		return zero, false
	}
	payload := m.nodes[i].payload
	m.deleteNode(i)
	return payload, true
}

// SetCapacity changes the bound. Shrinking below the current size
// evicts least recently used entries until the new bound holds;
// growing never evicts. A negative capacity is treated as 0.
func (m *RecencyMap[K, P]) SetCapacity(capacity int) {
	if capacity < 0 {
		capacity = 0
	}
	m.capacity = capacity
	for len(m.index) > m.capacity {
		m.evictOldest()
	}
}

// Capacity returns the current bound.
func (m *RecencyMap[K, P]) Capacity() int {
	return m.capacity
}

// Len returns the number of entries currently held.
func (m *RecencyMap[K, P]) Len() int {
	return len(m.index)
}

// Contains reports whether key is present, without touching it.
func (m *RecencyMap[K, P]) Contains(key K) bool {
	_, ok := m.index[key]
	return ok
}

// Clear removes all entries and resets the recency order.
// The capacity is unchanged.
func (m *RecencyMap[K, P]) Clear() {
	m.index = make(map[K]int)
	m.nodes = nil
	m.free = nil
	m.head = noNode
	m.tail = noNode
}

// alloc places an entry into a free arena slot, growing the arena only
// when no recycled slot is available, and returns the slot index.
func (m *RecencyMap[K, P]) alloc(key K, payload P) int {
	if n := len(m.free); n > 0 {
		i := m.free[n-1]
		m.free = m.free[:n-1]
		m.nodes[i] = recencyNode[K, P]{key: key, payload: payload, prev: noNode, next: noNode}
		return i
	}
	m.nodes = append(m.nodes, recencyNode[K, P]{key: key, payload: payload, prev: noNode, next: noNode})
	return len(m.nodes) - 1
}

// deleteNode unlinks slot i, removes its key from the index, and
// recycles the slot. The node is zeroed so the arena does not pin the
// evicted key or payload.
func (m *RecencyMap[K, P]) deleteNode(i int) {
	m.unlink(i)
	delete(m.index, m.nodes[i].key)
	m.nodes[i] = recencyNode[K, P]{prev: noNode, next: noNode}
	m.free = append(m.free, i)
}

func (m *RecencyMap[K, P]) evictOldest() {
	if m.tail != noNode {
		m.deleteNode(m.tail)
	}
}

func (m *RecencyMap[K, P]) pushFront(i int) {
	m.nodes[i].prev = noNode
	m.nodes[i].next = m.head
	if m.head != noNode {
		m.nodes[m.head].prev = i
	}
	m.head = i
	if m.tail == noNode {
		m.tail = i
	}
}

func (m *RecencyMap[K, P]) unlink(i int) {
	prev, next := m.nodes[i].prev, m.nodes[i].next
	if prev != noNode {
		m.nodes[prev].next = next
	} else {
		m.head = next
	}
	if next != noNode {
		m.nodes[next].prev = prev
	} else {
		m.tail = prev
	}
	m.nodes[i].prev = noNode
	m.nodes[i].next = noNode
}

func (m *RecencyMap[K, P]) moveToFront(i int) {
	if m.head == i {
		return
	}
	m.unlink(i)
	m.pushFront(i)
}
