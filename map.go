package chainmap

import "iter"

// Map is a hash table mapping unique keys to values, with separate chaining
// for collisions. The bucket array doubles (with a full rehash) whenever the
// load factor crosses the threshold; it never shrinks, except through Clear.
// Map is not safe for concurrent use - callers that share one across
// goroutines need their own lock.
type Map[K comparable, V any] struct {
	table[K, V]
}

// Returns a new map with the given bucket count. A capacity <= 0 means
// DefaultCapacity.
func New[K comparable, V any](capacity int, opts ...Option[K, V]) *Map[K, V] {
	var m Map[K, V]
	m.init(capacity, opts...)

	return &m
}

// Add stores a new key. Fails with ErrDuplicateKey, leaving the map
// untouched, if the key is already present.
func (m *Map[K, V]) Add(key K, value V) error {
	if !m.add(key, value) {
		return ErrDuplicateKey
	}

	return nil
}

// AddOrReplace stores the key, overwriting the value in place when the key
// already exists. Returns true when an existing value was replaced, false
// when a new entry was inserted.
func (m *Map[K, V]) AddOrReplace(key K, value V) bool {
	return m.set(key, value)
}

// Get returns the stored value, or ErrKeyNotFound. Probe with Find or
// ContainsKey to avoid the error.
func (m *Map[K, V]) Get(key K) (V, error) {
	v, ok := m.get(key)
	if !ok {
		return m.emptyV, ErrKeyNotFound
	}

	return v, nil
}

// Find returns a pointer to the stored value, or false when the key is
// absent. The pointer is a view into the table, valid only until the next
// mutating call - growth or an insert into the same bucket may move the
// entry.
func (m *Map[K, V]) Find(key K) (*V, bool) {
	if e := m.lookup(key); e != nil {
		return &e.value, true
	}

	return nil, false
}

// Checks whether a key is in the map.
func (m *Map[K, V]) ContainsKey(key K) bool {
	return m.lookup(key) != nil
}

// Remove detaches the key's entry from its bucket. Returns whether the key
// was present. The bucket array keeps its capacity.
func (m *Map[K, V]) Remove(key K) bool {
	return m.delete(key)
}

// Clear discards all entries and resets the bucket array to
// DefaultCapacity, regardless of prior growth. The collision counter resets
// with it.
func (m *Map[K, V]) Clear() {
	m.reset()
}

// Keys returns every stored key: buckets in index order, each chain in
// insertion order.
func (m *Map[K, V]) Keys() []K {
	keys := make([]K, 0, m.size)
	for k := range m.All() {
		keys = append(keys, k)
	}

	return keys
}

// Values returns every stored value, in the same order as Keys.
func (m *Map[K, V]) Values() []V {
	values := make([]V, 0, m.size)
	for _, v := range m.All() {
		values = append(values, v)
	}

	return values
}

// All iterates over every entry exactly once, in the same bucket-major,
// insertion-within-bucket order as Keys and Values.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return m.all
}

// Number of stored entries.
func (m *Map[K, V]) Size() int {
	return m.size
}

// Length of the bucket array.
func (m *Map[K, V]) Capacity() int {
	return len(m.buckets)
}

// Ratio of stored entries to bucket count.
func (m *Map[K, V]) LoadFactor() float64 {
	return m.loadFactor()
}

// Collisions counts inserts that landed in a non-empty bucket. An
// approximate distribution metric, not a chain-length census.
func (m *Map[K, V]) Collisions() int {
	return m.collisions
}

func (m *Map[K, V]) Stats() Stats {
	return Stats{
		Size:       m.size,
		Capacity:   len(m.buckets),
		LoadFactor: m.loadFactor(),
		Collisions: m.collisions,
	}
}
