package chainmap

import "iter"

// Set is a keys-only companion to Map, backed by the same chained table.
// It shares Map's growth policy and ordering contract, and like Map it is
// not safe for concurrent use.
type Set[K comparable] struct {
	table[K, struct{}]
}

// Returns a new set with the given bucket count. A capacity <= 0 means
// DefaultCapacity.
func NewSet[K comparable](capacity int, opts ...Option[K, struct{}]) *Set[K] {
	var s Set[K]
	s.init(capacity, opts...)

	return &s
}

// Add stores a new key. Fails with ErrDuplicateKey if it is already present.
func (s *Set[K]) Add(key K) error {
	if !s.add(key, struct{}{}) {
		return ErrDuplicateKey
	}

	return nil
}

// Put stores the key, reporting whether it was already present.
func (s *Set[K]) Put(key K) bool {
	return s.set(key, struct{}{})
}

// Checks whether a key is in the set.
func (s *Set[K]) Contains(key K) bool {
	return s.lookup(key) != nil
}

// Remove detaches the key. Returns whether it was present.
func (s *Set[K]) Remove(key K) bool {
	return s.delete(key)
}

// Clear discards all keys and resets the bucket array to DefaultCapacity.
func (s *Set[K]) Clear() {
	s.reset()
}

// Items returns every stored key: buckets in index order, each chain in
// insertion order.
func (s *Set[K]) Items() []K {
	items := make([]K, 0, s.size)
	for k := range s.All() {
		items = append(items, k)
	}

	return items
}

// All iterates over every key exactly once, in the same order as Items.
func (s *Set[K]) All() iter.Seq[K] {
	return func(yield func(K) bool) {
		s.all(func(k K, _ struct{}) bool {
			return yield(k)
		})
	}
}

// Number of stored keys.
func (s *Set[K]) Size() int {
	return s.size
}

// Length of the bucket array.
func (s *Set[K]) Capacity() int {
	return len(s.buckets)
}
