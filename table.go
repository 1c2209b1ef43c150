package chainmap

import "hash/maphash"

const (
	// DefaultCapacity is the bucket count a table starts with when the
	// caller does not supply one, and the count Clear resets to.
	DefaultCapacity = 16

	defaultMaxLoad = 0.75
)

type entry[K comparable, V any] struct {
	key   K
	value V
}

// bucket is an insertion-ordered chain of the entries sharing a slot index.
// A nil bucket is an empty bucket; the chain is allocated on first insert.
type bucket[K comparable, V any] []entry[K, V]

type table[K comparable, V any] struct {
	buckets []bucket[K, V]

	size       int
	collisions int
	maxLoad    float64

	hashFunc HashFunc[K]

	emptyV V
}

type Option[K comparable, V any] func(t *table[K, V])

// Override default hash function. A table uses one hash function for every
// slot computation, rehash included.
func WithHashFunc[K comparable, V any](f HashFunc[K]) Option[K, V] {
	return func(t *table[K, V]) {
		t.hashFunc = f
	}
}

// Override the load factor threshold that triggers growth.
func WithMaxLoadFactor[K comparable, V any](maxLoad float64) Option[K, V] {
	return func(t *table[K, V]) {
		t.maxLoad = maxLoad
	}
}

func (t *table[K, V]) init(capacity int, opts ...Option[K, V]) {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	t.buckets = make([]bucket[K, V], capacity)
	t.maxLoad = defaultMaxLoad

	for _, opt := range opts {
		opt(t)
	}

	if t.hashFunc == nil {
		t.hashFunc = MakeDefaultHashFunc[K](maphash.MakeSeed())
	}
}

func (t *table[K, V]) slot(key K) int {
	return int(t.hashFunc(key) % uint64(len(t.buckets)))
}

// lookup returns a pointer to the stored entry, or nil. The pointer is valid
// only until the next mutation.
func (t *table[K, V]) lookup(key K) *entry[K, V] {
	b := t.buckets[t.slot(key)]
	for i := range b {
		if b[i].key == key {
			return &b[i]
		}
	}

	return nil
}

func (t *table[K, V]) get(key K) (V, bool) {
	if e := t.lookup(key); e != nil {
		return e.value, true
	}

	return t.emptyV, false
}

// add appends a new entry, or returns false without mutating anything when
// the key is already stored. The duplicate probe runs before the growth
// check so a failing add can never change the capacity; the insert slot is
// computed against the post-growth capacity.
func (t *table[K, V]) add(key K, value V) bool {
	if t.lookup(key) != nil {
		return false
	}

	t.growIfNeeded()
	t.append(key, value)

	return true
}

// set replaces the value in place when the key is present (entry identity
// and chain position preserved, size unchanged), otherwise inserts. Returns
// whether a replacement happened. The insert path is growth-checked exactly
// like add.
func (t *table[K, V]) set(key K, value V) bool {
	if e := t.lookup(key); e != nil {
		e.value = value
		return true
	}

	t.growIfNeeded()
	t.append(key, value)

	return false
}

func (t *table[K, V]) append(key K, value V) {
	idx := t.slot(key)
	if len(t.buckets[idx]) > 0 {
		t.collisions++
	}

	t.buckets[idx] = append(t.buckets[idx], entry[K, V]{key: key, value: value})
	t.size++
}

func (t *table[K, V]) delete(key K) bool {
	idx := t.slot(key)
	b := t.buckets[idx]

	for i := range b {
		if b[i].key != key {
			continue
		}

		t.buckets[idx] = append(b[:i], b[i+1:]...)
		t.size--

		return true
	}

	return false
}

func (t *table[K, V]) growIfNeeded() {
	if float64(t.size)/float64(len(t.buckets)) <= t.maxLoad {
		return
	}

	t.grow()
}

// grow doubles the bucket array and rehashes every entry into it with the
// table's hash function. Entries are known unique, so no duplicate probe.
func (t *table[K, V]) grow() {
	next := make([]bucket[K, V], len(t.buckets)*2)

	for _, b := range t.buckets {
		for _, e := range b {
			idx := int(t.hashFunc(e.key) % uint64(len(next)))
			next[idx] = append(next[idx], e)
		}
	}

	t.buckets = next
}

// reset discards every entry and hands back a fresh bucket array at the
// default capacity, even if the table had grown or was built larger.
func (t *table[K, V]) reset() {
	t.buckets = make([]bucket[K, V], DefaultCapacity)
	t.size = 0
	t.collisions = 0
}

func (t *table[K, V]) loadFactor() float64 {
	return float64(t.size) / float64(len(t.buckets))
}

// all visits every live entry exactly once: buckets in index order, each
// chain in insertion order.
func (t *table[K, V]) all(yield func(K, V) bool) {
	for _, b := range t.buckets {
		for i := range b {
			if !yield(b[i].key, b[i].value) {
				return
			}
		}
	}
}
