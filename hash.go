package chainmap

import (
	"hash/maphash"

	"github.com/cespare/xxhash/v2"
)

type HashFunc[K comparable] func(K) uint64

const (
	polySeed       = 17
	polyMultiplier = 31
)

// MakeDefaultHashFunc builds a hash function on top of the key's intrinsic
// hash (maphash.Comparable). Every table gets its own seed.
func MakeDefaultHashFunc[K comparable](seed maphash.Seed) HashFunc[K] {
	return func(k K) uint64 {
		return maphash.Comparable(seed, k)
	}
}

// PolynomialHashFunc hashes the key's string form with a rolling polynomial:
// seed 17, multiplier 31, wraparound arithmetic. Hashes stay uint64 all the
// way down, so there is no sign to normalize before the slot modulo.
func PolynomialHashFunc[K comparable]() HashFunc[K] {
	return func(k K) uint64 {
		h := uint64(polySeed)
		for _, c := range []byte(stringForm(k)) {
			h = h*polyMultiplier + uint64(c)
		}

		return h
	}
}

// XXHashFunc hashes the key's string form with xxhash.
func XXHashFunc[K comparable]() HashFunc[K] {
	return func(k K) uint64 {
		return xxhash.Sum64String(stringForm(k))
	}
}
