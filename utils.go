package chainmap

import (
	"fmt"
	"unsafe"
)

// Estimates a bucket count whose entries fit in the given memory size in
// bytes, assuming the table is loaded up to the default threshold (3/4).
// Bucket headers and allocator overhead are not accounted for.
func CapacityFromSize[K comparable, V any](size uintptr) int {
	sizeOfEntry := unsafe.Sizeof(entry[K, V]{})
	numEntries := size / sizeOfEntry

	return int(numEntries * 4 / 3)
}

// stringForm is the key representation the string-form hash functions run
// over. Strings pass through untouched so hashes stay stable across key
// types that render identically.
func stringForm[K comparable](k K) string {
	switch v := any(k).(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(k)
	}
}
