package chainmap

import "errors"

var (
	// Returned by Add when the key is already stored. Use AddOrReplace
	// for upsert semantics.
	ErrDuplicateKey = errors.New("chainmap: duplicate key")

	// Returned by Get when the key is absent. Use Find or ContainsKey
	// to probe without an error.
	ErrKeyNotFound = errors.New("chainmap: key not found")
)
