package numeric

// MapContains reports whether m has an entry under key. The map is only
// read, never mutated, and a miss is an ordinary false — not an error.
//
// Complexity: O(1) expected (Go maps are hashed).
func MapContains[K comparable, V any](m map[K]V, key K) bool {
	_, ok := m[key]

	return ok
}
