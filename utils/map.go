package utils

// MapKeys returns the keys of m in no particular order.
func MapKeys[K comparable, T any](m map[K]T) []K {
	keys := make([]K, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	return keys
}
