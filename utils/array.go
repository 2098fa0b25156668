package utils

import "math/rand/v2"

// RandomElement panics on an empty slice.
func RandomElement[T any](array []T) T {
	if len(array) == 0 {
		panic("utils.RandomElement: empty slice")
	}
	return array[rand.IntN(len(array))]
}

// ValuesFunc maps array through f, skipping elements the optional filter
// rejects.
func ValuesFunc[T any, V any](array []T, f func(T) V, filter ...func(T) bool) []V {
	values := make([]V, 0, len(array))
	for _, element := range array {
		if len(filter) > 0 && !filter[0](element) {
			continue
		}
		values = append(values, f(element))
	}
	return values
}
