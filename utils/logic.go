package utils

// TT is a ternary: x when condition holds, y otherwise. Both are evaluated.
func TT[T any](condition bool, x T, y T) T {
	if condition {
		return x
	}
	return y
}

func NewPtr[T any](value T) *T {
	return &value
}
