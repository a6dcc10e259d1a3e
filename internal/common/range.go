package common

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T number](lo, value, hi T) bool {
	return lo <= value && value <= hi
}

// Sum adds up f(e) over all elements of s.
func Sum[S ~[]E, E any, T number](s S, f func(E) T) T {
	var total T
	for _, e := range s {
		total += f(e)
	}

	return total
}
