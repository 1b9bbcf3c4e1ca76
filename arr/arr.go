package arr

// ─────────────────────────────────────────────────────────────────────────────
// Conversion
// ─────────────────────────────────────────────────────────────────────────────

// ToArray copies a variadic argument list (or any slice expanded with ...)
// into a fresh, independent slice. The result is never nil.
//
//	args := arr.ToArray(1, 2, 3) // → []any{1, 2, 3}
func ToArray[T any](items ...T) []T {
	out := make([]T, len(items))
	copy(out, items)
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// Each calls fn(value, index, items) for every element, in order.
func Each[T any](items []T, fn func(T, int, []T)) {
	for i, item := range items {
		fn(item, i, items)
	}
}

// Keys returns the indices of items (0 … len-1).
func Keys[T any](items []T) []int {
	keys := make([]int, len(items))
	for i := range keys {
		keys[i] = i
	}
	return keys
}

// Values returns a copy of items, index-aligned with [Keys].
func Values[T any](items []T) []T {
	return ToArray(items...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Transformation
// ─────────────────────────────────────────────────────────────────────────────

// Map applies fn(item, index) to each element and returns a new slice.
func Map[T, U any](items []T, fn func(T, int) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = fn(item, i)
	}
	return out
}

// Filter returns elements for which fn(item, index) returns true.
func Filter[T any](items []T, fn func(T, int) bool) []T {
	out := make([]T, 0, len(items))
	for i, item := range items {
		if fn(item, i) {
			out = append(out, item)
		}
	}
	return out
}

// Combine pairs equal-length key and value slices.
// Returns [ErrMismatchedLengths] if lengths differ.
func Combine[K comparable, V any](keys []K, values []V) ([]Pair[K, V], error) {
	if len(keys) != len(values) {
		return nil, ErrMismatchedLengths
	}
	out := make([]Pair[K, V], len(keys))
	for i, k := range keys {
		out[i] = Pair[K, V]{First: k, Second: values[i]}
	}
	return out, nil
}

// Pair holds two values of possibly different types.
type Pair[A, B any] struct {
	First  A
	Second B
}
