// Package collection provides generic, functional-style helpers for slices.
package collection

// Map transforms each element of slice s using fn.
func Map[T, R any](s []T, fn func(T) R) []R {
	out := make([]R, len(s))
	for i, v := range s {
		out[i] = fn(v)
	}
	return out
}

// Filter returns elements of s for which fn returns true.
func Filter[T any](s []T, fn func(T) bool) []T {
	var out []T
	for _, v := range s {
		if fn(v) {
			out = append(out, v)
		}
	}
	return out
}

// GroupBy groups elements of s by the key fn returns, preserving the order
// in which each key first appears via the returned key slice.
func GroupBy[T any, K comparable](s []T, fn func(T) K) (map[K][]T, []K) {
	groups := make(map[K][]T)
	var order []K
	for _, v := range s {
		k := fn(v)
		if _, seen := groups[k]; !seen {
			order = append(order, k)
		}
		groups[k] = append(groups[k], v)
	}
	return groups, order
}

// Pluck extracts one field from every element of s.
func Pluck[T, R any](s []T, fn func(T) R) []R {
	return Map(s, fn)
}
