package common

import (
	"cmp"
	"slices"
)

// SortedKeys returns the keys of m in ascending order. Used wherever key
// order would otherwise depend on map iteration and must be stable.
func SortedKeys[M ~map[K]V, K cmp.Ordered, V any](m M) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	slices.Sort(keys)

	return keys
}

// SetOf builds a membership set from a slice.
func SetOf[S ~[]E, E comparable](s S) map[E]struct{} {
	set := make(map[E]struct{}, len(s))
	for _, e := range s {
		set[e] = struct{}{}
	}

	return set
}
