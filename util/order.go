package util

import (
	"sort"

	"golang.org/x/exp/constraints"
)

// OrderedMapEntry is an accessor into a single (key, value) pair of a map.
type OrderedMapEntry[K constraints.Ordered, V any] struct {
	Key   K
	Value V
}

// OrderedSlice returns an ordered copy of the provided slice, the values are shallow-copied.
func OrderedSlice[V constraints.Ordered](values []V) []V {
	result := make([]V, len(values))
	copy(result, values)
	sort.Slice(result, func(i, j int) bool { return result[i] < result[j] })
	return result
}

// OrderedKeys returns the list of map keys ordered by key.
func OrderedKeys[K constraints.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// OrderedEntries returns the list of (key, value) pairs of the input map ordered by key.
func OrderedEntries[K constraints.Ordered, V any](m map[K]V) []OrderedMapEntry[K, V] {
	result := make([]OrderedMapEntry[K, V], 0, len(m))
	for _, k := range OrderedKeys(m) {
		result = append(result, OrderedMapEntry[K, V]{Key: k, Value: m[k]})
	}
	return result
}
