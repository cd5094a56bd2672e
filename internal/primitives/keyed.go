package primitives

import "sort"

// ToMap folds keys into a map. The accumulator starts empty and fn is called
// once per key, in order, with the map built so far.
func ToMap[K comparable, V any](keys []K, fn func(acc map[K]V, key K) map[K]V) map[K]V {
	acc := make(map[K]V, len(keys))
	for _, k := range keys {
		acc = fn(acc, k)
	}
	return acc
}

// SortedKeys returns the keys of m in ascending order.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
