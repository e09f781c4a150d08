// Package maputil provides helpers for deterministic map iteration.
package maputil

import (
	"maps"
	"slices"
)

// SortedKeys returns the keys of m in ascending order. A nil map yields an
// empty, non-nil slice.
func SortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	keys = slices.AppendSeq(keys, maps.Keys(m))
	slices.Sort(keys)
	return keys
}
