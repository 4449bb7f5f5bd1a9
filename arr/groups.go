package arr

import (
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Groups is the result of [GroupBy]: an insertion-ordered mapping from key to
// the elements that produced it.
//
// Portability note: this is the Go rendition of a JavaScript object or a
// Python dict, both of which iterate in insertion order. A plain Go map does
// not, so the keys are tracked by an ordered map.
type Groups[K comparable, T any] struct {
	om *orderedmap.OrderedMap[K, []T]
}

func newGroups[K comparable, T any]() *Groups[K, T] {
	return &Groups[K, T]{om: orderedmap.New[K, []T]()}
}

func (g *Groups[K, T]) add(k K, item T) {
	group, _ := g.om.Get(k)
	g.om.Set(k, append(group, item))
}

// Get returns the elements grouped under k.
func (g *Groups[K, T]) Get(k K) ([]T, bool) {
	return g.om.Get(k)
}

// Len returns the number of distinct keys.
func (g *Groups[K, T]) Len() int { return g.om.Len() }

// Keys returns the keys in first-seen order.
func (g *Groups[K, T]) Keys() []K {
	keys := make([]K, 0, g.om.Len())
	for pair := g.om.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}

// Each calls fn for every group in first-seen key order.
func (g *Groups[K, T]) Each(fn func(K, []T)) {
	for pair := g.om.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key, pair.Value)
	}
}

// Map returns the groups as a plain Go map. The group slices are shared with g.
func (g *Groups[K, T]) Map() map[K][]T {
	out := make(map[K][]T, g.om.Len())
	g.Each(func(k K, items []T) { out[k] = items })
	return out
}

// MarshalJSON encodes the groups as a JSON object whose members appear in
// first-seen key order. K must be a string or integer type, or implement
// encoding.TextMarshaler.
func (g *Groups[K, T]) MarshalJSON() ([]byte, error) {
	return g.om.MarshalJSON()
}
