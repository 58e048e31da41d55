package collect

import (
	"slices"
	"sort"
)

// OrderedMap is a string-keyed mapping that iterates in insertion order.
//
// Go's built-in maps have no stable order, so operations that must preserve
// the key order of their input accept a *OrderedMap. A plain map[string]V is also
// accepted everywhere a mapping is expected; it is visited in sorted key order.
type OrderedMap struct {
	keys   []string
	values map[string]any
}

// NewOrderedMap creates an empty OrderedMap.
func NewOrderedMap() *OrderedMap {
	return &OrderedMap{values: make(map[string]any)}
}

// OrderedMapFrom copies m into a new OrderedMap, ordering keys lexically.
func OrderedMapFrom[V any](m map[string]V) *OrderedMap {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := &OrderedMap{keys: keys, values: make(map[string]any, len(m))}
	for k, v := range m {
		out.values[k] = v
	}
	return out
}

// Set stores value under key. A new key is appended to the iteration order;
// an existing key keeps its position. Set returns m for chaining.
func (m *OrderedMap) Set(key string, value any) *OrderedMap {
	if m.values == nil {
		m.values = make(map[string]any)
	}
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = value
	return m
}

// Get returns the value stored under key and whether it was present.
func (m *OrderedMap) Get(key string) (any, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *OrderedMap) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Delete removes key and returns m for chaining.
func (m *OrderedMap) Delete(key string) *OrderedMap {
	if _, ok := m.values[key]; !ok {
		return m
	}
	delete(m.values, key)
	if i := slices.Index(m.keys, key); i >= 0 {
		m.keys = slices.Delete(m.keys, i, i+1)
	}
	return m
}

// Keys returns a copy of the keys in iteration order.
func (m *OrderedMap) Keys() []string { return slices.Clone(m.keys) }

// Len returns the number of entries.
func (m *OrderedMap) Len() int { return len(m.keys) }

// Each calls fn(key, value) for every entry in iteration order.
func (m *OrderedMap) Each(fn func(key string, value any)) {
	for _, k := range m.keys {
		fn(k, m.values[k])
	}
}

// ToMap returns the entries as a plain Go map.
func (m *OrderedMap) ToMap() map[string]any {
	out := make(map[string]any, len(m.keys))
	for _, k := range m.keys {
		out[k] = m.values[k]
	}
	return out
}
