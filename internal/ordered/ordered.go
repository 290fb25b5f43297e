// Package ordered provides a string-keyed map that preserves insertion order.
//
// Schema output ordering is derived from input document ordering, so the
// model cannot be held in plain Go maps. Map remembers the order in which
// keys were first inserted and iterates in that order.
package ordered

// Map is a string-keyed map with deterministic iteration order.
// The zero value is ready to use; read methods treat a nil map as empty.
type Map[V any] struct {
	keys  []string
	items map[string]V
}

// New returns an empty map.
func New[V any]() *Map[V] {
	return &Map[V]{items: make(map[string]V)}
}

// Set stores value under key. A key seen for the first time is appended to
// the iteration order; overwriting an existing key replaces the value but
// keeps the key's original position.
func (m *Map[V]) Set(key string, value V) {
	if m.items == nil {
		m.items = make(map[string]V)
	}

	if _, ok := m.items[key]; !ok {
		m.keys = append(m.keys, key)
	}

	m.items[key] = value
}

// Get returns the value stored under key and whether the key is present.
func (m *Map[V]) Get(key string) (V, bool) {
	if m == nil {
		var zero V
		return zero, false
	}

	v, ok := m.items[key]

	return v, ok
}

// Has reports whether key is present.
func (m *Map[V]) Has(key string) bool {
	if m == nil {
		return false
	}

	_, ok := m.items[key]

	return ok
}

// Len returns the number of keys.
func (m *Map[V]) Len() int {
	if m == nil {
		return 0
	}

	return len(m.keys)
}

// Keys returns a copy of the keys in insertion order.
func (m *Map[V]) Keys() []string {
	if m == nil {
		return nil
	}

	out := make([]string, len(m.keys))
	copy(out, m.keys)

	return out
}

// Each calls fn for every key/value pair in insertion order.
func (m *Map[V]) Each(fn func(key string, value V)) {
	if m == nil {
		return
	}

	for _, k := range m.keys {
		fn(k, m.items[k])
	}
}
