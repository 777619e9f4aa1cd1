package resolve

// OrderedMapping is an insertion-ordered K -> V mapping, used for both
// State.Mapping (pinned candidates) and State.Criteria (criteria by
// identifier). It keeps a slice of keys for order alongside a map for
// O(1) lookup.
type OrderedMapping[K comparable, V any] struct {
	order  []K
	values map[K]V
}

func NewOrderedMapping[K comparable, V any]() *OrderedMapping[K, V] {
	return &OrderedMapping[K, V]{values: make(map[K]V)}
}

// Set inserts or updates the value at k. If k is new, it is appended to
// the end of the insertion order.
func (m *OrderedMapping[K, V]) Set(k K, v V) {
	if _, exists := m.values[k]; !exists {
		m.order = append(m.order, k)
	}
	m.values[k] = v
}

// Delete removes k, if present, preserving the order of the remainder.
func (m *OrderedMapping[K, V]) Delete(k K) {
	if _, exists := m.values[k]; !exists {
		return
	}
	delete(m.values, k)
	for i, kk := range m.order {
		if kk == k {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
}

// Get returns the value at k, if present.
func (m *OrderedMapping[K, V]) Get(k K) (V, bool) {
	v, ok := m.values[k]
	return v, ok
}

// Keys returns the keys in insertion order. The returned slice is a copy
// and safe for the caller to keep or mutate.
func (m *OrderedMapping[K, V]) Keys() []K {
	out := make([]K, len(m.order))
	copy(out, m.order)
	return out
}

// Len returns the number of entries.
func (m *OrderedMapping[K, V]) Len() int {
	return len(m.order)
}

// Last returns the most-recently-inserted key and value, i.e. the tail of
// the insertion order.
func (m *OrderedMapping[K, V]) Last() (k K, v V, ok bool) {
	if len(m.order) == 0 {
		return k, v, false
	}
	k = m.order[len(m.order)-1]
	v = m.values[k]
	return k, v, true
}

// PopLast removes and returns the most-recently-inserted entry.
func (m *OrderedMapping[K, V]) PopLast() (k K, v V, ok bool) {
	k, v, ok = m.Last()
	if !ok {
		return k, v, false
	}
	m.Delete(k)
	return k, v, true
}

// Clone performs a shallow copy: a new order slice and values map, but the
// V values themselves are copied by value (Go assignment semantics), not
// deep-cloned.
func (m *OrderedMapping[K, V]) Clone() *OrderedMapping[K, V] {
	clone := &OrderedMapping[K, V]{
		order:  make([]K, len(m.order)),
		values: make(map[K]V, len(m.values)),
	}
	copy(clone.order, m.order)
	for k, v := range m.values {
		clone.values[k] = v
	}
	return clone
}
