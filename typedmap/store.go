package typedmap

import (
	"iter"
	"slices"
)

// store keeps entries in insertion order: a Go map for lookup plus a slice
// of keys for iteration. Overwriting a key keeps its original position.
// Callers treat a store as immutable once it backs a Map and derive new
// ones with clone.
type store[K comparable, V any] struct {
	keys []K
	data map[K]V
}

func newStore[K comparable, V any](capacity int) store[K, V] {
	return store[K, V]{
		keys: make([]K, 0, capacity),
		data: make(map[K]V, capacity),
	}
}

func (s store[K, V]) clone() store[K, V] {
	out := newStore[K, V](len(s.keys) + 1)
	out.keys = append(out.keys, s.keys...)

	for k, v := range s.data {
		out.data[k] = v
	}

	return out
}

func (s *store[K, V]) set(key K, value V) {
	if s.data == nil {
		*s = newStore[K, V](1)
	}

	if _, ok := s.data[key]; !ok {
		s.keys = append(s.keys, key)
	}

	s.data[key] = value
}

func (s *store[K, V]) remove(key K) {
	if _, ok := s.data[key]; !ok {
		return
	}

	delete(s.data, key)

	s.keys = slices.DeleteFunc(s.keys, func(k K) bool { return k == key })
}

func (s store[K, V]) get(key K) (V, bool) { //nolint:ireturn
	v, ok := s.data[key]

	return v, ok
}

func (s store[K, V]) has(key K) bool {
	_, ok := s.data[key]

	return ok
}

func (s store[K, V]) size() int {
	return len(s.keys)
}

// seq yields entries in insertion order.
func (s store[K, V]) seq() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range s.keys {
			if !yield(k, s.data[k]) {
				return
			}
		}
	}
}
