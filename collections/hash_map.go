package collections

import (
	"iter"
	"maps"

	"golang.org/x/exp/constraints"
)

// Entry is a key-value pair, used to seed maps at construction.
type Entry[K comparable, V any] struct {
	Key   K
	Value V
}

type hashMap[K comparable, V any] struct {
	entries map[K]V
}

// NewMap returns an empty Map backed by the built-in hash table. The value
// satisfies KeysIterable, ValuesIterable and EntriesIterable.
func NewMap[K comparable, V any]() Map[K, V] {
	return &hashMap[K, V]{
		entries: make(map[K]V),
	}
}

// NewStringMap returns an empty string-keyed Map.
func NewStringMap[V any]() Map[string, V] {
	return NewMap[string, V]()
}

// NewStringMapWith returns a string-keyed Map holding a single entry.
func NewStringMapWith[V any](k string, v V) Map[string, V] {
	m := NewStringMap[V]()
	m.Set(k, v)
	return m
}

// NewNumberMap returns an integer-keyed Map seeded with the given pairs.
// A later pair with a duplicate key overwrites the earlier one.
func NewNumberMap[K constraints.Integer, V any](pairs ...Entry[K, V]) Map[K, V] {
	m := &hashMap[K, V]{
		entries: make(map[K]V, len(pairs)),
	}
	for _, p := range pairs {
		m.entries[p.Key] = p.Value
	}
	return m
}

func (m *hashMap[K, V]) Clear() {
	// replace the whole backing instead of deleting per key
	m.entries = make(map[K]V)
}

func (m *hashMap[K, V]) Delete(k K) bool {
	if _, ok := m.entries[k]; !ok {
		return false
	}
	delete(m.entries, k)
	return true
}

func (m *hashMap[K, V]) Get(k K) (V, bool) {
	v, ok := m.entries[k]
	return v, ok
}

func (m *hashMap[K, V]) Has(k K) bool {
	_, ok := m.entries[k]
	return ok
}

func (m *hashMap[K, V]) Set(k K, v V) {
	m.entries[k] = v
}

func (m *hashMap[K, V]) ForEach(f func(k K, v V)) {
	for k, v := range m.entries {
		f(k, v)
	}
}

func (m *hashMap[K, V]) Size() int {
	return len(m.entries)
}

func (m *hashMap[K, V]) Keys() iter.Seq[K] {
	return maps.Keys(m.entries)
}

func (m *hashMap[K, V]) Values() iter.Seq[V] {
	return maps.Values(m.entries)
}

func (m *hashMap[K, V]) Entries() iter.Seq2[K, V] {
	return maps.All(m.entries)
}
