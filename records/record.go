// Package records implements the ordered field-value record used to
// interchange map-shaped data with code outside the container layer. A Record
// holds only fields explicitly assigned to it and enumerates them the way
// host records do: natural (numeric-looking) keys ascending first, then the
// remaining keys in insertion order.
package records

import "github.com/tuannh982/go-collections/collections"

// Record is an ordered string-keyed record. The zero value is not usable;
// construct with New or FromMap.
type Record[V any] struct {
	index  map[string]int
	keys   []string
	values []V
}

// New returns an empty Record.
func New[V any]() *Record[V] {
	return &Record[V]{
		index: make(map[string]int),
	}
}

func (r *Record[V]) Has(key string) bool {
	_, ok := r.index[key]
	return ok
}

func (r *Record[V]) Get(key string) (V, bool) {
	i, ok := r.index[key]
	if !ok {
		var zero V
		return zero, false
	}
	return r.values[i], true
}

// Set assigns value under key, appending the key when it is new and
// overwriting in place when it is not.
func (r *Record[V]) Set(key string, value V) {
	if i, ok := r.index[key]; ok {
		r.values[i] = value
		return
	}
	r.index[key] = len(r.keys)
	r.keys = append(r.keys, key)
	r.values = append(r.values, value)
}

func (r *Record[V]) Len() int {
	return len(r.keys)
}

// Keys returns the record's own keys in enumeration order.
func (r *Record[V]) Keys() []string {
	return collections.SortInEnumerationOrder(r.keys, func(k string) string { return k })
}

// ForEach visits every field in enumeration order.
func (r *Record[V]) ForEach(f func(key string, value V)) {
	for _, k := range r.Keys() {
		f(k, r.values[r.index[k]])
	}
}

// Assign merges sources into target left to right, later sources overwriting
// earlier ones on key collision, and returns target. Nil sources are skipped.
func Assign[V any](target *Record[V], sources ...*Record[V]) *Record[V] {
	for _, src := range sources {
		if src == nil {
			continue
		}
		src.ForEach(target.Set)
	}
	return target
}

// Extend returns a new record combining first and second, with first's fields
// winning on key collision. Note the precedence is the reverse of Assign's.
func Extend[V any](first, second *Record[V]) *Record[V] {
	out := New[V]()
	if second != nil {
		second.ForEach(out.Set)
	}
	if first != nil {
		first.ForEach(out.Set)
	}
	return out
}

// Reduce folds every field of r into a single value, visiting fields in
// enumeration order.
func Reduce[V, A any](r *Record[V], f func(acc A, key string, value V) A, initial A) A {
	acc := initial
	r.ForEach(func(k string, v V) {
		acc = f(acc, k, v)
	})
	return acc
}

// Equal reports whether a and b hold the same fields with identical values.
// Field order does not participate in equality.
func Equal[V comparable](a, b *Record[V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is Equal with a caller-supplied value comparator.
func EqualFunc[V any](a, b *Record[V], eq func(x, y V) bool) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	for _, k := range a.keys {
		bv, ok := b.Get(k)
		if !ok || !eq(a.values[a.index[k]], bv) {
			return false
		}
	}
	for _, k := range b.keys {
		if !a.Has(k) {
			return false
		}
	}
	return true
}

// Clone returns a shallow copy of r.
func Clone[V any](r *Record[V]) *Record[V] {
	out := New[V]()
	for i, k := range r.keys {
		out.Set(k, r.values[i])
	}
	return out
}

// FromMap copies a string-keyed container into a new Record.
func FromMap[V any](m collections.Map[string, V]) *Record[V] {
	out := New[V]()
	m.ForEach(out.Set)
	return out
}

// ToMap copies r into a new string-keyed container.
func ToMap[V any](r *Record[V]) collections.Map[string, V] {
	m := collections.NewStringMap[V]()
	r.ForEach(m.Set)
	return m
}
