package collections

// The functions in this file operate only through the Map and Set contracts.
// Each one probes the container for the matching iterable capability and uses
// the early-exit sequence when present; otherwise it falls back to a full
// ForEach traversal. On the fallback path the traversal runs to completion
// internally, but the callback is never invoked again after the first true
// result, so both strategies are observably identical.

// EachEntryUntil invokes f on every entry until f returns true, reporting
// whether any invocation returned true.
func EachEntryUntil[K comparable, V any](m Map[K, V], f func(k K, v V) bool) bool {
	if it, ok := m.(EntriesIterable[K, V]); ok {
		for k, v := range it.Entries() {
			if f(k, v) {
				return true
			}
		}
		return false
	}
	stopped := false
	m.ForEach(func(k K, v V) {
		if !stopped && f(k, v) {
			stopped = true
		}
	})
	return stopped
}

// EachKeyUntil invokes f on every key until f returns true, reporting whether
// any invocation returned true.
func EachKeyUntil[K comparable, V any](m Map[K, V], f func(k K) bool) bool {
	if it, ok := m.(KeysIterable[K]); ok {
		for k := range it.Keys() {
			if f(k) {
				return true
			}
		}
		return false
	}
	stopped := false
	m.ForEach(func(k K, _ V) {
		if !stopped && f(k) {
			stopped = true
		}
	})
	return stopped
}

// Find returns the first entry satisfying pred. "First" follows the backing's
// unspecified traversal order.
func Find[K comparable, V any](m Map[K, V], pred func(k K, v V) bool) (key K, value V, found bool) {
	EachEntryUntil(m, func(k K, v V) bool {
		if pred(k, v) {
			key, value, found = k, v, true
			return true
		}
		return false
	})
	return key, value, found
}

// SomeEntry reports whether any entry satisfies pred.
func SomeEntry[K comparable, V any](m Map[K, V], pred func(k K, v V) bool) bool {
	return EachEntryUntil(m, pred)
}

// SomeKey reports whether any key satisfies pred.
func SomeKey[K comparable, V any](m Map[K, V], pred func(k K) bool) bool {
	return EachKeyUntil(m, pred)
}

// SomeValue reports whether any value satisfies pred.
func SomeValue[K comparable, V any](m Map[K, V], pred func(v V) bool) bool {
	if it, ok := m.(ValuesIterable[V]); ok {
		for v := range it.Values() {
			if pred(v) {
				return true
			}
		}
		return false
	}
	stopped := false
	m.ForEach(func(_ K, v V) {
		if !stopped && pred(v) {
			stopped = true
		}
	})
	return stopped
}

// CloneMap returns a new container holding the same entries. Values are
// copied shallowly; mutating the clone never affects m.
func CloneMap[K comparable, V any](m Map[K, V]) Map[K, V] {
	out := NewMap[K, V]()
	m.ForEach(func(k K, v V) {
		out.Set(k, v)
	})
	return out
}

// CopyEntries writes every src entry into dst, overwriting on key collision.
// Non-overlapping dst entries are left untouched.
func CopyEntries[K comparable, V any](src, dst Map[K, V]) {
	src.ForEach(func(k K, v V) {
		dst.Set(k, v)
	})
}

// CopySetValues adds every src member to dst.
func CopySetValues(src, dst Set) {
	src.ForEach(func(v string) {
		dst.Add(v)
	})
}

// EqualMaps reports whether a and b hold the same keys with identical values.
// The same reference is always equal; a nil side that is not identical to the
// other is unequal.
func EqualMaps[K, V comparable](a, b Map[K, V]) bool {
	return EqualMapsFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualMapsFunc is EqualMaps with a caller-supplied value comparator.
func EqualMapsFunc[K comparable, V any](a, b Map[K, V], eq func(x, y V) bool) bool {
	if a == b {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	mismatch := EachEntryUntil(a, func(k K, v V) bool {
		bv, ok := b.Get(k)
		return !ok || !eq(v, bv)
	})
	if mismatch {
		return false
	}
	return !EachKeyUntil(b, func(k K) bool {
		return !a.Has(k)
	})
}

// Reduce folds every entry of m into a single value, visiting entries in the
// backing's traversal order.
func Reduce[V, A any](m Map[string, V], f func(acc A, key string, v V) A, initial A) A {
	acc := initial
	m.ForEach(func(k string, v V) {
		acc = f(acc, k, v)
	})
	return acc
}

// ArrayToMap builds a Map keyed by makeKey with the elements themselves as
// values. When two elements yield the same key, the later one wins.
func ArrayToMap[E any, K comparable](items []E, makeKey func(E) K) Map[K, E] {
	return ArrayToMapWith(items, makeKey, func(e E) E { return e })
}

// ArrayToMapWith is ArrayToMap with an explicit value projection.
func ArrayToMapWith[E any, K comparable, V any](items []E, makeKey func(E) K, makeValue func(E) V) Map[K, V] {
	m := NewMap[K, V]()
	for _, item := range items {
		m.Set(makeKey(item), makeValue(item))
	}
	return m
}

// GetOrUpdate returns the value stored under k, computing and storing it
// first when absent. compute runs at most once per absent key; the check and
// the store are not atomic with respect to any concurrent caller.
func GetOrUpdate[K comparable, V any](m Map[K, V], k K, compute func(k K) V) V {
	if v, ok := m.Get(k); ok {
		return v
	}
	v := compute(k)
	m.Set(k, v)
	return v
}
