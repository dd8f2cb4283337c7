package collections

import "iter"

// Map is the key-value container contract. Absence is reported through the
// comma-ok result, never an error. Iteration order is unspecified; callers
// must not depend on it. Mutating a map while a traversal over it is in
// progress is undefined behavior.
type Map[K comparable, V any] interface {
	Clear()
	Delete(k K) bool
	Get(k K) (V, bool)
	Has(k K) bool
	Set(k K, v V)
	ForEach(f func(k K, v V))
	Size() int
}

// Set is the string set contract. Add is idempotent and Size always equals
// the number of distinct members.
type Set interface {
	Add(v string)
	Has(v string) bool
	Delete(v string) bool
	ForEach(f func(v string))
	Size() int
	Empty() bool
}

// KeysIterable is an optional capability: containers implementing it expose
// their keys as a standalone single-use sequence, letting the algorithm layer
// stop a traversal early instead of visiting every entry through ForEach.
type KeysIterable[K any] interface {
	Keys() iter.Seq[K]
}

// ValuesIterable is the value analogue of KeysIterable.
type ValuesIterable[V any] interface {
	Values() iter.Seq[V]
}

// EntriesIterable is the entry analogue of KeysIterable.
type EntriesIterable[K, V any] interface {
	Entries() iter.Seq2[K, V]
}
