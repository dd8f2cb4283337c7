package collections

import (
	"iter"
	"maps"
)

// StringSet is an unordered collection of unique strings.
type StringSet struct {
	members map[string]struct{}
}

// NewStringSet returns a StringSet holding the given values, duplicates
// collapsed.
func NewStringSet(values ...string) *StringSet {
	s := &StringSet{
		members: make(map[string]struct{}, len(values)),
	}
	for _, v := range values {
		s.members[v] = struct{}{}
	}
	return s
}

// Add inserts v. Adding an existing member is a no-op.
func (s *StringSet) Add(v string) {
	s.members[v] = struct{}{}
}

func (s *StringSet) Has(v string) bool {
	_, ok := s.members[v]
	return ok
}

// Delete removes v, reporting whether it was present.
func (s *StringSet) Delete(v string) bool {
	if _, ok := s.members[v]; !ok {
		return false
	}
	delete(s.members, v)
	return true
}

func (s *StringSet) ForEach(f func(v string)) {
	for v := range s.members {
		f(v)
	}
}

func (s *StringSet) Size() int {
	return len(s.members)
}

func (s *StringSet) Empty() bool {
	return len(s.members) == 0
}

func (s *StringSet) Clear() {
	s.members = make(map[string]struct{})
}

func (s *StringSet) Values() iter.Seq[string] {
	return maps.Keys(s.members)
}
