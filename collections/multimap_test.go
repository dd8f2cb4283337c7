package collections

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestMultiMapAddRemove(t *testing.T) {
	m := NewStringMap[[]int]()
	require.Equal(t, []int{1}, MultiMapAdd(m, "a", 1))
	require.Equal(t, []int{1, 2}, MultiMapAdd(m, "a", 2))
	v, ok := m.Get("a")
	require.Equal(t, true, ok)
	require.Equal(t, []int{1, 2}, v)

	MultiMapRemove(m, "a", 1)
	v, _ = m.Get("a")
	require.Equal(t, []int{2}, v)

	MultiMapRemove(m, "a", 2)
	require.Equal(t, false, m.Has("a"))
}

func TestMultiMapRemoveAbsent(t *testing.T) {
	m := NewStringMap[[]int]()
	MultiMapAdd(m, "a", 1)
	MultiMapRemove(m, "missing", 1)
	MultiMapRemove(m, "a", 99)
	v, ok := m.Get("a")
	require.Equal(t, true, ok)
	require.Equal(t, []int{1}, v)
}

func TestMultiMapRemoveOneOccurrence(t *testing.T) {
	m := NewStringMap[[]int]()
	MultiMapAdd(m, "a", 1)
	MultiMapAdd(m, "a", 2)
	MultiMapAdd(m, "a", 1)
	MultiMapRemove(m, "a", 1)
	v, _ := m.Get("a")
	// one occurrence removed, remaining order unspecified
	sort.Ints(v)
	require.Empty(t, cmp.Diff([]int{1, 2}, v))
}

func TestMultiMapIntegerKeys(t *testing.T) {
	m := NewNumberMap[int32, []string]()
	MultiMapAdd(m, 7, "x")
	MultiMapAdd(m, 7, "y")
	v, ok := m.Get(7)
	require.Equal(t, true, ok)
	require.Equal(t, []string{"x", "y"}, v)
}
