package collections

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func identity(s string) string { return s }

func TestSortInEnumerationOrder(t *testing.T) {
	got := SortInEnumerationOrder([]string{"08", "2", "0", "x", "1"}, identity)
	require.Empty(t, cmp.Diff([]string{"0", "1", "2", "08", "x"}, got))
}

func TestSortInEnumerationOrderNumericNotLexicographic(t *testing.T) {
	got := SortInEnumerationOrder([]string{"10", "9", "100", "2"}, identity)
	require.Empty(t, cmp.Diff([]string{"2", "9", "10", "100"}, got))
}

func TestSortInEnumerationOrderNonNaturalsKeepOrder(t *testing.T) {
	got := SortInEnumerationOrder([]string{"zz", "-1", "3", "aa", "08"}, identity)
	require.Empty(t, cmp.Diff([]string{"3", "zz", "-1", "aa", "08"}, got))
}

func TestSortInEnumerationOrderStableOnEqualKeys(t *testing.T) {
	type elem struct {
		Key string
		Tag int
	}
	got := SortInEnumerationOrder(
		[]elem{{"2", 0}, {"1", 1}, {"2", 2}, {"1", 3}},
		func(e elem) string { return e.Key },
	)
	require.Empty(t, cmp.Diff(
		[]elem{{"1", 1}, {"1", 3}, {"2", 0}, {"2", 2}},
		got,
	))
}

func TestSortInEnumerationOrderInputUntouched(t *testing.T) {
	in := []string{"2", "1"}
	_ = SortInEnumerationOrder(in, identity)
	require.Equal(t, []string{"2", "1"}, in)
}

func TestIsNaturalKey(t *testing.T) {
	require.Equal(t, true, IsNaturalKey("0"))
	require.Equal(t, true, IsNaturalKey("1"))
	require.Equal(t, true, IsNaturalKey("42"))
	require.Equal(t, true, IsNaturalKey("907"))
	require.Equal(t, false, IsNaturalKey(""))
	require.Equal(t, false, IsNaturalKey("08"))
	require.Equal(t, false, IsNaturalKey("-1"))
	require.Equal(t, false, IsNaturalKey("x"))
	require.Equal(t, false, IsNaturalKey("1.5"))
	require.Equal(t, false, IsNaturalKey("1x"))
}
