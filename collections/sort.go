package collections

import "sort"

// SortInEnumerationOrder reorders values the way record fields enumerate:
// elements whose derived key is natural come first, sorted ascending by
// numeric value, followed by the remaining elements in their original
// relative order. Elements with equal natural keys keep their relative order.
// The input slice is not modified.
func SortInEnumerationOrder[E any](values []E, toKey func(E) string) []E {
	naturals := make([]E, 0, len(values))
	rest := make([]E, 0, len(values))
	for _, v := range values {
		if IsNaturalKey(toKey(v)) {
			naturals = append(naturals, v)
		} else {
			rest = append(rest, v)
		}
	}
	// natural keys carry no leading zeros, so a shorter key is always the
	// smaller number and equal lengths compare lexicographically
	sort.SliceStable(naturals, func(i, j int) bool {
		a, b := toKey(naturals[i]), toKey(naturals[j])
		if len(a) != len(b) {
			return len(a) < len(b)
		}
		return a < b
	})
	return append(naturals, rest...)
}

// IsNaturalKey reports whether s parses as a non-negative integer without a
// leading zero: "0", or a nonzero digit followed by any digits.
func IsNaturalKey(s string) bool {
	if s == "0" {
		return true
	}
	if len(s) == 0 || s[0] < '1' || s[0] > '9' {
		return false
	}
	for i := 1; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
