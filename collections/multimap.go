package collections

// MultiMapAdd appends v to the list stored under k, creating a single-element
// list when the key is absent. It returns the list now stored under k.
func MultiMapAdd[K comparable, V comparable](m Map[K, []V], k K, v V) []V {
	values, ok := m.Get(k)
	if ok {
		values = append(values, v)
	} else {
		values = []V{v}
	}
	m.Set(k, values)
	return values
}

// MultiMapRemove removes one occurrence of v from the list stored under k.
// The order of the remaining elements is not preserved. Once the list
// empties, the key is deleted. An absent key or value is a silent no-op.
func MultiMapRemove[K comparable, V comparable](m Map[K, []V], k K, v V) {
	values, ok := m.Get(k)
	if !ok {
		return
	}
	for i := range values {
		if values[i] == v {
			if len(values) == 1 {
				m.Delete(k)
			} else {
				values[i] = values[len(values)-1]
				m.Set(k, values[:len(values)-1])
			}
			return
		}
	}
}
