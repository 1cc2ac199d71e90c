package pullstreams

// CollectSlice returns an accumulator that collects elements into a slice.
func CollectSlice[T any]() AccumulatorFunc[T, []T] {
	return func(elem T, _ uint64, acc []T) []T {
		return append(acc, elem)
	}
}

// CollectMap returns an accumulator that collects elements into a map.
// Elements are mapped using key and value, respectively.
// If a key is already in the map, the map entry will be overwritten.
func CollectMap[T any, K comparable, V any](key MapperFunc[T, K], value MapperFunc[T, V]) AccumulatorFunc[T, map[K]V] {
	return func(elem T, index uint64, acc map[K]V) map[K]V {
		acc[key(elem, index)] = value(elem, index)
		return acc
	}
}

// CollectGroup returns an accumulator that collects elements into a group map.
// Elements will be grouped into slices according to key.
func CollectGroup[T any, K comparable, V any](key MapperFunc[T, K], value MapperFunc[T, V]) AccumulatorFunc[T, map[K][]V] {
	return func(elem T, index uint64, acc map[K][]V) map[K][]V {
		key := key(elem, index)
		acc[key] = append(acc[key], value(elem, index))

		return acc
	}
}

// CollectPartition returns an accumulator that collects elements into a partition map.
// Elements will be grouped into slices according to pred.
func CollectPartition[T any, V any](pred PredicateFunc[T], value MapperFunc[T, V]) AccumulatorFunc[T, map[bool][]V] {
	return CollectGroup(MapperFunc[T, bool](pred), value)
}

// ReduceSlice collects the elements produced by stream into a slice, in order.
func ReduceSlice[T any](stream StreamFunc[T]) []T {
	return Reduce(stream, nil, CollectSlice[T]())
}

// ReduceMap collects the elements produced by stream into a map.
// Elements are mapped using key and value, respectively.
// If a key is already in the map, the map entry will be overwritten.
func ReduceMap[T any, K comparable, V any](stream StreamFunc[T], key MapperFunc[T, K], value MapperFunc[T, V]) map[K]V {
	return Reduce(stream, map[K]V{}, CollectMap(key, value))
}
