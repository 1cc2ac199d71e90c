package pullstreams

import (
	"golang.org/x/exp/slices"
)

// Function returns the result of applying an operation to elem.
type Function[T any, U any] func(elem T) U

// MapperFunc maps element elem to type U.
// The index is the 0-based index of elem, in the order produced by the upstream stream.
type MapperFunc[T any, U any] func(elem T, index uint64) U

// PredicateFunc returns true if elem matches a predicate.
// The index is the 0-based index of elem, in the order produced by the upstream stream.
type PredicateFunc[T any] func(elem T, index uint64) bool

// LessFunc returns true if element a is "less" than element b.
type LessFunc[T any] func(a T, b T) bool

// FuncMapper returns a mapper that calls mapp for each element.
func FuncMapper[T any, U any](mapp Function[T, U]) MapperFunc[T, U] {
	return func(elem T, _ uint64) U {
		return mapp(elem)
	}
}

// FuncPredicate returns a predicate that calls pred for each element.
func FuncPredicate[T any](pred Function[T, bool]) PredicateFunc[T] {
	return func(elem T, _ uint64) bool {
		return pred(elem)
	}
}

// Map returns a stream that calls mapp for each element produced by stream, mapping it to type U.
func Map[T any, U any](stream StreamFunc[T], mapp MapperFunc[T, U]) StreamFunc[U] {
	index := uint64(0)

	return func() (U, bool) {
		elem, ok := stream()
		if !ok {
			var zero U
			return zero, false
		}

		outElem := mapp(elem, index)
		index++

		return outElem, true
	}
}

// FlatMap returns a stream that calls mapp for each element produced by stream, mapping it to an
// intermediate stream that produces elements of type U.
// The new stream produces all elements produced by the intermediate streams, in order.
// Each intermediate stream is exhausted before the next upstream element is mapped;
// intermediate streams that produce no elements contribute nothing.
func FlatMap[T any, U any](stream StreamFunc[T], mapp MapperFunc[T, StreamFunc[U]]) StreamFunc[U] {
	index := uint64(0)

	var sub StreamFunc[U]

	return func() (U, bool) {
		for {
			if sub != nil {
				elem, ok := sub()
				if ok {
					return elem, true
				}

				sub = nil
			}

			elem, ok := stream()
			if !ok {
				var zero U
				return zero, false
			}

			sub = mapp(elem, index)
			index++
		}
	}
}

// Filter returns a stream that calls filter for each element produced by stream, and only produces
// elements for which filter returns true.
// filter is called exactly once per upstream element, in upstream order.
func Filter[T any](stream StreamFunc[T], filter PredicateFunc[T]) StreamFunc[T] {
	index := uint64(0)

	return func() (T, bool) {
		for {
			elem, ok := stream()
			if !ok {
				var zero T
				return zero, false
			}

			filterResult := filter(elem, index)
			index++

			if filterResult {
				return elem, true
			}
		}
	}
}

// Peek returns a stream that calls peek for each element produced by stream, in order, and produces
// the same elements.
func Peek[T any](stream StreamFunc[T], peek ConsumerFunc[T]) StreamFunc[T] {
	index := uint64(0)

	return func() (T, bool) {
		elem, ok := stream()
		if !ok {
			var zero T
			return zero, false
		}

		peek(elem, index)
		index++

		return elem, true
	}
}

// Limit returns a stream that produces the same elements as stream, in order, up to max elements.
// Once max elements have been produced, the new stream is exhausted and does not pull from
// stream again.
func Limit[T any](stream StreamFunc[T], max uint64) StreamFunc[T] {
	done := uint64(0)

	return func() (T, bool) {
		if done >= max {
			var zero T
			return zero, false
		}

		elem, ok := stream()
		if !ok {
			var zero T
			return zero, false
		}

		done++

		return elem, true
	}
}

// Skip returns a stream that produces the same elements as stream, in order, skipping the first
// num elements.
func Skip[T any](stream StreamFunc[T], num uint64) StreamFunc[T] {
	skipped := uint64(0)

	return func() (T, bool) {
		for skipped < num {
			_, ok := stream()
			if !ok {
				var zero T
				return zero, false
			}

			skipped++
		}

		return stream()
	}
}

// Sort returns a stream that consumes elements from stream, sorts them using sort, and produces
// them in sorted order.
// stream is drained on the first pull; constructing the new stream pulls nothing.
func Sort[T any](stream StreamFunc[T], sort LessFunc[T]) StreamFunc[T] {
	var result []T

	sorted := false
	current := 0

	return func() (T, bool) {
		if !sorted {
			for {
				elem, ok := stream()
				if !ok {
					break
				}

				result = append(result, elem)
			}

			slices.SortFunc(result, sort)

			sorted = true
		}

		if current >= len(result) {
			var zero T
			return zero, false
		}

		elem := result[current]
		current++

		return elem, true
	}
}

// Distinct returns a stream that produces the same elements as stream, in order, dropping
// elements it has already produced.
func Distinct[T comparable](stream StreamFunc[T]) StreamFunc[T] {
	seen := map[T]struct{}{}

	return func() (T, bool) {
		for {
			elem, ok := stream()
			if !ok {
				var zero T
				return zero, false
			}

			if _, dup := seen[elem]; dup {
				continue
			}

			seen[elem] = struct{}{}

			return elem, true
		}
	}
}

// Identity returns a mapper that returns the same element it receives.
func Identity[T any]() MapperFunc[T, T] {
	return func(elem T, _ uint64) T {
		return elem
	}
}
