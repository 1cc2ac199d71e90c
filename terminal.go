package pullstreams

import "golang.org/x/exp/constraints"

// ConsumerFunc consumes element elem.
// The index is the 0-based index of elem, in the order produced by the upstream stream.
type ConsumerFunc[T any] func(elem T, index uint64)

// AccumulatorFunc folds element elem into the accumulator acc, returning acc, or a new accumulator.
// The index is the 0-based index of elem, in the order produced by the upstream stream.
type AccumulatorFunc[T any, A any] func(elem T, index uint64, acc A) A

// Number is a constraint matching element types that can be summed.
type Number interface {
	constraints.Integer | constraints.Float
}

// FuncConsumer returns a consumer that calls each for each element.
func FuncConsumer[T any](each func(elem T)) ConsumerFunc[T] {
	return func(elem T, _ uint64) {
		each(elem)
	}
}

// Each calls each for each element produced by stream, leaving stream exhausted.
func Each[T any](stream StreamFunc[T], each ConsumerFunc[T]) {
	index := uint64(0)

	for {
		elem, ok := stream()
		if !ok {
			return
		}

		each(elem, index)

		index++
	}
}

// Reduce calls reduce for each element produced by stream, folding it into accumulator acc,
// returning the final accumulator.
// On an exhausted stream, it returns acc unchanged.
func Reduce[T any, A any](stream StreamFunc[T], acc A, reduce AccumulatorFunc[T, A]) A {
	Each(stream, func(elem T, index uint64) {
		acc = reduce(elem, index, acc)
	})

	return acc
}

// Count returns the number of elements produced by stream.
func Count[T any](stream StreamFunc[T]) uint64 {
	count := uint64(0)

	Each(stream, func(_ T, _ uint64) {
		count++
	})

	return count
}

// Sum returns the sum of the elements produced by stream.
// An exhausted stream sums to zero.
func Sum[T Number](stream StreamFunc[T]) T {
	var sum T

	Each(stream, func(elem T, _ uint64) {
		sum += elem
	})

	return sum
}

// Min returns the smallest element produced by stream.
// It returns false if stream produces no elements.
func Min[T constraints.Ordered](stream StreamFunc[T]) (T, bool) {
	min, ok := stream()
	if !ok {
		return min, false
	}

	Each(stream, func(elem T, _ uint64) {
		if elem < min {
			min = elem
		}
	})

	return min, true
}

// Max returns the largest element produced by stream.
// It returns false if stream produces no elements.
func Max[T constraints.Ordered](stream StreamFunc[T]) (T, bool) {
	max, ok := stream()
	if !ok {
		return max, false
	}

	Each(stream, func(elem T, _ uint64) {
		if elem > max {
			max = elem
		}
	})

	return max, true
}

// AnyMatch returns true as soon as pred returns true for an element produced by stream, that is,
// an element matches. It stops pulling from stream once a match is found.
// On an exhausted stream, it returns false.
func AnyMatch[T any](stream StreamFunc[T], pred PredicateFunc[T]) bool {
	index := uint64(0)

	for {
		elem, ok := stream()
		if !ok {
			return false
		}

		if pred(elem, index) {
			return true
		}

		index++
	}
}

// AllMatch returns true if pred returns true for all elements produced by stream, that is,
// all elements match. It stops pulling from stream once an element does not match.
// On an exhausted stream, it returns true.
func AllMatch[T any](stream StreamFunc[T], pred PredicateFunc[T]) bool {
	index := uint64(0)

	for {
		elem, ok := stream()
		if !ok {
			return true
		}

		if !pred(elem, index) {
			return false
		}

		index++
	}
}

// NoneMatch returns true if pred returns false for all elements produced by stream, that is,
// no element matches. It stops pulling from stream once an element matches.
// On an exhausted stream, it returns true.
func NoneMatch[T any](stream StreamFunc[T], pred PredicateFunc[T]) bool {
	return !AnyMatch(stream, pred)
}
