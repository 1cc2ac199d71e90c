package pullstreams

import "golang.org/x/exp/constraints"

// StreamFunc produces the next element of a stream.
// It returns the element and true, or the zero value and false if the stream is exhausted.
// Once a StreamFunc has returned false, every further call returns false.
type StreamFunc[T any] func() (T, bool)

// Produce returns a stream that produces the elements of the given slices, in order.
func Produce[T any](slices ...[]T) StreamFunc[T] {
	outer := 0
	inner := 0

	return func() (T, bool) {
		for outer < len(slices) {
			if inner < len(slices[outer]) {
				elem := slices[outer][inner]
				inner++

				return elem, true
			}

			outer++
			inner = 0
		}

		var zero T
		return zero, false
	}
}

// ProduceRange returns a stream that produces the integers of the half-open range [begin, end), in order.
// If begin >= end, the stream is exhausted from the start.
func ProduceRange[T constraints.Integer](begin T, end T) StreamFunc[T] {
	next := begin

	return func() (T, bool) {
		if next >= end {
			var zero T
			return zero, false
		}

		elem := next
		next++

		return elem, true
	}
}

// ProduceChannel returns a stream that produces the elements received through the given channels, in order.
// Each pull performs one receive; the stream is exhausted once all channels are closed and drained.
func ProduceChannel[T any](channels ...<-chan T) StreamFunc[T] {
	current := 0

	return func() (T, bool) {
		for current < len(channels) {
			elem, ok := <-channels[current]
			if ok {
				return elem, true
			}

			current++
		}

		var zero T
		return zero, false
	}
}

// Join returns a stream that produces the elements produced by the given streams, in order.
// Each stream is exhausted before the next one is pulled.
func Join[T any](streams ...StreamFunc[T]) StreamFunc[T] {
	current := 0

	return func() (T, bool) {
		for current < len(streams) {
			elem, ok := streams[current]()
			if ok {
				return elem, true
			}

			current++
		}

		var zero T
		return zero, false
	}
}
