// Package pullstreams provides a set of lazy operations on streams of elements.
// Streams form a pipeline of operations that elements are being pulled through.
//
// Streams are constructed by creating an initial StreamFunc, which can produce elements
// from slices, integer ranges, or channels.
//
// Elements may then be operated upon using mapping, filtering, and sorting operations
// (which are intermediate StreamFuncs). Each intermediate operation borrows its upstream
// StreamFunc and adapts it; chains may be arbitrarily long.
//
// Finally, the elements are consumed by terminal operations, such as collecting them into
// slices or maps, grouping/partitioning them, checking for matching elements, summing or
// counting them, or simply iterating over them.
//
// Streams are always lazy, meaning that constructing a pipeline touches no element at all;
// elements are produced one at a time, only as a terminal operation pulls them. A stream
// makes exactly one pass over its elements: once a StreamFunc has reported exhaustion, it
// keeps reporting exhaustion.
//
// A stream is single-consumer. Calling a StreamFunc from multiple goroutines at once, or
// running two terminal operations against the same chain at the same time, is unsupported.
package pullstreams
