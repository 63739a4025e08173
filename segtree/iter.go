package segtree

import (
	"iter"
	"slices"
)

// All returns an iterator over (logical index, value) pairs in input
// order, mirroring slices.All. Values are read straight from the buffer
// the tree owned when ranging began; see Swap for the hand-off rule.
func (t *Tree[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range t.data[t.n:] {
			if !yield(i, v) {
				return
			}
		}
	}
}

// Backward returns an iterator over (logical index, value) pairs from
// the last element to the first, mirroring slices.Backward.
func (t *Tree[T]) Backward() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		leaves := t.data[t.n:]
		for i := len(leaves) - 1; i >= 0; i-- {
			if !yield(i, leaves[i]) {
				return
			}
		}
	}
}

// Leaves returns a freshly allocated copy of the logical sequence in
// input order. The tree keeps no reference to the returned slice. O(N).
func (t *Tree[T]) Leaves() []T {
	return slices.Clone(t.data[t.n:])
}
