package segtree

import "fmt"

// At returns the element at logical index i, or ErrOutOfRange when i is
// outside [0, N). O(1).
func (t *Tree[T]) At(i int) (T, error) {
	if i < 0 || i >= t.n {
		var zero T
		return zero, fmt.Errorf("Tree.At(%d): %w", i, ErrOutOfRange)
	}

	return t.data[t.n+i], nil
}

// Get returns the element at logical index i. Unchecked: a bad index
// panics on the leaf slice. Use At when in doubt. O(1).
func (t *Tree[T]) Get(i int) T {
	return t.data[t.n:][i]
}

// Query folds the half-open range [l, r) left to right and returns the
// result; Query(x, x) returns the identity without touching any element.
// Bounds must satisfy 0 <= l <= r <= N; anything else, inverted bounds
// included, is ErrOutOfRange, never clamped.
//
// Two accumulators climb the tree: odd left cursors join the left result
// in ascending order, odd right cursors join the right result in
// descending order, and the halves meet once at the end. Operand order
// therefore matches input order for every size, commutative or not.
// Complexity: O(log N) Combine calls.
func (t *Tree[T]) Query(l, r int) (T, error) {
	if l < 0 || r < l || r > t.n {
		var zero T
		return zero, fmt.Errorf("Tree.Query(%d,%d): %w", l, r, ErrOutOfRange)
	}

	left, right := t.m.Identity(), t.m.Identity()
	for l, r = l+t.n, r+t.n; l < r; l, r = l/2, r/2 {
		if l%2 == 1 {
			left = t.m.Combine(left, t.data[l])
			l++
		}
		if r%2 == 1 {
			r--
			right = t.m.Combine(t.data[r], right)
		}
	}

	return t.m.Combine(left, right), nil
}

// Total folds the entire sequence in input order, returning the identity
// for an empty tree. Equivalent to Query(0, Len()). Complexity: O(log N).
func (t *Tree[T]) Total() T {
	// Not data[1]: for non-power-of-two sizes the root folds in tree
	// order, which differs from input order under non-commutative monoids.
	v, _ := t.Query(0, t.n)

	return v
}
