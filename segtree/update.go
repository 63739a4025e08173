package segtree

import "fmt"

// Update overwrites the element at logical index i and repairs every
// ancestor up to the root, always combining (left child, right child) so
// non-commutative folds keep their operand order.
//
// Unchecked: an index outside [0, N) panics on the leaf slice, it is
// never clamped. Use Set for the error-returning variant.
// Complexity: O(log N) Combine calls.
func (t *Tree[T]) Update(i int, v T) {
	t.data[t.n:][i] = v
	for k := (t.n + i) / 2; k >= 1; k /= 2 {
		t.data[k] = t.m.Combine(t.data[2*k], t.data[2*k+1])
	}
}

// Set is the checked write-through: validates i, then updates the leaf
// and its ancestors exactly like Update. Every external mutation flows
// through this pair, so the node invariant holds after each write.
// Returns ErrOutOfRange for i outside [0, N). Complexity: O(log N).
func (t *Tree[T]) Set(i int, v T) error {
	if i < 0 || i >= t.n {
		return fmt.Errorf("Tree.Set(%d): %w", i, ErrOutOfRange)
	}
	t.Update(i, v)

	return nil
}

// Assign replaces the whole sequence with items (same length required)
// and rebuilds in O(N), cheaper than N single updates. Returns
// ErrLengthMismatch when len(items) != Len(); the tree is untouched on
// error.
func (t *Tree[T]) Assign(items []T) error {
	if len(items) != t.n {
		return fmt.Errorf("Tree.Assign(len %d, want %d): %w", len(items), t.n, ErrLengthMismatch)
	}
	copy(t.data[t.n:], items)
	t.rebuild()

	return nil
}
