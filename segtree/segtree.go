package segtree

import (
	"fmt"
	"iter"
	"slices"

	"github.com/katalvlaran/rangefold/monoid"
)

// Tree is a fixed-size sequence of T under an associative fold.
//
// Layout: data holds 2n slots; data[0] is unused, data[1..n-1] are the
// internal nodes and data[n..2n-1] are the leaves in input order, so the
// leaf for logical index i lives at data[n+i]. Every internal node k obeys
//
//	data[k] == Combine(data[2k], data[2k+1])
//
// after construction and after every write. The size n never changes for
// the life of the instance.
//
// The zero value is an empty tree with no monoid and is not usable;
// construct via New, NewSize or FromSeq.
type Tree[T any] struct {
	data []T // 2n slots: [unused | internals | leaves]
	n    int // leaf count, fixed at construction
	m    monoid.Monoid[T]
}

// New builds a tree over a copy of items. The slice is copied, never
// aliased: later writes to items do not reach the tree and vice versa.
// Empty items yield an empty tree whose only valid query is [0, 0),
// answering the identity.
//
// Monoid validation errors (monoid.ErrNilIdentity, monoid.ErrNilCombine)
// pass through unchanged. Complexity: O(N) Combine calls.
func New[T any](items []T, m monoid.Monoid[T]) (*Tree[T], error) {
	if err := m.Valid(); err != nil {
		return nil, err
	}

	n := len(items)
	t := &Tree[T]{data: make([]T, 2*n), n: n, m: m}
	copy(t.data[n:], items)
	t.rebuild()

	return t, nil
}

// NewSize builds a tree of n leaves preset to the identity, the natural
// start for populate-by-Update workflows. Negative n yields ErrBadSize.
// Complexity: O(N).
func NewSize[T any](n int, m monoid.Monoid[T]) (*Tree[T], error) {
	if err := m.Valid(); err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("NewSize(%d): %w", n, ErrBadSize)
	}

	t := &Tree[T]{data: make([]T, 2*n), n: n, m: m}
	id := m.Identity()
	for i := n; i < 2*n; i++ {
		t.data[i] = id
	}
	t.rebuild()

	return t, nil
}

// FromSeq collects a value sequence in order and builds a tree over it.
// Composes with slices.Values, maps.Keys and hand-rolled iterators.
// Complexity: O(N) plus the cost of draining seq.
func FromSeq[T any](seq iter.Seq[T], m monoid.Monoid[T]) (*Tree[T], error) {
	return New(slices.Collect(seq), m)
}

// rebuild recomputes every internal node from the leaves, children before
// parents by walking indices downward. Note that data[1] folds the leaf
// set in tree order, which for non-power-of-two sizes is not input order;
// whole-sequence folds go through Total instead.
func (t *Tree[T]) rebuild() {
	for k := t.n - 1; k >= 1; k-- {
		t.data[k] = t.m.Combine(t.data[2*k], t.data[2*k+1])
	}
}

// Len returns the number of elements N. O(1).
func (t *Tree[T]) Len() int { return t.n }

// IsEmpty reports whether the tree holds no elements. O(1).
func (t *Tree[T]) IsEmpty() bool { return t.n == 0 }

// Clone returns a deep copy: fresh buffer, same monoid. The copy and the
// original evolve independently afterwards. O(N).
func (t *Tree[T]) Clone() *Tree[T] {
	return &Tree[T]{data: slices.Clone(t.data), n: t.n, m: t.m}
}

// Swap exchanges the entire contents (buffer, size, monoid) of two trees
// in O(1). Both trees remain valid. In-flight iterators keep walking the
// buffer they started on, which now belongs to the other tree.
func (t *Tree[T]) Swap(o *Tree[T]) {
	t.data, o.data = o.data, t.data
	t.n, o.n = o.n, t.n
	t.m, o.m = o.m, t.m
}

// String returns a short debug form, e.g. "SegTree<len=8>".
func (t *Tree[T]) String() string {
	return fmt.Sprintf("SegTree<len=%d>", t.n)
}
