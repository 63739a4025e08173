// Package segtree implements an array-backed segment tree: a fixed-size
// sequence container answering half-open range folds in O(log N) and
// accepting point updates in O(log N), built in O(N).
//
// 🚀 What is a segment tree?
//
//	An implicit binary tree flattened into one slice of length 2N:
//	  • index 0         – unused filler
//	  • indices 1..N-1  – internal nodes, each the fold of its two children
//	  • indices N..2N-1 – the N leaves, holding the sequence in input order
//	Navigation is index arithmetic alone: children of k are 2k and 2k+1,
//	the parent of k is k/2. No pointers, one allocation.
//
// ✨ Key features:
//   - range folds over any [l, r) with left-to-right operand order, so
//     non-commutative operations (Concat) stay correct at every size
//   - explicit identity via monoid.Monoid; empty ranges return it instead
//     of a zero-value guess
//   - checked (At/Set/Query) and unchecked (Get/Update) access pairs
//   - bulk Assign with rebuild, Clone, Swap, iter.Seq2 iteration
//
// ⚙️ Usage:
//
//	import (
//	    "github.com/katalvlaran/rangefold/monoid"
//	    "github.com/katalvlaran/rangefold/segtree"
//	)
//
//	st, err := segtree.New([]int{1, 2, 3, 4}, monoid.Sum[int]())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	sum, _ := st.Query(1, 3) // 2+3 = 5
//	_ = st.Set(0, 10)        // repairs every ancestor on the way up
//
// Performance:
//
//   - Build:  O(N)
//   - Update: O(log N)
//   - Query:  O(log N)
//   - Memory: exactly 2N elements
//
// Concurrency: no internal locking. Reads (Query, At, Get, Total,
// iteration, Leaves) may run concurrently with each other, never with a
// write (Update, Set, Assign, Swap); the caller enforces the
// single-writer discipline.
//
// Errors (sentinel):
//
//	– ErrOutOfRange     if a checked index or query bound leaves [0, N]
//	– ErrBadSize        if NewSize receives a negative length
//	– ErrLengthMismatch if Assign receives a slice of the wrong length
//
// See example_test.go for runnable examples.
package segtree
