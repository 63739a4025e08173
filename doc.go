// Package rangefold is an in-memory toolkit for fold-style range queries
// over fixed-size sequences: O(N) construction, then point updates and
// half-open range folds in O(log N).
//
// 🚀 What is rangefold?
//
//	A small, focused library built around one data structure:
//		• segtree/ – the array-backed tree itself (build, update, query)
//		• monoid/  – combining operations with explicit identities
//
// ✨ Why choose rangefold?
//
//   - Explicit identities – no zero-value surprises on empty ranges
//   - Order-preserving – non-commutative operations fold left to right
//   - Pure values – every write goes through the tree, never through aliases
//   - Generic – any element type, any associative operation
//
// Quick ASCII example (four elements 1,2,3,4 under addition):
//
//	          [1]=10
//	         /      \
//	     [2]=3      [3]=7
//	     /   \      /   \
//	  [4]=1 [5]=2 [6]=3 [7]=4
//
//	one slice of length 2N holds the whole tree; leaves sit at N..2N-1
//	in input order, and index 0 stays unused.
//
// Dive into the per-package docs for complexity tables, error contracts
// and runnable examples.
//
//	go get github.com/katalvlaran/rangefold/segtree
package rangefold
