package segtree

import "errors"

// Sentinel errors returned by the checked Tree API.
var (
	// ErrOutOfRange indicates a logical index outside [0, N) or query
	// bounds violating 0 <= l <= r <= N. Bounds are never clamped.
	ErrOutOfRange = errors.New("segtree: index out of range")

	// ErrBadSize indicates a negative length passed to NewSize.
	ErrBadSize = errors.New("segtree: size must be non-negative")

	// ErrLengthMismatch indicates an Assign slice whose length differs
	// from the tree's fixed size.
	ErrLengthMismatch = errors.New("segtree: assign length differs from tree size")
)
