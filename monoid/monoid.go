package monoid

import "errors"

// Sentinel errors reported by Valid.
var (
	// ErrNilIdentity indicates a Monoid whose Identity func is nil.
	ErrNilIdentity = errors.New("monoid: Identity func is nil")

	// ErrNilCombine indicates a Monoid whose Combine func is nil.
	ErrNilCombine = errors.New("monoid: Combine func is nil")
)

// Monoid bundles an associative binary operation over T with its identity
// element.
//
// Contract (unchecked, relied upon by consumers):
//   - Combine is associative over the values actually stored:
//     Combine(a, Combine(b, c)) == Combine(Combine(a, b), c).
//   - Identity() is a two-sided identity: Combine(Identity(), x) == x and
//     Combine(x, Identity()) == x.
//   - Commutativity is NOT part of the contract; consumers must keep
//     operand order.
//
// Identity is a func rather than a stored value so that reference-typed
// identities (slices, maps) are minted fresh per use instead of shared.
type Monoid[T any] struct {
	// Identity returns the neutral element (0 for Sum, "" for Concat, ...).
	Identity func() T

	// Combine folds two values left-to-right: a first, then b.
	Combine func(a, b T) T
}

// New builds a Monoid from an identity supplier and a combine func.
// No validation happens here; call Valid to check the result.
func New[T any](identity func() T, combine func(a, b T) T) Monoid[T] {
	return Monoid[T]{Identity: identity, Combine: combine}
}

// Valid reports whether both function fields are present.
// Returns ErrNilIdentity or ErrNilCombine for the first violation found,
// nil for a usable Monoid.
func (m Monoid[T]) Valid() error {
	if m.Identity == nil {
		return ErrNilIdentity
	}
	if m.Combine == nil {
		return ErrNilCombine
	}

	return nil
}
