// Package monoid describes associative combining operations with explicit
// identity elements, the contract rangefold containers fold under.
//
// 🚀 What is a monoid here?
//
//	A pair of functions over one element type T:
//	  • Combine  – associative binary operation; operand order is preserved,
//	    commutativity is never assumed
//	  • Identity – the element that leaves any value unchanged on either side
//
// ✨ Catalog:
//   - Sum, Product – numeric folds with 0 / 1 identities
//   - Min, Max – ordered folds; the caller supplies the absorbing bound
//   - Concat – string concatenation, identity ""
//   - Xor – bitwise parity over integers, identity 0
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/rangefold/monoid"
//
//	sum := monoid.Sum[int]()                // identity 0, Combine +
//	rmq := monoid.Min[float64](math.Inf(1)) // identity +Inf, Combine min
//
// The zero value of Monoid is not usable: construct via New or the catalog,
// and check foreign values with Valid before folding under them.
package monoid
