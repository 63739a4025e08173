package monoid

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Number covers the built-in numeric types accepted by Sum and Product.
type Number interface {
	constraints.Integer | constraints.Float
}

// Sum returns the addition monoid: identity 0, Combine a+b.
func Sum[T Number]() Monoid[T] {
	return Monoid[T]{
		Identity: func() T { var zero T; return zero },
		Combine:  func(a, b T) T { return a + b },
	}
}

// Product returns the multiplication monoid: identity 1, Combine a*b.
func Product[T Number]() Monoid[T] {
	return Monoid[T]{
		Identity: func() T { return 1 },
		Combine:  func(a, b T) T { return a * b },
	}
}

// Min returns the minimum monoid over any ordered type.
// top is the identity and must dominate every value that will be stored:
// math.MaxInt64 for int64, math.Inf(1) for float64, and so on.
func Min[T cmp.Ordered](top T) Monoid[T] {
	return Monoid[T]{
		Identity: func() T { return top },
		Combine:  func(a, b T) T { return min(a, b) },
	}
}

// Max returns the maximum monoid over any ordered type.
// bottom is the identity and must sit below every value that will be
// stored: math.MinInt64, math.Inf(-1), "" for non-empty strings.
func Max[T cmp.Ordered](bottom T) Monoid[T] {
	return Monoid[T]{
		Identity: func() T { return bottom },
		Combine:  func(a, b T) T { return max(a, b) },
	}
}

// Concat returns the string-concatenation monoid: identity "", Combine a+b.
// Non-commutative, which makes it the standard probe for operand order.
func Concat() Monoid[string] {
	return Monoid[string]{
		Identity: func() string { return "" },
		Combine:  func(a, b string) string { return a + b },
	}
}

// Xor returns the bitwise-XOR monoid over integers: identity 0, Combine a^b.
func Xor[T constraints.Integer]() Monoid[T] {
	return Monoid[T]{
		Identity: func() T { var zero T; return zero },
		Combine:  func(a, b T) T { return a ^ b },
	}
}
