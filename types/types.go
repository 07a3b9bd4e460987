// Package types defines the numeric contract shared by the field and curve
// packages. Any integer type implementing Int, fixed-width or arbitrary
// precision, can back a field element or a curve coordinate; the arithmetic
// packages never commit to a concrete representation.
package types

// Int is the set of operations a value type must support to be usable as a
// field element value or curve coordinate.
//
// Values are immutable: every operation returns a new value and leaves its
// operands untouched. Both operands of a binary operation must have the same
// dynamic type; implementations type-assert their argument, so mixing
// backing types panics.
type Int interface {
	// Zero returns the additive identity. It is also the type's default
	// value.
	Zero() Int
	// One returns the multiplicative identity.
	One() Int
	// Cmp returns -1, 0 or 1 depending on whether the receiver is less
	// than, equal to, or greater than o.
	Cmp(o Int) int
	// Eq reports whether the receiver equals o.
	Eq(o Int) bool
	Add(o Int) Int
	Sub(o Int) Int
	Mul(o Int) Int
	// Div returns the quotient of the receiver and o. For signed types the
	// quotient is Euclidean so that it pairs with Rem.
	Div(o Int) Int
	// Rem returns the Euclidean remainder: the result is always in
	// [0, |o|), regardless of the receiver's sign.
	Rem(o Int) Int
	// Pow raises the receiver to a small unsigned power.
	Pow(n uint) Int
	// String formats the value for debugging.
	String() string
}

// Modular is an optional extension for types with fused modular operations.
// Fixed-width types implement it to guarantee full-width intermediates, so
// (x+y) and (x*y) never silently wrap before the reduction. The field
// package prefers these over the plain operation-then-Rem form whenever the
// backing type provides them.
type Modular interface {
	// AddMod returns (receiver + o) mod m.
	AddMod(o, m Int) Int
	// MulMod returns (receiver * o) mod m.
	MulMod(o, m Int) Int
}

// ModExponentiator is an optional extension for types with native modular
// exponentiation. The exponent must be non-negative.
type ModExponentiator interface {
	// ModExp returns receiver^exp mod m.
	ModExp(exp, m Int) Int
}
