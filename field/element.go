// Package field implements prime-field arithmetic over any backing type
// satisfying types.Int.
//
// Division and general exponentiation rely on Fermat's little theorem and
// are only meaningful when the modulus is prime. Primality is a caller
// precondition, not checked here; composite moduli yield undefined results,
// not a detected error.
package field

import (
	"errors"
	"fmt"

	"github.com/arjanvaneersel/bcoin/types"
)

var (
	// ErrDifferentFields is returned when arithmetic is attempted between
	// elements of unequal modulus.
	ErrDifferentFields = errors.New("field: elements belong to different fields")
	// ErrDivisionByZero is returned when dividing by the zero element.
	ErrDivisionByZero = errors.New("field: division by zero")
)

// NotInRangeError reports a constructor value outside [0, prime).
type NotInRangeError struct {
	Num, Prime types.Int
}

func (e *NotInRangeError) Error() string {
	return fmt.Sprintf("field: num %s not in field range 0 to %s", e.Num, e.Prime)
}

// Element is a residue modulo a prime. The invariant 0 <= num < prime is
// established once by New and holds for the element's entire lifetime;
// elements are immutable and every operation returns a new one.
//
// Element implements types.Int, so elements can serve directly as curve
// coordinates. On that surface a modulus mismatch panics: curve arithmetic
// only ever combines coordinates of a single field, so a mismatch there is a
// programming error. The package-level functions are the recoverable form.
type Element struct {
	num   types.Int
	prime types.Int
}

// New validates that num is in [0, prime) and returns the element. num and
// prime must share a backing type.
func New(num, prime types.Int) (Element, error) {
	if num.Cmp(prime) >= 0 || num.Cmp(num.Zero()) < 0 {
		return Element{}, &NotInRangeError{Num: num, Prime: prime}
	}
	return Element{num: num, prime: prime}, nil
}

// Num returns the residue.
func (e Element) Num() types.Int { return e.num }

// Prime returns the modulus.
func (e Element) Prime() types.Int { return e.prime }

// Add returns a + b mod p.
func Add(a, b Element) (Element, error) {
	if !a.prime.Eq(b.prime) {
		return Element{}, ErrDifferentFields
	}
	return Element{num: addMod(a.num, b.num, a.prime), prime: a.prime}, nil
}

// Sub returns a - b mod p, computed as (a + (p - b)) mod p so unsigned
// backings never underflow.
func Sub(a, b Element) (Element, error) {
	if !a.prime.Eq(b.prime) {
		return Element{}, ErrDifferentFields
	}
	return Element{num: addMod(a.num, a.prime.Sub(b.num), a.prime), prime: a.prime}, nil
}

// Mul returns a * b mod p.
func Mul(a, b Element) (Element, error) {
	if !a.prime.Eq(b.prime) {
		return Element{}, ErrDifferentFields
	}
	return Element{num: mulMod(a.num, b.num, a.prime), prime: a.prime}, nil
}

// Div returns a / b mod p. The multiplicative inverse of b is computed by
// Fermat's little theorem as b^(p-2) mod p.
func Div(a, b Element) (Element, error) {
	if !a.prime.Eq(b.prime) {
		return Element{}, ErrDifferentFields
	}
	if b.num.Eq(b.num.Zero()) {
		return Element{}, ErrDivisionByZero
	}
	one := a.prime.One()
	two := one.Add(one)
	inv := powMod(b.num, a.prime.Sub(two), a.prime)
	return Element{num: mulMod(a.num, inv, a.prime), prime: a.prime}, nil
}

// Exp returns e^exponent. A zero exponent yields the multiplicative
// identity. Any other exponent is first folded into [0, p-1) by Euclidean
// remainder against p-1, which makes negative exponents meaningful for
// signed backings since a^(p-1) ≡ 1.
func (e Element) Exp(exponent types.Int) Element {
	one := e.prime.One()
	if exponent.Eq(exponent.Zero()) {
		return Element{num: one, prime: e.prime}
	}
	k := exponent.Rem(e.prime.Sub(one))
	return Element{num: powMod(e.num, k, e.prime), prime: e.prime}
}

func (e Element) String() string {
	return fmt.Sprintf("%s mod %s", e.num, e.prime)
}
