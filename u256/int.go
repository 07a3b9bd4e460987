// Package u256 backs the types.Int contract with fixed-width 256-bit
// unsigned integers from github.com/holiman/uint256.
//
// Raw Add, Sub and Mul wrap at 2^256 like the backing type, so u256 values
// are meant for field element use, where the field package routes all
// arithmetic through the fused AddMod/MulMod forms. Those compute with
// full-width intermediates and are exact for any modulus up to 256 bits.
package u256

import (
	"fmt"
	"math/big"

	"github.com/holiman/uint256"

	"github.com/arjanvaneersel/bcoin/types"
)

var _ types.Int = Int{}
var _ types.Modular = Int{}

// Int wraps a uint256.Int. The zero value is 0.
type Int struct {
	inner uint256.Int
}

// New returns the Int for v.
func New(v uint64) Int {
	return Int{inner: *uint256.NewInt(v)}
}

// FromBig returns the Int for v. Negative or over-256-bit values are
// rejected.
func FromBig(v *big.Int) (Int, error) {
	if v.Sign() < 0 {
		return Int{}, fmt.Errorf("u256: negative value %s", v)
	}
	i, overflow := uint256.FromBig(v)
	if overflow {
		return Int{}, fmt.Errorf("u256: %s overflows 256 bits", v)
	}
	return Int{inner: *i}, nil
}

// FromString parses a base-10 value.
func FromString(s string) (Int, error) {
	i, err := uint256.FromDecimal(s)
	if err != nil {
		return Int{}, fmt.Errorf("u256: cannot parse %q: %w", s, err)
	}
	return Int{inner: *i}, nil
}

// Big returns the wrapped value as a big.Int.
func (x Int) Big() *big.Int {
	return x.inner.ToBig()
}

func get(o types.Int) *uint256.Int {
	v := o.(Int)
	return &v.inner
}

func (x Int) Zero() types.Int { return Int{} }
func (x Int) One() types.Int  { return New(1) }

func (x Int) Cmp(o types.Int) int { return x.inner.Cmp(get(o)) }
func (x Int) Eq(o types.Int) bool { return x.inner.Eq(get(o)) }

func (x Int) Add(o types.Int) types.Int {
	var z uint256.Int
	z.Add(&x.inner, get(o))
	return Int{inner: z}
}

// Sub wraps on underflow, like the backing type.
func (x Int) Sub(o types.Int) types.Int {
	var z uint256.Int
	z.Sub(&x.inner, get(o))
	return Int{inner: z}
}

func (x Int) Mul(o types.Int) types.Int {
	var z uint256.Int
	z.Mul(&x.inner, get(o))
	return Int{inner: z}
}

func (x Int) Div(o types.Int) types.Int {
	var z uint256.Int
	z.Div(&x.inner, get(o))
	return Int{inner: z}
}

func (x Int) Rem(o types.Int) types.Int {
	var z uint256.Int
	z.Mod(&x.inner, get(o))
	return Int{inner: z}
}

func (x Int) Pow(n uint) types.Int {
	var z uint256.Int
	z.Exp(&x.inner, uint256.NewInt(uint64(n)))
	return Int{inner: z}
}

// AddMod returns (x + o) mod m with a 257-bit intermediate.
func (x Int) AddMod(o, m types.Int) types.Int {
	var z uint256.Int
	z.AddMod(&x.inner, get(o), get(m))
	return Int{inner: z}
}

// MulMod returns (x * o) mod m with a 512-bit intermediate.
func (x Int) MulMod(o, m types.Int) types.Int {
	var z uint256.Int
	z.MulMod(&x.inner, get(o), get(m))
	return Int{inner: z}
}

func (x Int) String() string {
	return x.inner.Dec()
}
