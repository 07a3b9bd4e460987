// Package bigint backs the types.Int contract with math/big. It is signed
// and exact at any size, which makes it the recommended backing for field
// elements with cryptographic-size moduli and the only backing usable for
// raw signed curve coordinates.
package bigint

import (
	"fmt"
	"math/big"

	"github.com/arjanvaneersel/bcoin/types"
)

var _ types.Int = Int{}
var _ types.ModExponentiator = Int{}

// Int wraps a big.Int. The zero value is 0. Operations return new values
// and never mutate their operands.
type Int struct {
	inner *big.Int
}

// New returns the Int for v.
func New(v int64) Int {
	return Int{inner: big.NewInt(v)}
}

// FromBig returns the Int for v. The value is copied.
func FromBig(v *big.Int) Int {
	return Int{inner: new(big.Int).Set(v)}
}

// FromString parses a base-10 value.
func FromString(s string) (Int, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return Int{}, fmt.Errorf("bigint: cannot parse %q", s)
	}
	return Int{inner: v}, nil
}

// Big returns a copy of the wrapped value.
func (x Int) Big() *big.Int {
	return new(big.Int).Set(x.big())
}

func (x Int) big() *big.Int {
	if x.inner == nil {
		return new(big.Int)
	}
	return x.inner
}

func get(o types.Int) *big.Int {
	return o.(Int).big()
}

func (x Int) Zero() types.Int { return Int{} }
func (x Int) One() types.Int  { return New(1) }

func (x Int) Cmp(o types.Int) int { return x.big().Cmp(get(o)) }
func (x Int) Eq(o types.Int) bool { return x.Cmp(o) == 0 }

func (x Int) Add(o types.Int) types.Int {
	return Int{inner: new(big.Int).Add(x.big(), get(o))}
}

func (x Int) Sub(o types.Int) types.Int {
	return Int{inner: new(big.Int).Sub(x.big(), get(o))}
}

func (x Int) Mul(o types.Int) types.Int {
	return Int{inner: new(big.Int).Mul(x.big(), get(o))}
}

// Div is Euclidean division, pairing with Rem.
func (x Int) Div(o types.Int) types.Int {
	return Int{inner: new(big.Int).Div(x.big(), get(o))}
}

// Rem is the Euclidean remainder; the result is in [0, |o|).
func (x Int) Rem(o types.Int) types.Int {
	return Int{inner: new(big.Int).Mod(x.big(), get(o))}
}

func (x Int) Pow(n uint) types.Int {
	return Int{inner: new(big.Int).Exp(x.big(), new(big.Int).SetUint64(uint64(n)), nil)}
}

// ModExp returns x^exp mod m using big.Int's native modular exponentiation.
func (x Int) ModExp(exp, m types.Int) types.Int {
	return Int{inner: new(big.Int).Exp(x.big(), get(exp), get(m))}
}

func (x Int) String() string {
	return x.big().String()
}
