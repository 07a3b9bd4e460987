package field

import "github.com/arjanvaneersel/bcoin/types"

// The types.Int conformance surface. Mixed-modulus operands panic here; see
// the Element doc for the recoverable package-level form.

var _ types.Int = Element{}

func (e Element) Zero() types.Int {
	return Element{num: e.num.Zero(), prime: e.prime}
}

func (e Element) One() types.Int {
	return Element{num: e.num.One(), prime: e.prime}
}

func (e Element) Cmp(o types.Int) int {
	return e.num.Cmp(asElement(o).num)
}

// Eq compares residues only; the modulus is not part of the comparison.
// Callers are responsible for comparing like with like.
func (e Element) Eq(o types.Int) bool {
	return e.num.Eq(asElement(o).num)
}

func (e Element) Add(o types.Int) types.Int { return must(Add(e, asElement(o))) }
func (e Element) Sub(o types.Int) types.Int { return must(Sub(e, asElement(o))) }
func (e Element) Mul(o types.Int) types.Int { return must(Mul(e, asElement(o))) }
func (e Element) Div(o types.Int) types.Int { return must(Div(e, asElement(o))) }

func (e Element) Rem(o types.Int) types.Int {
	rhs := asElement(o)
	if !e.prime.Eq(rhs.prime) {
		panic(ErrDifferentFields)
	}
	return Element{num: e.num.Rem(rhs.num), prime: e.prime}
}

// Pow raises the element to a small unsigned power. The exponent is
// assembled from One by addition, since the backing type is only reachable
// through the capability.
func (e Element) Pow(n uint) types.Int {
	k := e.num.Zero()
	one := e.num.One()
	for i := uint(0); i < n; i++ {
		k = k.Add(one)
	}
	return e.Exp(k)
}

func asElement(o types.Int) Element {
	return o.(Element)
}

func must(e Element, err error) Element {
	if err != nil {
		panic(err)
	}
	return e
}
