package field

import "github.com/arjanvaneersel/bcoin/types"

// addMod returns (x + y) mod m, preferring the backing type's fused form so
// fixed-width backings never wrap before the reduction.
func addMod(x, y, m types.Int) types.Int {
	if f, ok := x.(types.Modular); ok {
		return f.AddMod(y, m)
	}
	return x.Add(y).Rem(m)
}

// mulMod returns (x * y) mod m.
func mulMod(x, y, m types.Int) types.Int {
	if f, ok := x.(types.Modular); ok {
		return f.MulMod(y, m)
	}
	return x.Mul(y).Rem(m)
}

// powMod returns x^k mod m by square-and-multiply. k must be non-negative.
// Backings with native modular exponentiation take the fast path.
func powMod(x, k, m types.Int) types.Int {
	if f, ok := x.(types.ModExponentiator); ok {
		return f.ModExp(k, m)
	}

	zero := k.Zero()
	one := k.One()
	two := one.Add(one)

	result := x.One()
	base := x.Rem(m)
	for k.Cmp(zero) > 0 {
		if k.Rem(two).Eq(one) {
			result = mulMod(result, base, m)
		}
		base = mulMod(base, base, m)
		k = k.Div(two)
	}
	return result
}
