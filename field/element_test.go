package field

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arjanvaneersel/bcoin/bigint"
	"github.com/arjanvaneersel/bcoin/types"
	"github.com/arjanvaneersel/bcoin/u256"
)

// backends runs a subtest per numeric backing type.
func backends(t *testing.T, fn func(t *testing.T, n func(uint64) types.Int)) {
	t.Run("bigint", func(t *testing.T) {
		fn(t, func(v uint64) types.Int { return bigint.New(int64(v)) })
	})
	t.Run("u256", func(t *testing.T) {
		fn(t, func(v uint64) types.Int { return u256.New(v) })
	})
}

func elem(t *testing.T, num, prime types.Int) Element {
	t.Helper()
	e, err := New(num, prime)
	require.NoError(t, err)
	return e
}

func TestNew(t *testing.T) {
	backends(t, func(t *testing.T, n func(uint64) types.Int) {
		e := elem(t, n(7), n(13))
		require.True(t, e.Num().Eq(n(7)))
		require.True(t, e.Prime().Eq(n(13)))
	})
}

func TestNewNotInRange(t *testing.T) {
	backends(t, func(t *testing.T, n func(uint64) types.Int) {
		_, err := New(n(13), n(7))
		require.Error(t, err)

		var rangeErr *NotInRangeError
		require.True(t, errors.As(err, &rangeErr))
		require.True(t, rangeErr.Num.Eq(n(13)))
		require.True(t, rangeErr.Prime.Eq(n(7)))
	})
}

func TestNewNegative(t *testing.T) {
	_, err := New(bigint.New(-1), bigint.New(13))
	var rangeErr *NotInRangeError
	require.True(t, errors.As(err, &rangeErr))
}

func TestAdd(t *testing.T) {
	backends(t, func(t *testing.T, n func(uint64) types.Int) {
		p := n(13)
		sum, err := Add(elem(t, n(7), p), elem(t, n(12), p))
		require.NoError(t, err)
		require.True(t, sum.Eq(elem(t, n(6), p)))
	})
}

func TestSub(t *testing.T) {
	backends(t, func(t *testing.T, n func(uint64) types.Int) {
		p := n(13)
		a := elem(t, n(6), p)
		b := elem(t, n(12), p)

		diff, err := Sub(a, b)
		require.NoError(t, err)
		require.True(t, diff.Eq(elem(t, n(7), p)))

		// (a - b) + b == a
		back, err := Add(diff, b)
		require.NoError(t, err)
		require.True(t, back.Eq(a))
	})
}

func TestMul(t *testing.T) {
	backends(t, func(t *testing.T, n func(uint64) types.Int) {
		p := n(13)
		prod, err := Mul(elem(t, n(3), p), elem(t, n(12), p))
		require.NoError(t, err)
		require.True(t, prod.Eq(elem(t, n(10), p)))
	})
}

func TestDiv(t *testing.T) {
	backends(t, func(t *testing.T, n func(uint64) types.Int) {
		p := n(13)
		quot, err := Div(elem(t, n(10), p), elem(t, n(2), p))
		require.NoError(t, err)
		require.True(t, quot.Eq(elem(t, n(5), p)))
	})
}

func TestDivByZero(t *testing.T) {
	backends(t, func(t *testing.T, n func(uint64) types.Int) {
		p := n(13)
		_, err := Div(elem(t, n(10), p), elem(t, n(0), p))
		require.ErrorIs(t, err, ErrDivisionByZero)
	})
}

func TestDifferentFields(t *testing.T) {
	backends(t, func(t *testing.T, n func(uint64) types.Int) {
		a := elem(t, n(7), n(13))
		b := elem(t, n(7), n(17))

		for _, op := range []func(Element, Element) (Element, error){Add, Sub, Mul, Div} {
			_, err := op(a, b)
			require.ErrorIs(t, err, ErrDifferentFields)
		}
	})
}

func TestExp(t *testing.T) {
	backends(t, func(t *testing.T, n func(uint64) types.Int) {
		p := n(13)
		cube := elem(t, n(3), p).Exp(n(3))
		require.True(t, cube.Eq(elem(t, n(1), p)))
	})
}

func TestExpZero(t *testing.T) {
	backends(t, func(t *testing.T, n func(uint64) types.Int) {
		p := n(13)
		require.True(t, elem(t, n(7), p).Exp(n(0)).Eq(elem(t, n(1), p)))
	})
}

func TestExpNegative(t *testing.T) {
	// 7^-3 mod 13 == (7^-1)^3 == 2^3 == 8; negative exponents fold via
	// Fermat's little theorem, so this needs a signed backing.
	p := bigint.New(13)
	got := elem(t, bigint.New(7), p).Exp(bigint.New(-3))
	require.True(t, got.Eq(elem(t, bigint.New(8), p)))
}

func TestInverseRoundTrip(t *testing.T) {
	backends(t, func(t *testing.T, n func(uint64) types.Int) {
		p := n(223)
		one := elem(t, n(1), p)

		for v := uint64(1); v < 223; v++ {
			a := elem(t, n(v), p)
			inv, err := Div(one, a)
			require.NoError(t, err)
			prod, err := Mul(a, inv)
			require.NoError(t, err)
			require.True(t, prod.Eq(one), "a * (1/a) != 1 for a = %d", v)
		}
	})
}

func TestResultsInRange(t *testing.T) {
	backends(t, func(t *testing.T, n func(uint64) types.Int) {
		p := n(13)
		zero := n(0)

		for a := uint64(0); a < 13; a++ {
			for b := uint64(0); b < 13; b++ {
				ea := elem(t, n(a), p)
				eb := elem(t, n(b), p)
				for _, op := range []func(Element, Element) (Element, error){Add, Sub, Mul} {
					res, err := op(ea, eb)
					require.NoError(t, err)
					require.True(t, res.Num().Cmp(p) < 0)
					require.True(t, res.Num().Cmp(zero) >= 0)
				}
			}
		}
	})
}

func TestEqComparesResidueOnly(t *testing.T) {
	a := elem(t, bigint.New(7), bigint.New(13))
	b := elem(t, bigint.New(7), bigint.New(17))
	require.True(t, a.Eq(b))
	require.False(t, a.Eq(elem(t, bigint.New(8), bigint.New(13))))
}

func TestCapabilityMismatchPanics(t *testing.T) {
	a := elem(t, bigint.New(7), bigint.New(13))
	b := elem(t, bigint.New(7), bigint.New(17))
	require.Panics(t, func() { a.Add(b) })
	require.Panics(t, func() { a.Rem(b) })
}

func TestCapabilityRem(t *testing.T) {
	p := bigint.New(13)
	a := elem(t, bigint.New(7), p)
	b := elem(t, bigint.New(5), p)
	require.True(t, a.Rem(b).Eq(elem(t, bigint.New(2), p)))
}

func TestLargeModulus(t *testing.T) {
	// secp256k1's field prime; exercises the mod-exp paths with a
	// cryptographic-size modulus on both backings.
	const prime = "115792089237316195423570985008687907853269984665640564039457584007908834671663"

	bp, err := bigint.FromString(prime)
	require.NoError(t, err)
	up, err := u256.FromString(prime)
	require.NoError(t, err)

	for _, p := range []types.Int{bp, up} {
		one := p.One()
		two := one.Add(one)
		a := elem(t, two, p)

		inv, err := Div(elem(t, one, p), a)
		require.NoError(t, err)
		prod, err := Mul(a, inv)
		require.NoError(t, err)
		require.True(t, prod.Eq(elem(t, one, p)))

		// a^(p-1) == 1 for nonzero a.
		require.True(t, a.Exp(p.Sub(one)).Eq(elem(t, one, p)))
	}
}
