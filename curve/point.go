// Package curve implements the group law on short Weierstrass curves
// y² = x³ + ax + b over any backing type satisfying types.Int.
//
// Coordinates are typically field.Element values, which gives the modular
// arithmetic of a prime field; raw signed integers work too and are useful
// for illustration over the rationals. All division in the group law is the
// coordinate type's division, so over a prime field it is the Fermat
// inverse.
package curve

import (
	"errors"
	"fmt"

	"github.com/arjanvaneersel/bcoin/types"
)

// ErrInvalidPoint is returned when exactly one coordinate is supplied: a
// point has either both coordinates or neither.
var ErrInvalidPoint = errors.New("curve: point requires both coordinates or neither")

// NotOnCurveError reports coordinates that do not satisfy the curve
// equation.
type NotOnCurveError struct {
	X, Y types.Int
}

func (e *NotOnCurveError) Error() string {
	return fmt.Sprintf("curve: (%s, %s) is not on the curve", e.X, e.Y)
}

// Point is a point on the curve y² = x³ + ax + b, or the point at infinity
// for that curve. The coordinate pair being absent is the infinity tag; the
// fields are unexported, so a half-built point is not constructible outside
// New. Points are immutable and Add returns a new point.
//
// The zero Point is not a valid value; construct points through New or
// NewInfinity.
type Point struct {
	a, b types.Int
	x, y types.Int // both nil for the point at infinity
}

// New validates the coordinates against the curve equation and returns the
// point. Passing nil for both x and y yields the point at infinity.
func New(x, y, a, b types.Int) (Point, error) {
	if x == nil && y == nil {
		return Point{a: a, b: b}, nil
	}
	if x == nil || y == nil {
		return Point{}, ErrInvalidPoint
	}
	if !onCurve(x, y, a, b) {
		return Point{}, &NotOnCurveError{X: x, Y: y}
	}
	return Point{a: a, b: b, x: x, y: y}, nil
}

// NewInfinity returns the group identity for the curve (a, b).
func NewInfinity(a, b types.Int) Point {
	return Point{a: a, b: b}
}

func onCurve(x, y, a, b types.Int) bool {
	return y.Pow(2).Eq(x.Pow(3).Add(a.Mul(x)).Add(b))
}

// IsInfinity reports whether the point is the group identity.
func (p Point) IsInfinity() bool { return p.x == nil }

// X returns the x coordinate, nil for the point at infinity.
func (p Point) X() types.Int { return p.x }

// Y returns the y coordinate, nil for the point at infinity.
func (p Point) Y() types.Int { return p.y }

// A returns the curve parameter a.
func (p Point) A() types.Int { return p.a }

// B returns the curve parameter b.
func (p Point) B() types.Int { return p.b }

// Eq reports whether p and q are the same point on the same curve.
func (p Point) Eq(q Point) bool {
	p.checkInit()
	q.checkInit()
	if !p.a.Eq(q.a) || !p.b.Eq(q.b) {
		return false
	}
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() && q.IsInfinity()
	}
	return p.x.Eq(q.x) && p.y.Eq(q.y)
}

// Add combines two points of the same curve by the group law. It is total
// over valid points; operands with differing curve parameters panic, since
// independently validated points on one curve cannot reach that state.
func (p Point) Add(q Point) Point {
	p.checkInit()
	q.checkInit()
	if !p.a.Eq(q.a) || !p.b.Eq(q.b) {
		panic(fmt.Sprintf("curve: %s and %s are not on the same curve", p, q))
	}

	switch {
	case p.IsInfinity():
		return q

	case q.IsInfinity():
		return p

	case p.x.Eq(q.x) && !p.y.Eq(q.y):
		// The vertical line through the pair meets the curve only at
		// infinity.
		return NewInfinity(p.a, p.b)

	case p.x.Eq(q.x) && p.y.Eq(p.y.Zero()):
		// Doubling a point with zero ordinate: the tangent is vertical.
		return NewInfinity(p.a, p.b)

	case p.x.Eq(q.x):
		// Doubling: s = (3x² + a) / 2y, x' = s² - 2x, y' = s(x - x') - y.
		one := p.x.One()
		two := one.Add(one)
		three := two.Add(one)

		s := three.Mul(p.x.Pow(2)).Add(p.a).Div(two.Mul(p.y))
		x := s.Pow(2).Sub(p.x).Sub(p.x)
		y := s.Mul(p.x.Sub(x)).Sub(p.y)
		return mustNew(x, y, p.a, p.b)

	case !p.x.Eq(q.x):
		// Chord: s = (y₂ - y₁) / (x₂ - x₁), x' = s² - x₁ - x₂,
		// y' = s(x₁ - x') - y₁.
		s := q.y.Sub(p.y).Div(q.x.Sub(p.x))
		x := s.Pow(2).Sub(p.x).Sub(q.x)
		y := s.Mul(p.x.Sub(x)).Sub(p.y)
		return mustNew(x, y, p.a, p.b)
	}

	// Unreachable for points validated at construction.
	panic("curve: unhandled point addition case")
}

func (p Point) String() string {
	if p.IsInfinity() {
		return fmt.Sprintf("Point(infinity)_%s_%s", p.a, p.b)
	}
	return fmt.Sprintf("Point(%s, %s)_%s_%s", p.x, p.y, p.a, p.b)
}

func (p Point) checkInit() {
	if p.a == nil || p.b == nil {
		panic("curve: use of uninitialized Point")
	}
}

// Group-law outputs satisfy the curve equation by construction; a validation
// failure here means an operand broke the construction invariant.
func mustNew(x, y, a, b types.Int) Point {
	pt, err := New(x, y, a, b)
	if err != nil {
		panic(err)
	}
	return pt
}
