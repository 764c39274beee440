package curve

import (
	"errors"
	"fmt"
	"math/big"

	"btckit/internal/field"
)

var (
	// Returned when a coordinate pair does not satisfy the curve equation.
	ErrNotOnCurve = errors.New("curve: point is not on the curve")

	// Returned when points on different curves are combined or compared.
	ErrCurveMismatch = errors.New("curve: points are on different curves")
)

// Curve is a short Weierstrass curve y² = x³ + ax + b over F_p.
type Curve struct {
	a, b field.Element
}

// New returns the curve with coefficients a and b, which must belong to
// the same field.
func New(a, b field.Element) (Curve, error) {
	if !a.SameField(b) {
		return Curve{}, field.ErrFieldMismatch
	}
	return Curve{a: a, b: b}, nil
}

// A returns the a coefficient.
func (c Curve) A() field.Element { return c.a }

// B returns the b coefficient.
func (c Curve) B() field.Element { return c.b }

// Equal reports whether two curves have the same coefficients.
func (c Curve) Equal(other Curve) bool {
	return c.a.Equal(other.a) && c.b.Equal(other.b)
}

// Contains reports whether (x, y) satisfies y² = x³ + ax + b.
func (c Curve) Contains(x, y field.Element) bool {
	if !x.SameField(c.a) || !y.SameField(c.a) {
		return false
	}
	lhs := y.Pow(big.NewInt(2))
	rhs := x.Pow(big.NewInt(3))
	ax, err := c.a.Mul(x)
	if err != nil {
		return false
	}
	rhs, err = rhs.Add(ax)
	if err != nil {
		return false
	}
	rhs, err = rhs.Add(c.b)
	if err != nil {
		return false
	}
	return lhs.Equal(rhs)
}

// Point is an element of the curve group: either affine coordinates or the
// point at infinity.
type Point struct {
	curve Curve
	x, y  field.Element
	inf   bool
}

// NewPoint returns the point (x, y) on c, or ErrNotOnCurve.
func NewPoint(c Curve, x, y field.Element) (Point, error) {
	if !c.Contains(x, y) {
		return Point{}, ErrNotOnCurve
	}
	return Point{curve: c, x: x, y: y}, nil
}

// Infinity returns the identity element of c's group.
func Infinity(c Curve) Point {
	return Point{curve: c, inf: true}
}

// Curve returns the curve the point lives on.
func (p Point) Curve() Curve { return p.curve }

// IsInfinity reports whether p is the identity.
func (p Point) IsInfinity() bool { return p.inf }

// Coords returns the affine coordinates. ok is false for the point at
// infinity, which has none.
func (p Point) Coords() (x, y field.Element, ok bool) {
	if p.inf {
		return field.Element{}, field.Element{}, false
	}
	return p.x, p.y, true
}

// Equal reports whether p and q are the same point on the same curve.
func (p Point) Equal(q Point) bool {
	if !p.curve.Equal(q.curve) {
		return false
	}
	if p.inf || q.inf {
		return p.inf && q.inf
	}
	return p.x.Equal(q.x) && p.y.Equal(q.y)
}

// Neg returns the additive inverse of p, the reflection across the x axis.
func (p Point) Neg() Point {
	if p.inf {
		return p
	}
	return Point{curve: p.curve, x: p.x, y: p.y.Neg()}
}

// Add returns p + q under the chord-and-tangent law.
func (p Point) Add(q Point) (Point, error) {
	if !p.curve.Equal(q.curve) {
		return Point{}, ErrCurveMismatch
	}

	// Identity cases.
	if p.inf {
		return q, nil
	}
	if q.inf {
		return p, nil
	}

	if p.x.Equal(q.x) {
		if !p.y.Equal(q.y) {
			// p = -q: the chord is vertical.
			return Infinity(p.curve), nil
		}
		if p.y.IsZero() {
			// Doubling a point with a vertical tangent.
			return Infinity(p.curve), nil
		}
		return p.double()
	}

	// Chord case: slope = (y2 - y1) / (x2 - x1).
	dy, err := q.y.Sub(p.y)
	if err != nil {
		return Point{}, err
	}
	dx, err := q.x.Sub(p.x)
	if err != nil {
		return Point{}, err
	}
	slope, err := dy.Div(dx)
	if err != nil {
		return Point{}, err
	}
	return p.third(slope, q.x)
}

// double returns 2p for p with y ≠ 0.
// slope = (3x² + a) / 2y.
func (p Point) double() (Point, error) {
	num, err := p.x.Pow(big.NewInt(2)).MulInt(3).Add(p.curve.a)
	if err != nil {
		return Point{}, err
	}
	slope, err := num.Div(p.y.MulInt(2))
	if err != nil {
		return Point{}, err
	}
	return p.third(slope, p.x)
}

// third computes the intersection point for a line of the given slope
// through p and (x2, ·), reflected:
// x3 = slope² - x1 - x2, y3 = slope(x1 - x3) - y1.
func (p Point) third(slope, x2 field.Element) (Point, error) {
	x3, err := slope.Pow(big.NewInt(2)).Sub(p.x)
	if err != nil {
		return Point{}, err
	}
	x3, err = x3.Sub(x2)
	if err != nil {
		return Point{}, err
	}
	dx, err := p.x.Sub(x3)
	if err != nil {
		return Point{}, err
	}
	y3, err := slope.Mul(dx)
	if err != nil {
		return Point{}, err
	}
	y3, err = y3.Sub(p.y)
	if err != nil {
		return Point{}, err
	}
	return Point{curve: p.curve, x: x3, y: y3}, nil
}

// ScalarMul returns k·p by binary double-and-add. A zero or negative-mod
// coefficient yields the identity for k = 0; negative k is taken as
// (-k)·(-p).
func (p Point) ScalarMul(k *big.Int) (Point, error) {
	coeff := new(big.Int).Set(k)
	current := p
	if coeff.Sign() < 0 {
		coeff.Neg(coeff)
		current = p.Neg()
	}

	result := Infinity(p.curve)
	var err error
	for coeff.Sign() > 0 {
		if coeff.Bit(0) == 1 {
			result, err = result.Add(current)
			if err != nil {
				return Point{}, err
			}
		}
		coeff.Rsh(coeff, 1)
		if coeff.Sign() > 0 {
			current, err = current.Add(current)
			if err != nil {
				return Point{}, err
			}
		}
	}
	return result, nil
}

// String renders the point as (x, y) or "infinity".
func (p Point) String() string {
	if p.inf {
		return "infinity"
	}
	return fmt.Sprintf("(%s, %s)", p.x.Num(), p.y.Num())
}
