package field

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// Returned when two elements from different fields are combined.
	ErrFieldMismatch = errors.New("field: elements belong to different fields")

	// Returned when dividing by the zero element.
	ErrDivideByZero = errors.New("field: division by zero")

	// Returned when an element has no square root, or the field prime does
	// not support the fast square-root exponent.
	ErrNoSquareRoot = errors.New("field: element has no square root")

	errBadPrime = errors.New("field: prime must be at least 2")
)

var (
	one  = big.NewInt(1)
	two  = big.NewInt(2)
	four = big.NewInt(4)
)

// Element is a member of F_p. The zero value is not usable; construct
// elements with New or Zero.
type Element struct {
	num   *big.Int
	prime *big.Int
}

// New returns num mod prime as an element of F_prime. Negative num is
// reduced into [0, prime), so New(-1, 223) is the element 222.
func New(num, prime *big.Int) (Element, error) {
	if prime == nil || prime.Cmp(two) < 0 {
		return Element{}, errBadPrime
	}
	n := new(big.Int).Mod(num, prime)
	return Element{num: n, prime: new(big.Int).Set(prime)}, nil
}

// Zero returns the additive identity of F_prime.
func Zero(prime *big.Int) Element {
	e, err := New(big.NewInt(0), prime)
	if err != nil {
		panic(err)
	}
	return e
}

// Num returns a copy of the element's value.
func (e Element) Num() *big.Int { return new(big.Int).Set(e.num) }

// Prime returns a copy of the field prime.
func (e Element) Prime() *big.Int { return new(big.Int).Set(e.prime) }

// IsZero reports whether e is the additive identity.
func (e Element) IsZero() bool { return e.num.Sign() == 0 }

// Equal reports whether e and other are the same element of the same field.
func (e Element) Equal(other Element) bool {
	return e.prime.Cmp(other.prime) == 0 && e.num.Cmp(other.num) == 0
}

// SameField reports whether e and other share a prime.
func (e Element) SameField(other Element) bool {
	return e.prime.Cmp(other.prime) == 0
}

// Add returns e + other.
func (e Element) Add(other Element) (Element, error) {
	if !e.SameField(other) {
		return Element{}, ErrFieldMismatch
	}
	n := new(big.Int).Add(e.num, other.num)
	n.Mod(n, e.prime)
	return Element{num: n, prime: e.prime}, nil
}

// Sub returns e - other.
func (e Element) Sub(other Element) (Element, error) {
	if !e.SameField(other) {
		return Element{}, ErrFieldMismatch
	}
	n := new(big.Int).Sub(e.num, other.num)
	n.Mod(n, e.prime)
	return Element{num: n, prime: e.prime}, nil
}

// Mul returns e * other.
func (e Element) Mul(other Element) (Element, error) {
	if !e.SameField(other) {
		return Element{}, ErrFieldMismatch
	}
	n := new(big.Int).Mul(e.num, other.num)
	n.Mod(n, e.prime)
	return Element{num: n, prime: e.prime}, nil
}

// Div returns e / other, using Fermat's little theorem for the inverse:
// other^(p-2) is other^-1 in F_p.
func (e Element) Div(other Element) (Element, error) {
	if !e.SameField(other) {
		return Element{}, ErrFieldMismatch
	}
	if other.IsZero() {
		return Element{}, ErrDivideByZero
	}
	exp := new(big.Int).Sub(e.prime, two)
	inv := new(big.Int).Exp(other.num, exp, e.prime)
	n := new(big.Int).Mul(e.num, inv)
	n.Mod(n, e.prime)
	return Element{num: n, prime: e.prime}, nil
}

// Pow returns e^exp. The exponent may be negative or larger than the group
// order; it is reduced mod p-1 first, so Pow(-3) is the cube of the inverse.
func (e Element) Pow(exp *big.Int) Element {
	pm1 := new(big.Int).Sub(e.prime, one)
	red := new(big.Int).Mod(exp, pm1)
	n := new(big.Int).Exp(e.num, red, e.prime)
	return Element{num: n, prime: e.prime}
}

// Neg returns -e.
func (e Element) Neg() Element {
	n := new(big.Int).Neg(e.num)
	n.Mod(n, e.prime)
	return Element{num: n, prime: e.prime}
}

// MulInt returns k * e for a plain integer k. Handy for the 2y and 3x^2
// terms of the point-doubling slope.
func (e Element) MulInt(k int64) Element {
	n := new(big.Int).Mul(e.num, big.NewInt(k))
	n.Mod(n, e.prime)
	return Element{num: n, prime: e.prime}
}

// Sqrt returns a square root of e. It requires p ≡ 3 (mod 4), which holds
// for the secp256k1 prime, and then w = e^((p+1)/4). The result is checked;
// a non-residue yields ErrNoSquareRoot.
func (e Element) Sqrt() (Element, error) {
	if new(big.Int).Mod(e.prime, four).Cmp(big.NewInt(3)) != 0 {
		return Element{}, fmt.Errorf("%w: prime is not 3 mod 4", ErrNoSquareRoot)
	}
	exp := new(big.Int).Add(e.prime, one)
	exp.Rsh(exp, 2)
	n := new(big.Int).Exp(e.num, exp, e.prime)
	check := new(big.Int).Mul(n, n)
	check.Mod(check, e.prime)
	if check.Cmp(e.num) != 0 {
		return Element{}, ErrNoSquareRoot
	}
	return Element{num: n, prime: e.prime}, nil
}

// String renders the element as num mod prime, e.g. "4 mod 7".
func (e Element) String() string {
	return fmt.Sprintf("%s mod %s", e.num, e.prime)
}
