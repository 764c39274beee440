package secp256k1

import (
	"fmt"
	"math/big"

	"btckit/internal/curve"
	"btckit/internal/encoding"
	"btckit/internal/field"
)

// Curve parameters. The prime is 2^256 - 2^32 - 977.
const (
	primeHex = "fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f"
	orderHex = "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"
	gxHex    = "79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"
	gyHex    = "483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"
)

var (
	fieldPrime = mustHex(primeHex)
	order      = mustHex(orderHex)

	s256      curve.Curve
	generator curve.Point
)

func init() {
	a, err := field.New(big.NewInt(0), fieldPrime)
	if err != nil {
		panic(err)
	}
	b, err := field.New(big.NewInt(7), fieldPrime)
	if err != nil {
		panic(err)
	}
	s256, err = curve.New(a, b)
	if err != nil {
		panic(err)
	}

	gx, err := field.New(mustHex(gxHex), fieldPrime)
	if err != nil {
		panic(err)
	}
	gy, err := field.New(mustHex(gyHex), fieldPrime)
	if err != nil {
		panic(err)
	}
	generator, err = curve.NewPoint(s256, gx, gy)
	if err != nil {
		panic(err)
	}
}

func mustHex(s string) *big.Int {
	n, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic(fmt.Sprintf("secp256k1: bad hex constant %q", s))
	}
	return n
}

// P returns the field prime.
func P() *big.Int { return new(big.Int).Set(fieldPrime) }

// N returns the group order.
func N() *big.Int { return new(big.Int).Set(order) }

// Curve returns the secp256k1 curve y² = x³ + 7 over F_P.
func Curve() curve.Curve { return s256 }

// Generator returns the base point G.
func Generator() curve.Point { return generator }

// MessageHash returns hash256 of msg as an integer suitable for Sign and
// Verify.
func MessageHash(msg []byte) *big.Int {
	return new(big.Int).SetBytes(encoding.Hash256(msg))
}
