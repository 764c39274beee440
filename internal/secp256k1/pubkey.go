package secp256k1

import (
	"errors"
	"fmt"
	"math/big"

	"btckit/internal/curve"
	"btckit/internal/encoding"
	"btckit/internal/field"
)

// SEC prefixes.
const (
	secUncompressed = 0x04
	secEvenY        = 0x02
	secOddY         = 0x03
)

var (
	// Returned for malformed or off-curve SEC input.
	ErrBadSEC = errors.New("secp256k1: malformed SEC public key")

	errNotOnS256 = errors.New("secp256k1: point is not on the secp256k1 curve")
)

// PublicKey is a point on the secp256k1 curve.
type PublicKey struct {
	point curve.Point
}

// NewPublicKey wraps a curve point as a public key. The point must be on
// the secp256k1 curve and must not be the identity.
func NewPublicKey(p curve.Point) (PublicKey, error) {
	if !p.Curve().Equal(s256) || p.IsInfinity() {
		return PublicKey{}, errNotOnS256
	}
	return PublicKey{point: p}, nil
}

// Point returns the underlying curve point.
func (pub PublicKey) Point() curve.Point { return pub.point }

// Equal reports whether two public keys are the same point.
func (pub PublicKey) Equal(other PublicKey) bool {
	return pub.point.Equal(other.point)
}

// SEC serializes the key in SEC format: 0x04||x||y uncompressed, or
// 0x02/0x03||x compressed with the prefix carrying y's parity.
func (pub PublicKey) SEC(compressed bool) []byte {
	x, y, _ := pub.point.Coords()
	xb := x.Num().FillBytes(make([]byte, 32))

	if !compressed {
		out := make([]byte, 0, 65)
		out = append(out, secUncompressed)
		out = append(out, xb...)
		return append(out, y.Num().FillBytes(make([]byte, 32))...)
	}

	prefix := byte(secEvenY)
	if y.Num().Bit(0) == 1 {
		prefix = secOddY
	}
	return append([]byte{prefix}, xb...)
}

// ParseSEC parses either SEC form. For the compressed form the missing y
// is recovered as sqrt(x³ + 7) with the parity the prefix asks for.
// Coordinates at or above the field prime are rejected rather than reduced.
func ParseSEC(sec []byte) (PublicKey, error) {
	switch {
	case len(sec) == 65 && sec[0] == secUncompressed:
		x, err := parseCoord(sec[1:33])
		if err != nil {
			return PublicKey{}, err
		}
		y, err := parseCoord(sec[33:])
		if err != nil {
			return PublicKey{}, err
		}
		p, err := curve.NewPoint(s256, x, y)
		if err != nil {
			return PublicKey{}, fmt.Errorf("%w: %v", ErrBadSEC, err)
		}
		return PublicKey{point: p}, nil

	case len(sec) == 33 && (sec[0] == secEvenY || sec[0] == secOddY):
		x, err := parseCoord(sec[1:])
		if err != nil {
			return PublicKey{}, err
		}
		y, err := solveY(x, sec[0] == secOddY)
		if err != nil {
			return PublicKey{}, err
		}
		p, err := curve.NewPoint(s256, x, y)
		if err != nil {
			return PublicKey{}, fmt.Errorf("%w: %v", ErrBadSEC, err)
		}
		return PublicKey{point: p}, nil
	}
	return PublicKey{}, ErrBadSEC
}

// parseCoord reads a 32-byte SEC coordinate, which must already be a
// canonical field value in [0, p).
func parseCoord(b []byte) (field.Element, error) {
	v := new(big.Int).SetBytes(b)
	if v.Cmp(fieldPrime) >= 0 {
		return field.Element{}, fmt.Errorf("%w: coordinate out of range", ErrBadSEC)
	}
	return field.New(v, fieldPrime)
}

// solveY finds y with the requested parity such that y² = x³ + 7.
func solveY(x field.Element, odd bool) (field.Element, error) {
	alpha, err := x.Pow(big.NewInt(3)).Add(s256.B())
	if err != nil {
		return field.Element{}, err
	}
	beta, err := alpha.Sqrt()
	if err != nil {
		return field.Element{}, fmt.Errorf("%w: x has no matching y", ErrBadSEC)
	}
	if (beta.Num().Bit(0) == 1) != odd {
		beta = beta.Neg()
	}
	return beta, nil
}

// Verify reports whether sig is a valid signature over the message hash z.
func (pub PublicKey) Verify(z *big.Int, sig Signature) bool {
	sInv := new(big.Int).ModInverse(sig.s, order)
	if sInv == nil {
		return false
	}
	u := new(big.Int).Mul(z, sInv)
	u.Mod(u, order)
	v := new(big.Int).Mul(sig.r, sInv)
	v.Mod(v, order)

	uG, err := generator.ScalarMul(u)
	if err != nil {
		return false
	}
	vP, err := pub.point.ScalarMul(v)
	if err != nil {
		return false
	}
	total, err := uG.Add(vP)
	if err != nil || total.IsInfinity() {
		return false
	}
	x, _, _ := total.Coords()
	got := new(big.Int).Mod(x.Num(), order)
	return got.Cmp(sig.r) == 0
}

// Address returns the P2PKH address for this key, serialized compressed or
// not per the flag.
func (pub PublicKey) Address(compressed, testnet bool) string {
	return encoding.AddressP2PKH(pub.SEC(compressed), testnet)
}

// Fingerprint returns a short fingerprint of the compressed SEC encoding.
func (pub PublicKey) Fingerprint() string {
	return encoding.Fingerprint(pub.SEC(true))
}
