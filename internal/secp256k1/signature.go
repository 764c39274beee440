package secp256k1

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// Returned when r or s falls outside [1, n).
	ErrSignatureRange = errors.New("secp256k1: signature value out of range")

	// Returned for malformed DER input.
	ErrBadDER = errors.New("secp256k1: malformed DER signature")
)

// Signature is an ECDSA signature pair.
type Signature struct {
	r, s *big.Int
}

// NewSignature returns the signature (r, s). Both values must lie in [1, n).
func NewSignature(r, s *big.Int) (Signature, error) {
	if !inGroupRange(r) || !inGroupRange(s) {
		return Signature{}, ErrSignatureRange
	}
	return Signature{r: new(big.Int).Set(r), s: new(big.Int).Set(s)}, nil
}

func inGroupRange(v *big.Int) bool {
	return v != nil && v.Sign() > 0 && v.Cmp(order) < 0
}

// R returns a copy of r.
func (sig Signature) R() *big.Int { return new(big.Int).Set(sig.r) }

// S returns a copy of s.
func (sig Signature) S() *big.Int { return new(big.Int).Set(sig.s) }

// DER serializes the signature as an ASN.1 SEQUENCE of two INTEGERs.
func (sig Signature) DER() []byte {
	r := derInt(sig.r)
	s := derInt(sig.s)
	out := make([]byte, 0, 2+len(r)+len(s))
	out = append(out, 0x30, byte(len(r)+len(s)))
	out = append(out, r...)
	return append(out, s...)
}

// derInt encodes v as a DER INTEGER: minimal big-endian bytes, with a zero
// byte prepended when the high bit is set so the value stays positive.
func derInt(v *big.Int) []byte {
	b := v.Bytes()
	if len(b) == 0 || b[0]&0x80 != 0 {
		b = append([]byte{0x00}, b...)
	}
	return append([]byte{0x02, byte(len(b))}, b...)
}

// ParseDER parses a DER signature. Trailing bytes and non-minimal integer
// encodings are rejected.
func ParseDER(der []byte) (Signature, error) {
	if len(der) < 8 || der[0] != 0x30 {
		return Signature{}, ErrBadDER
	}
	if int(der[1]) != len(der)-2 {
		return Signature{}, fmt.Errorf("%w: bad sequence length", ErrBadDER)
	}

	r, rest, err := parseDERInt(der[2:])
	if err != nil {
		return Signature{}, err
	}
	s, rest, err := parseDERInt(rest)
	if err != nil {
		return Signature{}, err
	}
	if len(rest) != 0 {
		return Signature{}, fmt.Errorf("%w: trailing bytes", ErrBadDER)
	}
	return NewSignature(r, s)
}

func parseDERInt(b []byte) (*big.Int, []byte, error) {
	if len(b) < 3 || b[0] != 0x02 {
		return nil, nil, fmt.Errorf("%w: expected INTEGER", ErrBadDER)
	}
	n := int(b[1])
	if n == 0 || len(b) < 2+n {
		return nil, nil, fmt.Errorf("%w: bad integer length", ErrBadDER)
	}
	body := b[2 : 2+n]
	if body[0]&0x80 != 0 {
		return nil, nil, fmt.Errorf("%w: negative integer", ErrBadDER)
	}
	if n > 1 && body[0] == 0x00 && body[1]&0x80 == 0 {
		return nil, nil, fmt.Errorf("%w: non-minimal integer", ErrBadDER)
	}
	return new(big.Int).SetBytes(body), b[2+n:], nil
}

// String renders the signature as Signature(r, s) in hex.
func (sig Signature) String() string {
	return fmt.Sprintf("Signature(%064x, %064x)", sig.r, sig.s)
}
