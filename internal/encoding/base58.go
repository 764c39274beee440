package encoding

import (
	"bytes"
	"errors"
	"fmt"
	"math/big"
)

const base58Alphabet = "123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz"

var (
	// Returned when a base58check string fails its checksum.
	ErrBadChecksum = errors.New("encoding: bad base58check checksum")

	base58Index [256]int8
)

func init() {
	for i := range base58Index {
		base58Index[i] = -1
	}
	for i, c := range base58Alphabet {
		base58Index[c] = int8(i)
	}
}

// Base58Encode encodes b as base58. Leading zero bytes become leading '1's.
func Base58Encode(b []byte) string {
	zeros := 0
	for zeros < len(b) && b[zeros] == 0 {
		zeros++
	}

	num := new(big.Int).SetBytes(b)
	radix := big.NewInt(58)
	mod := new(big.Int)

	var out []byte
	for num.Sign() > 0 {
		num.DivMod(num, radix, mod)
		out = append(out, base58Alphabet[mod.Int64()])
	}
	for i := 0; i < zeros; i++ {
		out = append(out, '1')
	}

	// Digits come out least significant first.
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// Base58Decode decodes a base58 string back to bytes, restoring leading
// zero bytes from leading '1's.
func Base58Decode(s string) ([]byte, error) {
	zeros := 0
	for zeros < len(s) && s[zeros] == '1' {
		zeros++
	}

	num := new(big.Int)
	radix := big.NewInt(58)
	for _, c := range []byte(s) {
		d := base58Index[c]
		if d < 0 {
			return nil, fmt.Errorf("encoding: invalid base58 character %q", c)
		}
		num.Mul(num, radix)
		num.Add(num, big.NewInt(int64(d)))
	}

	return append(make([]byte, zeros), num.Bytes()...), nil
}

// Base58Check encodes payload with a 4-byte Hash256 checksum appended.
func Base58Check(payload []byte) string {
	sum := Hash256(payload)
	return Base58Encode(append(append([]byte(nil), payload...), sum[:4]...))
}

// Base58CheckDecode decodes s and verifies its trailing checksum, returning
// the payload (version byte included).
func Base58CheckDecode(s string) ([]byte, error) {
	raw, err := Base58Decode(s)
	if err != nil {
		return nil, err
	}
	if len(raw) < 5 {
		return nil, fmt.Errorf("encoding: base58check payload too short (%d bytes)", len(raw))
	}
	payload, sum := raw[:len(raw)-4], raw[len(raw)-4:]
	if !bytes.Equal(Hash256(payload)[:4], sum) {
		return nil, ErrBadChecksum
	}
	return payload, nil
}
