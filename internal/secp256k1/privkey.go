package secp256k1

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"fmt"
	"math/big"

	"btckit/internal/encoding"
)

// Returned when a secret scalar is outside [1, n).
var ErrSecretRange = errors.New("secp256k1: secret out of range")

// PrivateKey holds a secret scalar and its public point.
type PrivateKey struct {
	secret *big.Int
	pub    PublicKey
}

// NewPrivateKey returns the key for a secret scalar in [1, n).
func NewPrivateKey(secret *big.Int) (*PrivateKey, error) {
	if !inGroupRange(secret) {
		return nil, ErrSecretRange
	}
	point, err := generator.ScalarMul(secret)
	if err != nil {
		return nil, err
	}
	pub, err := NewPublicKey(point)
	if err != nil {
		return nil, err
	}
	return &PrivateKey{secret: new(big.Int).Set(secret), pub: pub}, nil
}

// GenerateKey returns a fresh key with a uniformly random secret.
func GenerateKey() (*PrivateKey, error) {
	max := new(big.Int).Sub(order, big.NewInt(1))
	secret, err := rand.Int(rand.Reader, max)
	if err != nil {
		return nil, err
	}
	secret.Add(secret, big.NewInt(1))
	return NewPrivateKey(secret)
}

// FromWIF decodes a wallet-import-format key along with its network and
// compression flags.
func FromWIF(wif string) (key *PrivateKey, compressed, testnet bool, err error) {
	secret, compressed, testnet, err := encoding.DecodeWIF(wif)
	if err != nil {
		return nil, false, false, err
	}
	key, err = NewPrivateKey(new(big.Int).SetBytes(secret))
	if err != nil {
		return nil, false, false, err
	}
	return key, compressed, testnet, nil
}

// PublicKey returns the public half.
func (k *PrivateKey) PublicKey() PublicKey { return k.pub }

// Bytes returns the secret as 32 big-endian bytes.
func (k *PrivateKey) Bytes() []byte {
	return k.secret.FillBytes(make([]byte, 32))
}

// WIF encodes the secret in wallet import format.
func (k *PrivateKey) WIF(compressed, testnet bool) string {
	wif, err := encoding.EncodeWIF(k.Bytes(), compressed, testnet)
	if err != nil {
		// Bytes always returns 32 bytes.
		panic(fmt.Sprintf("secp256k1: %v", err))
	}
	return wif
}

// Sign produces a low-s ECDSA signature over the message hash z with a
// deterministic nonce.
func (k *PrivateKey) Sign(z *big.Int) (Signature, error) {
	halfOrder := new(big.Int).Rsh(order, 1)

	for nk := newNonceKDF(k.secret, z); ; {
		nonce := nk.next()

		point, err := generator.ScalarMul(nonce)
		if err != nil {
			return Signature{}, err
		}
		if point.IsInfinity() {
			continue
		}
		x, _, _ := point.Coords()
		r := new(big.Int).Mod(x.Num(), order)
		if r.Sign() == 0 {
			continue
		}

		kInv := new(big.Int).ModInverse(nonce, order)
		s := new(big.Int).Mul(r, k.secret)
		s.Add(s, z)
		s.Mul(s, kInv)
		s.Mod(s, order)
		if s.Sign() == 0 {
			continue
		}
		if s.Cmp(halfOrder) > 0 {
			s.Sub(order, s)
		}
		return NewSignature(r, s)
	}
}

// SignMessage signs hash256 of an arbitrary message.
func (k *PrivateKey) SignMessage(msg []byte) (Signature, error) {
	return k.Sign(MessageHash(msg))
}

// nonceKDF generates deterministic nonce candidates from the secret and
// message hash via the RFC 6979 HMAC-SHA256 chain.
type nonceKDF struct {
	k, v []byte
}

func newNonceKDF(secret, z *big.Int) *nonceKDF {
	zz := new(big.Int).Set(z)
	if zz.Cmp(order) >= 0 {
		zz.Sub(zz, order)
	}
	zb := zz.FillBytes(make([]byte, 32))
	sb := secret.FillBytes(make([]byte, 32))

	n := &nonceKDF{
		k: make([]byte, 32),
		v: bytes32(0x01),
	}
	n.k = hmacSHA256(n.k, n.v, []byte{0x00}, sb, zb)
	n.v = hmacSHA256(n.k, n.v)
	n.k = hmacSHA256(n.k, n.v, []byte{0x01}, sb, zb)
	n.v = hmacSHA256(n.k, n.v)
	return n
}

// next returns the next candidate in [1, n).
func (n *nonceKDF) next() *big.Int {
	for {
		n.v = hmacSHA256(n.k, n.v)
		candidate := new(big.Int).SetBytes(n.v)
		// Step the chain so a retry gets a fresh candidate.
		n.k = hmacSHA256(n.k, n.v, []byte{0x00})
		n.v = hmacSHA256(n.k, n.v)
		if inGroupRange(candidate) {
			return candidate
		}
	}
}

func hmacSHA256(key []byte, chunks ...[]byte) []byte {
	h := hmac.New(sha256.New, key)
	for _, c := range chunks {
		h.Write(c)
	}
	return h.Sum(nil)
}

func bytes32(fill byte) []byte {
	b := make([]byte, 32)
	for i := range b {
		b[i] = fill
	}
	return b
}
