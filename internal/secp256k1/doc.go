// Package secp256k1 implements the Bitcoin curve on top of internal/curve:
// the curve parameters, private/public key pairs, ECDSA signing and
// verification, and the SEC and DER wire encodings.
//
// Signing derives its nonce deterministically from the secret and the
// message hash with an HMAC-SHA256 chain (RFC 6979), so signatures are
// repeatable and never depend on the quality of a random source at signing
// time. Produced signatures are low-s normalized.
package secp256k1
