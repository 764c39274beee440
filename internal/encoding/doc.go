// Package encoding implements the byte-level formats that sit between raw
// key material and what users paste around: double SHA-256 and
// SHA-256+RIPEMD-160 digests, base58 and base58check, WIF private keys and
// P2PKH addresses, plus short public-key fingerprints for display.
//
// Everything here operates on plain byte slices so the package stays free
// of curve types; internal/secp256k1 layers its convenience methods on top.
package encoding
