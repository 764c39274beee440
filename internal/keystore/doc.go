// Package keystore persists the local private key on disk, encrypted under
// a passphrase.
//
// The key record is serialized as JSON, sealed with ChaCha20-Poly1305 under
// a scrypt-derived key, and written with restrictive permissions via a temp
// file and rename. A wrong passphrase (or a corrupted file) surfaces as
// ErrWrongPassphrase.
package keystore
