// Package field implements arithmetic over a prime finite field F_p.
//
// Elements are immutable: every operation returns a fresh Element and never
// mutates its operands. Values are kept normalized to the range [0, p), so
// two elements are equal exactly when their numbers and primes are equal.
//
// Operations between elements of different fields are rejected with
// ErrFieldMismatch rather than silently producing nonsense.
package field
