// Package commands defines the btckit CLI and wires dependencies for
// subcommands.
//
// Commands
//
//   - keygen       Generate a key and store it encrypted
//   - address      Print the P2PKH address
//   - pubkey       Print the SEC public key
//   - fingerprint  Print the public key fingerprint
//   - export       Print the private key in wallet import format
//   - sign         Sign a message, printing the DER signature
//   - verify       Verify a message signature against a SEC public key
//
// # Implementation
//
// The root command resolves the home directory and constructs the key
// store before any subcommand runs, so handlers share one wired store.
// verify is the only command that never touches the store.
package commands
