package encoding

import "fmt"

// Version bytes for base58check payloads.
const (
	p2pkhMainnet = 0x00
	p2pkhTestnet = 0x6f
	wifMainnet   = 0x80
	wifTestnet   = 0xef
)

// secretLen is the byte length of a secp256k1 secret scalar.
const secretLen = 32

// AddressP2PKH returns the pay-to-pubkey-hash address for a SEC-encoded
// public key.
func AddressP2PKH(sec []byte, testnet bool) string {
	version := byte(p2pkhMainnet)
	if testnet {
		version = p2pkhTestnet
	}
	payload := append([]byte{version}, Hash160(sec)...)
	return Base58Check(payload)
}

// EncodeWIF encodes a 32-byte secret in wallet import format. The
// compressed flag records whether the corresponding public key should be
// serialized compressed.
func EncodeWIF(secret []byte, compressed, testnet bool) (string, error) {
	if len(secret) != secretLen {
		return "", fmt.Errorf("encoding: secret must be %d bytes, got %d", secretLen, len(secret))
	}
	version := byte(wifMainnet)
	if testnet {
		version = wifTestnet
	}
	payload := make([]byte, 0, secretLen+2)
	payload = append(payload, version)
	payload = append(payload, secret...)
	if compressed {
		payload = append(payload, 0x01)
	}
	return Base58Check(payload), nil
}

// DecodeWIF reverses EncodeWIF, recovering the secret and its flags.
func DecodeWIF(wif string) (secret []byte, compressed, testnet bool, err error) {
	payload, err := Base58CheckDecode(wif)
	if err != nil {
		return nil, false, false, err
	}
	switch payload[0] {
	case wifMainnet:
	case wifTestnet:
		testnet = true
	default:
		return nil, false, false, fmt.Errorf("encoding: unknown WIF version byte %#02x", payload[0])
	}

	body := payload[1:]
	switch len(body) {
	case secretLen:
	case secretLen + 1:
		if body[secretLen] != 0x01 {
			return nil, false, false, fmt.Errorf("encoding: bad WIF compression suffix %#02x", body[secretLen])
		}
		compressed = true
		body = body[:secretLen]
	default:
		return nil, false, false, fmt.Errorf("encoding: bad WIF payload length %d", len(body))
	}

	return append([]byte(nil), body...), compressed, testnet, nil
}
