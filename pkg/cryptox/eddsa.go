package cryptox

import (
	"crypto/ed25519"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
)

// Signature decode failures. Callers need to tell a caller-side encoding
// mistake apart from a signature that simply does not verify, so these are
// sentinels rather than one opaque error.
var (
	// ErrSignatureEncoding means the signature string is not valid
	// base64url (no padding).
	ErrSignatureEncoding = errors.New("cryptox: signature is not base64url")
	// ErrSignatureLength means the signature decoded fine but is not
	// exactly ed25519.SignatureSize (64) bytes.
	ErrSignatureLength = errors.New("cryptox: signature has wrong length")
)

// GenerateSigningKeypair generates a fresh Ed25519 keypair. The public key
// is what the server retains; the 32-byte seed is the caller's private half
// and is never stored. Fails only on entropy-source failure.
func GenerateSigningKeypair() (ed25519.PublicKey, []byte, error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return nil, nil, fmt.Errorf("cryptox: failed to generate Ed25519 keypair: %w", err)
	}
	return pub, priv.Seed(), nil
}

// EncodeKey encodes key material (seeds, public keys) as base64url without
// padding, the wire form used everywhere in the handshake.
func EncodeKey(key []byte) string {
	return base64.RawURLEncoding.EncodeToString(key)
}

// DecodeSeed turns a base64url-encoded 32-byte seed back into a private key
// suitable for signing. This is the client-side counterpart of
// GenerateSigningKeypair.
func DecodeSeed(encoded string) (ed25519.PrivateKey, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, fmt.Errorf("cryptox: seed is not base64url: %w", err)
	}
	if len(raw) != ed25519.SeedSize {
		return nil, fmt.Errorf("cryptox: seed must be %d bytes, got %d", ed25519.SeedSize, len(raw))
	}
	return ed25519.NewKeyFromSeed(raw), nil
}

// SignMessage signs message bytes and returns the signature in wire form
// (base64url, no padding).
func SignMessage(priv ed25519.PrivateKey, message []byte) string {
	return base64.RawURLEncoding.EncodeToString(ed25519.Sign(priv, message))
}

// DecodeSignature decodes a wire-form signature. The two failure modes are
// distinct: ErrSignatureEncoding for bad base64url, ErrSignatureLength for
// anything that is not 64 bytes once decoded.
func DecodeSignature(encoded string) ([]byte, error) {
	raw, err := base64.RawURLEncoding.DecodeString(encoded)
	if err != nil {
		return nil, ErrSignatureEncoding
	}
	if len(raw) != ed25519.SignatureSize {
		return nil, ErrSignatureLength
	}
	return raw, nil
}

// VerifySignature reports whether sig is a valid Ed25519 signature of
// message under pub. It never panics on garbage input; a malformed public
// key or signature simply fails verification.
func VerifySignature(pub ed25519.PublicKey, message, sig []byte) bool {
	if len(pub) != ed25519.PublicKeySize {
		return false
	}
	return ed25519.Verify(pub, message, sig)
}
