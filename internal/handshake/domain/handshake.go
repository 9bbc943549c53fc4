package domain

import (
	"crypto/ed25519"
	"time"
)

// Artifact TTLs. Expiry is always creation time plus the fixed TTL; the
// registries re-check liveness on every access, so these are the only
// timeout mechanism in the handshake.
const (
	DefaultVerificationTTL = 5 * time.Minute
	DefaultCredentialTTL   = 5 * time.Minute
	DefaultSessionTTL      = 30 * time.Minute
)

// Token sizes in raw bytes before base64url encoding.
const (
	VerificationTokenBytes = 32
	CredentialIDBytes      = 24
	SessionTokenBytes      = 32
)

// VerificationRecord is the value side of the verification token registry.
// A successful code check carries no state beyond the expiry the registry
// already tracks, so the record is empty; the token itself is the key.
type VerificationRecord struct{}

// CredentialRecord holds the public half of an issued keypair under its
// credential id. The private half is handed to the caller exactly once at
// issuance and is never stored or reconstructed server-side.
type CredentialRecord struct {
	PublicKey ed25519.PublicKey
}

// SessionRecord is the value side of the session registry. Sessions carry
// no claims; holding a live token is the whole story.
type SessionRecord struct{}

// VerificationGrant is what a successful code check hands back: the opaque
// token to present at credential issuance, and how long it stays usable.
type VerificationGrant struct {
	Token     string
	ExpiresIn time.Duration
}

// CredentialGrant carries a freshly issued credential. PrivateSeed is the
// base64url-encoded 32-byte Ed25519 seed; this is the only time it exists
// outside the caller's hands.
type CredentialGrant struct {
	CredentialID string
	PrivateSeed  string
	ExpiresIn    time.Duration
}

// SessionGrant is the end of the handshake: an opaque session token.
type SessionGrant struct {
	Token     string
	ExpiresIn time.Duration
}
