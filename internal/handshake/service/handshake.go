package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/keystep/keystep/internal/handshake/domain"
	"github.com/keystep/keystep/internal/handshake/registry"
	"github.com/keystep/keystep/pkg/cryptox"
	"github.com/keystep/keystep/pkg/slogx"
)

// Handshake failure modes. The strings double as the wire error codes, so
// changing one breaks clients.
var (
	ErrUsernameRequired          = errors.New("username_required")
	ErrInvalidCode               = errors.New("invalid code") // the one non-snake_case code on the wire
	ErrVerificationTokenRequired = errors.New("verification_token_required")
	ErrInvalidVerificationToken  = errors.New("invalid_or_expired_verification_token")
	ErrCredentialIDRequired      = errors.New("credential_id_required")
	ErrMessageRequired           = errors.New("message_required")
	ErrSignatureRequired         = errors.New("signature_required")
	ErrInvalidCredential         = errors.New("invalid_or_expired_credential")
	ErrSignatureNotBase64URL     = errors.New("signature_not_base64url")
	ErrSignatureInvalidFormat    = errors.New("signature_invalid_format")
	ErrInvalidSignature          = errors.New("invalid_signature")
)

// HandshakeTTLs fixes the lifetime of each artifact at mint time. The
// values are used as configured: a zero or negative TTL mints artifacts
// that are already expired, which the boundary tests rely on.
type HandshakeTTLs struct {
	Verification time.Duration
	Credential   time.Duration
	Session      time.Duration
}

// HandshakeService walks callers through the three-step handshake:
//
//	CheckCode       -> verification token
//	IssueCredential -> credential id + private seed
//	EnterSession    -> session token
//
// There is no per-flow object; each step is keyed by the artifact the
// caller presents, validated against the owning registry. The service is
// the sole owner of all three registries.
type HandshakeService struct {
	verifications *registry.Registry[string, domain.VerificationRecord]
	credentials   *registry.Registry[string, domain.CredentialRecord]
	sessions      *registry.Registry[string, domain.SessionRecord]

	codes CodeValidator
	ttls  HandshakeTTLs
}

func NewHandshakeService(codes CodeValidator, ttls HandshakeTTLs) *HandshakeService {
	return &HandshakeService{
		verifications: registry.New[string, domain.VerificationRecord](),
		credentials:   registry.New[string, domain.CredentialRecord](),
		sessions:      registry.New[string, domain.SessionRecord](),
		codes:         codes,
		ttls:          ttls,
	}
}

// CheckCode is step one: a username plus the shared code buys a
// verification token. The username is informational; it never becomes a
// registry key.
func (s *HandshakeService) CheckCode(ctx context.Context, username, code string) (domain.VerificationGrant, error) {
	log := slogx.FromContext(ctx)

	username = strings.TrimSpace(username)
	if username == "" {
		return domain.VerificationGrant{}, ErrUsernameRequired
	}

	// 1. Validate the code before any state is touched. A mismatch is an
	// authorization failure, not an input error.
	if !s.codes.ValidateCode(code) {
		log.Warn("code check failed", "username", username)
		return domain.VerificationGrant{}, ErrInvalidCode
	}

	// 2. Mint and register the verification token.
	token, err := cryptox.GenerateToken(domain.VerificationTokenBytes)
	if err != nil {
		return domain.VerificationGrant{}, fmt.Errorf("minting verification token: %w", err)
	}
	s.verifications.Put(token, domain.VerificationRecord{}, s.ttls.Verification)

	log.Info("verification token issued",
		"username", username,
		"token_fp", cryptox.FingerprintToken(token),
	)

	return domain.VerificationGrant{Token: token, ExpiresIn: s.ttls.Verification}, nil
}

// IssueCredential is step two: exchange a live verification token for a
// fresh Ed25519 credential. Only the public key stays server-side; the
// seed in the grant is gone for good once the response is written.
func (s *HandshakeService) IssueCredential(ctx context.Context, verificationToken string) (domain.CredentialGrant, error) {
	log := slogx.FromContext(ctx)

	token := strings.TrimSpace(verificationToken)
	if token == "" {
		return domain.CredentialGrant{}, ErrVerificationTokenRequired
	}

	// 1. The token must exist and be live. An entry discovered expired is
	// removed on the spot; either way the caller only learns "invalid or
	// expired".
	if _, err := s.verifications.GetLive(token); err != nil {
		if errors.Is(err, registry.ErrExpired) {
			s.verifications.Remove(token)
		}
		log.Warn("credential issuance refused", "token_fp", cryptox.FingerprintToken(token))
		return domain.CredentialGrant{}, ErrInvalidVerificationToken
	}

	// 2. Fresh keypair plus a random identifier for its public half.
	pub, seed, err := cryptox.GenerateSigningKeypair()
	if err != nil {
		return domain.CredentialGrant{}, fmt.Errorf("issuing credential keypair: %w", err)
	}

	credentialID, err := cryptox.GenerateToken(domain.CredentialIDBytes)
	if err != nil {
		return domain.CredentialGrant{}, fmt.Errorf("minting credential id: %w", err)
	}

	s.credentials.Put(credentialID, domain.CredentialRecord{PublicKey: pub}, s.ttls.Credential)

	// The verification token is not consumed here; it stays usable until
	// its own expiry.

	log.Info("temporary credential issued",
		"credential_fp", cryptox.FingerprintToken(credentialID),
		"token_fp", cryptox.FingerprintToken(token),
	)

	return domain.CredentialGrant{
		CredentialID: credentialID,
		PrivateSeed:  cryptox.EncodeKey(seed),
		ExpiresIn:    s.ttls.Credential,
	}, nil
}

// EnterSession is step three: prove possession of the credential's private
// half by signing a caller-chosen message. A valid proof mints a session
// token; the credential itself stays live for further proofs until its TTL.
func (s *HandshakeService) EnterSession(ctx context.Context, credentialID, message, signature string) (domain.SessionGrant, error) {
	log := slogx.FromContext(ctx)

	id := strings.TrimSpace(credentialID)
	if id == "" {
		return domain.SessionGrant{}, ErrCredentialIDRequired
	}
	// Message and signature are verified byte-for-byte, so no trimming.
	if message == "" {
		return domain.SessionGrant{}, ErrMessageRequired
	}
	if signature == "" {
		return domain.SessionGrant{}, ErrSignatureRequired
	}

	// 1. Live credential lookup, with lazy removal of an expired entry.
	cred, err := s.credentials.GetLive(id)
	if err != nil {
		if errors.Is(err, registry.ErrExpired) {
			s.credentials.Remove(id)
		}
		log.Warn("session entry refused", "credential_fp", cryptox.FingerprintToken(id))
		return domain.SessionGrant{}, ErrInvalidCredential
	}

	// 2. Decode before verifying so a malformed signature surfaces as a
	// client error rather than an authorization failure.
	sig, err := cryptox.DecodeSignature(signature)
	if err != nil {
		if errors.Is(err, cryptox.ErrSignatureLength) {
			return domain.SessionGrant{}, ErrSignatureInvalidFormat
		}
		return domain.SessionGrant{}, ErrSignatureNotBase64URL
	}

	// 3. The proof itself, over the exact message bytes the caller sent.
	if !cryptox.VerifySignature(cred.PublicKey, []byte(message), sig) {
		log.Warn("signature proof failed", "credential_fp", cryptox.FingerprintToken(id))
		return domain.SessionGrant{}, ErrInvalidSignature
	}

	// 4. Mint the session.
	token, err := cryptox.GenerateToken(domain.SessionTokenBytes)
	if err != nil {
		return domain.SessionGrant{}, fmt.Errorf("minting session token: %w", err)
	}
	s.sessions.Put(token, domain.SessionRecord{}, s.ttls.Session)

	log.Info("session entered",
		"credential_fp", cryptox.FingerprintToken(id),
		"session_fp", cryptox.FingerprintToken(token),
	)

	return domain.SessionGrant{Token: token, ExpiresIn: s.ttls.Session}, nil
}

// SessionAlive reports whether a session token is currently live, removing
// the entry if the check discovers it expired. This backs the bearer
// middleware on the preferences surface.
func (s *HandshakeService) SessionAlive(token string) bool {
	_, err := s.sessions.GetLive(token)
	if errors.Is(err, registry.ErrExpired) {
		s.sessions.Remove(token)
	}
	return err == nil
}

// SweepStats reports what one reaper pass removed from each registry.
type SweepStats struct {
	Verifications int
	Credentials   int
	Sessions      int
}

func (st SweepStats) Total() int {
	return st.Verifications + st.Credentials + st.Sessions
}

// SweepExpired deletes every expired entry across the three registries.
// Only the reaper calls this; request paths never depend on it.
func (s *HandshakeService) SweepExpired(now time.Time) SweepStats {
	return SweepStats{
		Verifications: s.verifications.Sweep(now),
		Credentials:   s.credentials.Sweep(now),
		Sessions:      s.sessions.Sweep(now),
	}
}

// Registry sizes, live and expired entries alike. Readiness and the
// metrics gauges read these.

func (s *HandshakeService) VerificationCount() int { return s.verifications.Len() }
func (s *HandshakeService) CredentialCount() int   { return s.credentials.Len() }
func (s *HandshakeService) SessionCount() int      { return s.sessions.Len() }
