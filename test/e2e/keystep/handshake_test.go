package keystep_test

import (
	"crypto/ed25519"
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/keystep/keystep/pkg/cryptox"
	"github.com/keystep/keystep/pkg/keystepsdk"
)

// TestHandshakeFlow walks the three steps explicitly over real HTTP:
// 1. Check the verification code for a verification token
// 2. Trade the verification token for a credential
// 3. Sign the proof message with the credential's seed and enter a session
func TestHandshakeFlow(t *testing.T) {
	client := setupService(t)

	verify, err := client.VerifyCode(testContext(t), testUsername, testCode)
	require.NoError(t, err, "Code check should succeed")
	require.NotEmpty(t, verify.VerificationToken)
	require.Equal(t, int64(300), verify.ExpiresInSeconds)

	tokenBytes, err := base64.RawURLEncoding.DecodeString(verify.VerificationToken)
	require.NoError(t, err, "Verification token should be base64url")
	require.Len(t, tokenBytes, 32)

	t.Logf("Verification token minted, expires in %ds", verify.ExpiresInSeconds)

	cred, err := client.IssueCredential(testContext(t), verify.VerificationToken)
	require.NoError(t, err, "Credential issuance should succeed")
	require.NotEmpty(t, cred.CredentialID)
	require.NotEmpty(t, cred.CredentialPrivate)
	require.Equal(t, int64(300), cred.ExpiresInSeconds)

	t.Logf("Credential %s issued", cred.CredentialID)

	priv, err := cryptox.DecodeSeed(cred.CredentialPrivate)
	require.NoError(t, err, "Private seed should decode")
	signature := cryptox.SignMessage(priv, []byte(testMessage))

	enter, err := client.EnterSession(testContext(t), cred.CredentialID, testMessage, signature)
	require.NoError(t, err, "Signed proof should open a session")
	require.NotEmpty(t, enter.SessionToken)
	require.Equal(t, int64(1800), enter.ExpiresInSeconds)

	sessionBytes, err := base64.RawURLEncoding.DecodeString(enter.SessionToken)
	require.NoError(t, err, "Session token should be base64url")
	require.Len(t, sessionBytes, 32)

	t.Logf("Session open, expires in %ds", enter.ExpiresInSeconds)
}

// TestCompleteHandshake verifies the SDK convenience wrapper walks all
// three steps and hands back a usable session.
func TestCompleteHandshake(t *testing.T) {
	client := setupService(t)

	session, err := client.CompleteHandshake(testContext(t), testUsername, testCode, testMessage)
	require.NoError(t, err, "Handshake should succeed")
	require.NotEmpty(t, session.Token())

	resp, err := session.SavePreferences(testContext(t), map[string]any{"theme": "dark"})
	require.NoError(t, err, "Session from CompleteHandshake should be accepted")
	require.True(t, resp.OK)

	t.Logf("Handshake completed in one call, session usable")
}

// TestVerifyRejections covers the step one refusal paths.
func TestVerifyRejections(t *testing.T) {
	client := setupService(t)

	t.Run("missing username", func(t *testing.T) {
		_, err := client.VerifyCode(testContext(t), "", testCode)
		assertSDKError(t, err, http.StatusBadRequest, keystepsdk.ErrorCodeUsernameRequired)
	})

	t.Run("wrong code", func(t *testing.T) {
		_, err := client.VerifyCode(testContext(t), testUsername, "999999")
		assertSDKError(t, err, http.StatusUnauthorized, keystepsdk.ErrorCodeInvalidCode)
	})

	t.Run("code is not trimmed", func(t *testing.T) {
		_, err := client.VerifyCode(testContext(t), testUsername, " "+testCode)
		assertSDKError(t, err, http.StatusUnauthorized, keystepsdk.ErrorCodeInvalidCode)
	})
}

// TestIssueRejectsUnknownToken verifies that step two refuses tokens the
// service never minted.
func TestIssueRejectsUnknownToken(t *testing.T) {
	client := setupService(t)

	_, err := client.IssueCredential(testContext(t), "never-minted")
	assertSDKError(t, err, http.StatusUnauthorized, keystepsdk.ErrorCodeInvalidVerificationToken)
}

// TestVerificationTokenMultiUse verifies a verification token stays
// usable for further issuances until it expires.
func TestVerificationTokenMultiUse(t *testing.T) {
	client := setupService(t)

	verify, err := client.VerifyCode(testContext(t), testUsername, testCode)
	require.NoError(t, err)

	first, err := client.IssueCredential(testContext(t), verify.VerificationToken)
	require.NoError(t, err, "First issuance should succeed")

	second, err := client.IssueCredential(testContext(t), verify.VerificationToken)
	require.NoError(t, err, "Second issuance from the same token should succeed")
	require.NotEqual(t, first.CredentialID, second.CredentialID, "Each issuance should mint a fresh credential")
}

// TestEnterRejectsBadProofs covers the step three refusal paths: garbage
// encodings, malformed signatures, and signatures from the wrong key.
func TestEnterRejectsBadProofs(t *testing.T) {
	client := setupService(t)
	cred := walkToCredential(t, client)

	t.Run("not base64url", func(t *testing.T) {
		_, err := client.EnterSession(testContext(t), cred.CredentialID, testMessage, "!!not-base64url!!")
		assertSDKError(t, err, http.StatusBadRequest, keystepsdk.ErrorCodeSignatureNotBase64URL)
	})

	t.Run("wrong length", func(t *testing.T) {
		_, err := client.EnterSession(testContext(t), cred.CredentialID, testMessage, "c2hvcnQ")
		assertSDKError(t, err, http.StatusBadRequest, keystepsdk.ErrorCodeSignatureInvalidFormat)
	})

	t.Run("signature from another key", func(t *testing.T) {
		_, seed, err := cryptox.GenerateSigningKeypair()
		require.NoError(t, err)
		stranger := ed25519.NewKeyFromSeed(seed)

		_, err = client.EnterSession(testContext(t), cred.CredentialID, testMessage, cryptox.SignMessage(stranger, []byte(testMessage)))
		assertSDKError(t, err, http.StatusUnauthorized, keystepsdk.ErrorCodeInvalidSignature)
	})

	t.Run("signature over a different message", func(t *testing.T) {
		priv, err := cryptox.DecodeSeed(cred.CredentialPrivate)
		require.NoError(t, err)

		_, err = client.EnterSession(testContext(t), cred.CredentialID, "tampered", cryptox.SignMessage(priv, []byte(testMessage)))
		assertSDKError(t, err, http.StatusUnauthorized, keystepsdk.ErrorCodeInvalidSignature)
	})

	t.Run("unknown credential", func(t *testing.T) {
		priv, err := cryptox.DecodeSeed(cred.CredentialPrivate)
		require.NoError(t, err)

		_, err = client.EnterSession(testContext(t), "no-such-credential", testMessage, cryptox.SignMessage(priv, []byte(testMessage)))
		assertSDKError(t, err, http.StatusUnauthorized, keystepsdk.ErrorCodeInvalidCredential)
	})
}

// TestExpiredArtifactsRefused verifies each step refuses artifacts past
// their lifetime. The services are configured with negative TTLs so the
// artifacts are born expired and no test has to sleep.
func TestExpiredArtifactsRefused(t *testing.T) {
	t.Run("expired verification token", func(t *testing.T) {
		ttls := defaultTTLs()
		ttls.Verification = expiredTTL
		client := setupServiceWithTTLs(t, ttls)

		verify, err := client.VerifyCode(testContext(t), testUsername, testCode)
		require.NoError(t, err, "Minting is unconditional; only presentation checks expiry")

		_, err = client.IssueCredential(testContext(t), verify.VerificationToken)
		assertSDKError(t, err, http.StatusUnauthorized, keystepsdk.ErrorCodeInvalidVerificationToken)
	})

	t.Run("expired credential", func(t *testing.T) {
		ttls := defaultTTLs()
		ttls.Credential = expiredTTL
		client := setupServiceWithTTLs(t, ttls)

		cred := walkToCredential(t, client)
		priv, err := cryptox.DecodeSeed(cred.CredentialPrivate)
		require.NoError(t, err)

		_, err = client.EnterSession(testContext(t), cred.CredentialID, testMessage, cryptox.SignMessage(priv, []byte(testMessage)))
		assertSDKError(t, err, http.StatusUnauthorized, keystepsdk.ErrorCodeInvalidCredential)
	})

	t.Run("expired session", func(t *testing.T) {
		ttls := defaultTTLs()
		ttls.Session = expiredTTL
		client := setupServiceWithTTLs(t, ttls)

		session := openSession(t, client)

		_, err := session.SavePreferences(testContext(t), map[string]any{"theme": "dark"})
		assertSDKError(t, err, http.StatusUnauthorized, keystepsdk.ErrorCodeInvalidSession)
	})
}
