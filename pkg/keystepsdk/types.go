package keystepsdk

// ErrorResponse is the wire shape of every error the service produces.
// This is used internally for parsing HTTP error responses; client code
// should work with the Error type from errors.go instead.
type ErrorResponse struct {
	// Error is the machine-readable code (e.g. "invalid_signature")
	Error string `json:"error"`
}

// VerifyCodeRequest is the body of POST /api/step1/verify.
type VerifyCodeRequest struct {
	// Username identifies who is asking. Informational only; it is never
	// embedded in the issued token.
	Username string `json:"username" example:"alice"`

	// Code is the shared verification code. Compared byte-for-byte, no
	// trimming.
	Code string `json:"code" example:"123456"`
}

// VerifyCodeResponse carries the verification token minted by step one.
type VerifyCodeResponse struct {
	// VerificationToken is the opaque token to present at step two
	VerificationToken string `json:"verification_token"`

	// ExpiresInSeconds is the full token lifetime at mint time
	ExpiresInSeconds int64 `json:"expires_in_seconds" example:"300"`
}

// IssueCredentialRequest is the body of POST /api/step2/issue-credentials.
type IssueCredentialRequest struct {
	// VerificationToken is the token from step one
	VerificationToken string `json:"verification_token"`
}

// IssueCredentialResponse carries a freshly issued temporary credential.
type IssueCredentialResponse struct {
	// CredentialID names the credential in step three requests
	CredentialID string `json:"credential_id"`

	// CredentialPrivate is the base64url-encoded Ed25519 private seed.
	// The server keeps only the public half; this field is the one and
	// only copy of the private key material.
	CredentialPrivate string `json:"credential_private"`

	// ExpiresInSeconds is the full credential lifetime at mint time
	ExpiresInSeconds int64 `json:"expires_in_seconds" example:"300"`
}

// EnterSessionRequest is the body of POST /api/step3/enter.
type EnterSessionRequest struct {
	// CredentialID is the credential from step two
	CredentialID string `json:"credential_id"`

	// Message is the caller-chosen text that was signed. Verified
	// byte-for-byte; whitespace matters.
	Message string `json:"message" example:"hello-proof"`

	// Signature is the base64url-encoded Ed25519 signature of Message
	Signature string `json:"signature"`
}

// EnterSessionResponse carries the session token that ends the handshake.
type EnterSessionResponse struct {
	// SessionToken is the bearer token for the authenticated surface
	SessionToken string `json:"session_token"`

	// ExpiresInSeconds is the full session lifetime at mint time
	ExpiresInSeconds int64 `json:"expires_in_seconds" example:"1800"`
}

// PreferencesResponse echoes a stored preferences object back.
type PreferencesResponse struct {
	OK bool `json:"ok"`

	// Preferences is the object exactly as accepted
	Preferences map[string]any `json:"preferences"`
}

// HealthResponse is the body of the /livez and /readyz probes; readyz
// additionally reports registry sizes.
type HealthResponse struct {
	// Status is the overall state (always "ok" for a live process)
	Status string `json:"status" example:"ok"`

	// Uptime is the service uptime as a duration string (e.g. "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Registries reports current entry counts (only for /readyz)
	Registries *RegistrySizes `json:"registries,omitempty"`
}

// RegistrySizes is the per-registry entry count on /readyz. Counts include
// expired entries the reaper has not swept yet.
type RegistrySizes struct {
	Verifications int `json:"verifications"`
	Credentials   int `json:"credentials"`
	Sessions      int `json:"sessions"`
}
