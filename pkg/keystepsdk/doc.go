/*
Package keystepsdk provides a client SDK for the keystep handshake service.

# Overview

The service authenticates callers through a three step handshake: a
verification code check, temporary credential issuance, and a signed
proof of possession. The SDK mirrors those steps one-to-one and adds a
composite helper that walks the whole flow.

# Client vs Session

The package is organized around two main types:

  - Client: drives the handshake itself and the unauthenticated probes
  - Session: wraps a session token for the authenticated surface

Step by step:

	client := keystepsdk.NewClient("https://keystep.example.com")

	verify, err := client.VerifyCode(ctx, "alice", "123456")
	cred, err := client.IssueCredential(ctx, verify.VerificationToken)

	priv, err := cryptox.DecodeSeed(cred.CredentialPrivate)
	signature := cryptox.SignMessage(priv, []byte("hello-proof"))

	enter, err := client.EnterSession(ctx, cred.CredentialID, "hello-proof", signature)
	session := client.NewSession(enter.SessionToken)

Or all at once, letting the SDK handle the key material:

	session, err := client.CompleteHandshake(ctx, "alice", "123456", "hello-proof")

	prefs, err := session.SavePreferences(ctx, map[string]any{"theme": "dark"})

# Errors

Every non-2xx response is returned as *Error carrying the HTTP status
and the service's wire error code:

	var sdkErr *keystepsdk.Error
	if errors.As(err, &sdkErr) {
		log.Printf("refused: %s (HTTP %d)", sdkErr.Code, sdkErr.StatusCode)
	}

All artifacts expire server-side; a *Error with code
"invalid_or_expired_session" means the handshake must be walked again.
*/
package keystepsdk
