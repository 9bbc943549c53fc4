// Package main walks the full keystep handshake against a running service.
//
// It exercises:
//   - step 1: verification code check -> verification token
//   - step 2: credential issuance -> credential id + private seed
//   - client-side Ed25519 signing of the proof message
//   - step 3: signed proof -> session token
//   - the authenticated preferences endpoint with the session token
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/keystep/keystep/pkg/cryptox"
	"github.com/keystep/keystep/pkg/keystepsdk"
)

func main() {
	var (
		baseURL  = flag.String("url", "http://127.0.0.1:8080", "Service base URL")
		username = flag.String("username", "alice", "Username for the code check")
		code     = flag.String("code", "123456", "Verification code")
		message  = flag.String("message", "hello-proof", "Proof message to sign")
		timeout  = flag.Duration("timeout", 10*time.Second, "Overall timeout")
	)
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := keystepsdk.NewClient(*baseURL)

	verify, err := client.VerifyCode(ctx, *username, *code)
	if err != nil {
		fatalf("step 1 (verify) failed: %v", err)
	}
	fmt.Printf("step 1: verification token minted, expires_in=%ds\n", verify.ExpiresInSeconds)

	cred, err := client.IssueCredential(ctx, verify.VerificationToken)
	if err != nil {
		fatalf("step 2 (issue-credentials) failed: %v", err)
	}
	fmt.Printf("step 2: credential %s issued, expires_in=%ds\n", cred.CredentialID, cred.ExpiresInSeconds)

	priv, err := cryptox.DecodeSeed(cred.CredentialPrivate)
	if err != nil {
		fatalf("decoding private seed failed: %v", err)
	}
	signature := cryptox.SignMessage(priv, []byte(*message))
	fmt.Printf("signed %q with the credential's private key\n", *message)

	enter, err := client.EnterSession(ctx, cred.CredentialID, *message, signature)
	if err != nil {
		fatalf("step 3 (enter) failed: %v", err)
	}
	fmt.Printf("step 3: session open, expires_in=%ds\n", enter.ExpiresInSeconds)

	session := client.NewSession(enter.SessionToken)
	prefs, err := session.SavePreferences(ctx, map[string]any{
		"theme":         "dark",
		"notifications": true,
	})
	if err != nil {
		fatalf("saving preferences failed: %v", err)
	}
	fmt.Printf("preferences accepted: %v\n", prefs.Preferences)

	fmt.Printf("OK: handshake complete for %s\n", *username)
}

func fatalf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
