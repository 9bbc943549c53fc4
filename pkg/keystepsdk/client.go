package keystepsdk

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/keystep/keystep/pkg/cryptox"
)

// Client is a client for the keystep handshake service. It drives the
// three handshake steps, the health probes, and creates Sessions for the
// authenticated surface.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a new service client.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewSession wraps an existing session token, e.g. one carried over from
// an earlier handshake. No validation happens until the first request.
func (c *Client) NewSession(sessionToken string) *Session {
	return &Session{client: c, token: sessionToken}
}

// CompleteHandshake walks all three steps in one call: check the code,
// have a credential issued, sign the proof message with the returned seed
// and enter a session. The private seed never leaves this function.
func (c *Client) CompleteHandshake(ctx context.Context, username, code, message string) (*Session, error) {
	verify, err := c.VerifyCode(ctx, username, code)
	if err != nil {
		return nil, err
	}

	cred, err := c.IssueCredential(ctx, verify.VerificationToken)
	if err != nil {
		return nil, err
	}

	priv, err := cryptox.DecodeSeed(cred.CredentialPrivate)
	if err != nil {
		return nil, err
	}
	signature := cryptox.SignMessage(priv, []byte(message))

	enter, err := c.EnterSession(ctx, cred.CredentialID, message, signature)
	if err != nil {
		return nil, err
	}

	return c.NewSession(enter.SessionToken), nil
}

// Session is an authenticated handle: a session token bound to the client
// that minted it. Sessions cannot be refreshed; when the token expires the
// handshake has to be walked again.
type Session struct {
	client *Client
	token  string
}

// Token returns the raw session token, e.g. for storing across restarts.
func (s *Session) Token() string {
	return s.token
}
