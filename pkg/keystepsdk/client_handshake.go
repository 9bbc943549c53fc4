package keystepsdk

import (
	"context"
	"net/http"
)

// VerifyCode performs step one of the handshake: present a username and
// the shared verification code, receive a verification token.
func (c *Client) VerifyCode(ctx context.Context, username, code string) (*VerifyCodeResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/step1/verify", VerifyCodeRequest{
		Username: username,
		Code:     code,
	}, "")
	if err != nil {
		return nil, err
	}

	var out VerifyCodeResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// IssueCredential performs step two: exchange a live verification token
// for a temporary Ed25519 credential. The CredentialPrivate field of the
// response is the only copy of the private seed; the caller owns it now.
func (c *Client) IssueCredential(ctx context.Context, verificationToken string) (*IssueCredentialResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/step2/issue-credentials", IssueCredentialRequest{
		VerificationToken: verificationToken,
	}, "")
	if err != nil {
		return nil, err
	}

	var out IssueCredentialResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}

// EnterSession performs step three: prove possession of the credential's
// private half by presenting a message and its signature. Message bytes
// are verified exactly as sent. On success the handshake is complete.
func (c *Client) EnterSession(ctx context.Context, credentialID, message, signature string) (*EnterSessionResponse, error) {
	resp, err := c.doJSON(ctx, http.MethodPost, "/api/step3/enter", EnterSessionRequest{
		CredentialID: credentialID,
		Message:      message,
		Signature:    signature,
	}, "")
	if err != nil {
		return nil, err
	}

	var out EnterSessionResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}
