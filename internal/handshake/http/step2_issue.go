package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/keystep/keystep/internal/handshake/service"
	"github.com/keystep/keystep/pkg/httpx"
	"github.com/keystep/keystep/pkg/keystepsdk"
	"github.com/keystep/keystep/pkg/slogx"
)

// IssueCredentialsHandler serves POST /api/step2/issue-credentials, the
// second handshake step.
type IssueCredentialsHandler struct {
	Handshake *service.HandshakeService
}

// ServeHTTP godoc
//
//	@Summary		Temporary Credential Issuance
//	@Description	Second handshake step. Exchanges a live verification token for a fresh Ed25519 credential.
//	@Description	The response's credential_private is the only copy of the private seed; the server retains the public half only.
//	@Description	The verification token is not consumed and stays usable until its own expiry.
//	@Tags			Handshake
//	@Accept			json
//	@Produce		json
//	@Param			request	body		keystepsdk.IssueCredentialRequest	true	"Verification token from step one"
//	@Success		200		{object}	keystepsdk.IssueCredentialResponse	"credential_id, credential_private, expires_in_seconds"
//	@Failure		400		{object}	keystepsdk.ErrorResponse			"error"
//	@Failure		401		{object}	keystepsdk.ErrorResponse			"error"
//	@Failure		500		{object}	keystepsdk.ErrorResponse			"error"
//	@Header			200		{string}	Cache-Control						"no-store"
//	@Router			/api/step2/issue-credentials [post].
func (h *IssueCredentialsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req keystepsdk.IssueCredentialRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		keystepsdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	grant, err := h.Handshake.IssueCredential(ctx, req.VerificationToken)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrVerificationTokenRequired):
			keystepsdk.ErrVerificationTokenRequired.WriteError(w)
		case errors.Is(err, service.ErrInvalidVerificationToken):
			keystepsdk.ErrInvalidVerificationToken.WriteError(w)
		default:
			log.Error("credential issuance failed", "err", err)
			keystepsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, keystepsdk.IssueCredentialResponse{
		CredentialID:      grant.CredentialID,
		CredentialPrivate: grant.PrivateSeed,
		ExpiresInSeconds:  int64(grant.ExpiresIn.Seconds()),
	})
}
