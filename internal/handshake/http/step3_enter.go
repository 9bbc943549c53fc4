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

// EnterHandler serves POST /api/step3/enter, the final handshake step.
type EnterHandler struct {
	Handshake *service.HandshakeService
}

// ServeHTTP godoc
//
//	@Summary		Session Entry
//	@Description	Final handshake step. Verifies an Ed25519 signature over the exact message bytes against the credential's public key and mints a session token.
//	@Description	The credential is not consumed; it can back further proofs until it expires.
//	@Tags			Handshake
//	@Accept			json
//	@Produce		json
//	@Param			request	body		keystepsdk.EnterSessionRequest	true	"Credential id, message and base64url signature"
//	@Success		200		{object}	keystepsdk.EnterSessionResponse	"session_token, expires_in_seconds"
//	@Failure		400		{object}	keystepsdk.ErrorResponse		"error"
//	@Failure		401		{object}	keystepsdk.ErrorResponse		"error"
//	@Failure		500		{object}	keystepsdk.ErrorResponse		"error"
//	@Header			200		{string}	Cache-Control					"no-store"
//	@Router			/api/step3/enter [post].
func (h *EnterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req keystepsdk.EnterSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		keystepsdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	grant, err := h.Handshake.EnterSession(ctx, req.CredentialID, req.Message, req.Signature)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrCredentialIDRequired):
			keystepsdk.ErrCredentialIDRequired.WriteError(w)
		case errors.Is(err, service.ErrMessageRequired):
			keystepsdk.ErrMessageRequired.WriteError(w)
		case errors.Is(err, service.ErrSignatureRequired):
			keystepsdk.ErrSignatureRequired.WriteError(w)
		case errors.Is(err, service.ErrInvalidCredential):
			keystepsdk.ErrInvalidCredential.WriteError(w)
		case errors.Is(err, service.ErrSignatureNotBase64URL):
			keystepsdk.ErrSignatureNotBase64URL.WriteError(w)
		case errors.Is(err, service.ErrSignatureInvalidFormat):
			keystepsdk.ErrSignatureInvalidFormat.WriteError(w)
		case errors.Is(err, service.ErrInvalidSignature):
			keystepsdk.ErrInvalidSignature.WriteError(w)
		default:
			log.Error("session entry failed", "err", err)
			keystepsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, keystepsdk.EnterSessionResponse{
		SessionToken:     grant.Token,
		ExpiresInSeconds: int64(grant.ExpiresIn.Seconds()),
	})
}
