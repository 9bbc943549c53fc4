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

// VerifyHandler serves POST /api/step1/verify, the first handshake step.
type VerifyHandler struct {
	Handshake *service.HandshakeService
}

// ServeHTTP godoc
//
//	@Summary		Verification Code Check
//	@Description	First handshake step. Validates the shared verification code for a username and mints a verification token with a fixed TTL.
//	@Description	Tokens are independent: repeating this step mints a fresh token without touching earlier ones.
//	@Tags			Handshake
//	@Accept			json
//	@Produce		json
//	@Param			request	body		keystepsdk.VerifyCodeRequest	true	"Username and verification code"
//	@Success		200		{object}	keystepsdk.VerifyCodeResponse	"verification_token, expires_in_seconds"
//	@Failure		400		{object}	keystepsdk.ErrorResponse		"error"
//	@Failure		401		{object}	keystepsdk.ErrorResponse		"error"
//	@Failure		500		{object}	keystepsdk.ErrorResponse		"error"
//	@Header			200		{string}	Cache-Control					"no-store"
//	@Router			/api/step1/verify [post].
func (h *VerifyHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req keystepsdk.VerifyCodeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		keystepsdk.ErrInvalidJSONBody.WriteError(w)
		return
	}

	grant, err := h.Handshake.CheckCode(ctx, req.Username, req.Code)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUsernameRequired):
			keystepsdk.ErrUsernameRequired.WriteError(w)
		case errors.Is(err, service.ErrInvalidCode):
			keystepsdk.ErrInvalidCode.WriteError(w)
		default:
			log.Error("code check failed", "err", err)
			keystepsdk.ErrServerError.WriteError(w)
		}
		return
	}

	httpx.WriteJSON(w, http.StatusOK, keystepsdk.VerifyCodeResponse{
		VerificationToken: grant.Token,
		ExpiresInSeconds:  int64(grant.ExpiresIn.Seconds()),
	})
}
