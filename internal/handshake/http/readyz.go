package http

import (
	"net/http"
	"time"

	"github.com/keystep/keystep/internal/handshake/service"
	"github.com/keystep/keystep/pkg/httpx"
	"github.com/keystep/keystep/pkg/keystepsdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe endpoint. All state lives in process memory, so a running service is always ready;
//	@Description	the payload additionally reports current registry sizes (live entries plus any awaiting sweep).
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	keystepsdk.HealthResponse	"status, uptime, version, registries"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, handshake *service.HandshakeService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := keystepsdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Registries: &keystepsdk.RegistrySizes{
				Verifications: handshake.VerificationCount(),
				Credentials:   handshake.CredentialCount(),
				Sessions:      handshake.SessionCount(),
			},
		}
		httpx.WriteJSON(w, http.StatusOK, response)
	}
}
