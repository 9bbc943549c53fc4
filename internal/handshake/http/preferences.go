package http

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/keystep/keystep/pkg/httpx"
	"github.com/keystep/keystep/pkg/keystepsdk"
)

// PreferencesHandler godoc
//
//	@Summary		Save User Preferences
//	@Description	Accepts an arbitrary non-empty JSON object of user preferences and echoes it back.
//	@Description	Keys must be non-blank after trimming. Values are not interpreted.
//	@Tags			Preferences
//	@Accept			json
//	@Produce		json
//	@Param			preferences	body		map[string]any					true	"Preferences object"
//	@Success		200			{object}	keystepsdk.PreferencesResponse	"ok, preferences"
//	@Failure		400			{object}	keystepsdk.ErrorResponse		"error"
//	@Failure		401			{object}	keystepsdk.ErrorResponse		"error"
//	@Security		SessionAuth
//	@Router			/api/user/preferences [post].
func PreferencesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Decode into any first so "not JSON" and "JSON but not an
		// object" stay distinct errors.
		var raw any
		if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
			keystepsdk.ErrInvalidJSONBody.WriteError(w)
			return
		}

		preferences, ok := raw.(map[string]any)
		if !ok {
			keystepsdk.ErrPreferencesMustBeObject.WriteError(w)
			return
		}
		if len(preferences) == 0 {
			keystepsdk.ErrPreferencesEmpty.WriteError(w)
			return
		}
		for key := range preferences {
			if strings.TrimSpace(key) == "" {
				keystepsdk.ErrInvalidPreferenceKey.WriteError(w)
				return
			}
		}

		httpx.WriteJSON(w, http.StatusOK, keystepsdk.PreferencesResponse{
			OK:          true,
			Preferences: preferences,
		})
	}
}
