package keystepsdk

import (
	"context"
	"net/http"
)

// SavePreferences stores a preferences object under the session. The
// object must be non-empty and free of blank keys; the service echoes back
// exactly what it accepted.
func (s *Session) SavePreferences(ctx context.Context, preferences map[string]any) (*PreferencesResponse, error) {
	resp, err := s.client.doJSON(ctx, http.MethodPost, "/api/user/preferences", preferences, s.token)
	if err != nil {
		return nil, err
	}

	var out PreferencesResponse
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}

	return &out, nil
}
