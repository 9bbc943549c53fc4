package keystepsdk

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/keystep/keystep/pkg/httpx"
)

// Wire error codes. These are the exact strings the service puts in the
// "error" field; older clients match on them, so they never change.
const (
	ErrorCodeUsernameRequired          = "username_required"
	ErrorCodeInvalidCode               = "invalid code"
	ErrorCodeVerificationTokenRequired = "verification_token_required"
	ErrorCodeInvalidVerificationToken  = "invalid_or_expired_verification_token"
	ErrorCodeCredentialIDRequired      = "credential_id_required"
	ErrorCodeMessageRequired           = "message_required"
	ErrorCodeSignatureRequired         = "signature_required"
	ErrorCodeInvalidCredential         = "invalid_or_expired_credential"
	ErrorCodeSignatureNotBase64URL     = "signature_not_base64url"
	ErrorCodeSignatureInvalidFormat    = "signature_invalid_format"
	ErrorCodeInvalidSignature          = "invalid_signature"
	ErrorCodeInvalidSession            = "invalid_or_expired_session"
	ErrorCodeInvalidJSONBody           = "invalid_json_body"
	ErrorCodePreferencesMustBeObject   = "preferences_must_be_object"
	ErrorCodePreferencesEmpty          = "preferences_empty"
	ErrorCodeInvalidPreferenceKey      = "invalid_preference_key"
	ErrorCodeRateLimitExceeded         = "rate_limit_exceeded"
	ErrorCodeServerError               = "server_error"
)

// Error is the service's error response: an HTTP status and a single
// machine-readable code. It is used by the server to write responses and
// by the SDK to represent anything non-2xx.
type Error struct {
	// StatusCode is the HTTP status this error travels with.
	StatusCode int `json:"-"`

	// Code is the wire error code (e.g. "invalid_signature").
	Code string `json:"error"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("%s (HTTP %d)", e.Code, e.StatusCode)
}

// WriteError writes this error to an HTTP response writer. Handlers use
// this to produce the wire format `{"error": "<code>"}`.
func (e *Error) WriteError(w http.ResponseWriter) {
	httpx.NoCache(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(e)
}

// NewError builds an error with a status and code outside the predefined
// set. Handlers should prefer the predefined values.
func NewError(statusCode int, code string) *Error {
	return &Error{StatusCode: statusCode, Code: code}
}

// Predefined errors, one per wire code. 400s are malformed input, 401s are
// refusals. A refused artifact never reveals whether it existed or merely
// expired.
var (
	ErrUsernameRequired = &Error{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeUsernameRequired,
	}

	ErrInvalidCode = &Error{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeInvalidCode,
	}

	ErrVerificationTokenRequired = &Error{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeVerificationTokenRequired,
	}

	ErrInvalidVerificationToken = &Error{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeInvalidVerificationToken,
	}

	ErrCredentialIDRequired = &Error{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeCredentialIDRequired,
	}

	ErrMessageRequired = &Error{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeMessageRequired,
	}

	ErrSignatureRequired = &Error{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeSignatureRequired,
	}

	ErrInvalidCredential = &Error{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeInvalidCredential,
	}

	ErrSignatureNotBase64URL = &Error{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeSignatureNotBase64URL,
	}

	ErrSignatureInvalidFormat = &Error{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeSignatureInvalidFormat,
	}

	ErrInvalidSignature = &Error{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeInvalidSignature,
	}

	ErrInvalidSession = &Error{
		StatusCode: http.StatusUnauthorized,
		Code:       ErrorCodeInvalidSession,
	}

	ErrInvalidJSONBody = &Error{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeInvalidJSONBody,
	}

	ErrPreferencesMustBeObject = &Error{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodePreferencesMustBeObject,
	}

	ErrPreferencesEmpty = &Error{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodePreferencesEmpty,
	}

	ErrInvalidPreferenceKey = &Error{
		StatusCode: http.StatusBadRequest,
		Code:       ErrorCodeInvalidPreferenceKey,
	}

	ErrServerError = &Error{
		StatusCode: http.StatusInternalServerError,
		Code:       ErrorCodeServerError,
	}
)

// parseErrorResponse turns a non-2xx HTTP response into a typed error.
// Returns nil for 2xx responses.
func parseErrorResponse(resp *http.Response, body []byte) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Error != "" {
		return &Error{
			StatusCode: resp.StatusCode,
			Code:       errResp.Error,
		}
	}

	// Not the service's error shape; likely a proxy or panic page.
	return &Error{
		StatusCode: resp.StatusCode,
		Code:       ErrorCodeServerError,
	}
}
