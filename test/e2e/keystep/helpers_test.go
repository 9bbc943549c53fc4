package keystep_test

import (
	"context"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/keystep/keystep/internal/handshake/domain"
	handshakehttp "github.com/keystep/keystep/internal/handshake/http"
	"github.com/keystep/keystep/internal/handshake/metrics"
	"github.com/keystep/keystep/internal/handshake/service"
	"github.com/keystep/keystep/pkg/keystepsdk"
)

// testContext mirrors testing.T.Context (Go 1.24): a context canceled when
// the test ends.
func testContext(t *testing.T) context.Context {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	return ctx
}

/*
 * Common constants and helper functions for handshake service end-to-end
 * tests. The service holds everything in memory, so each test boots the
 * fully wired router inside an httptest.Server and drives it through the
 * SDK over real HTTP.
 */

const (
	testUsername = "alice"
	testCode     = "123456"
	testMessage  = "hello-proof"

	// expiredTTL mints artifacts that are dead on arrival.
	expiredTTL = -time.Second
)

// defaultTTLs matches the production lifetimes.
func defaultTTLs() service.HandshakeTTLs {
	return service.HandshakeTTLs{
		Verification: domain.DefaultVerificationTTL,
		Credential:   domain.DefaultCredentialTTL,
		Session:      domain.DefaultSessionTTL,
	}
}

// setupService boots the full HTTP stack in-process and returns an SDK
// client pointed at it. The server is torn down with the test.
func setupService(t *testing.T) *keystepsdk.Client {
	t.Helper()
	return setupServiceWithTTLs(t, defaultTTLs())
}

// setupServiceWithTTLs is setupService with caller-chosen lifetimes.
// Negative TTLs mint artifacts that are already expired, which the
// expiry tests use to hit the rejection paths without sleeping.
func setupServiceWithTTLs(t *testing.T, ttls service.HandshakeTTLs) *keystepsdk.Client {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	handshake := service.NewHandshakeService(service.NewStaticCodeValidator(testCode), ttls)

	router := handshakehttp.NewRouter("e2e", logger, handshake, metrics.New())
	router.ApplyRoutes()

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)

	return keystepsdk.NewClient(server.URL)
}

// walkToCredential performs steps one and two and returns the issued
// credential, private seed included.
func walkToCredential(t *testing.T, client *keystepsdk.Client) *keystepsdk.IssueCredentialResponse {
	t.Helper()

	verify, err := client.VerifyCode(testContext(t), testUsername, testCode)
	require.NoError(t, err, "Code check should succeed")
	require.NotEmpty(t, verify.VerificationToken)

	cred, err := client.IssueCredential(testContext(t), verify.VerificationToken)
	require.NoError(t, err, "Credential issuance should succeed")
	require.NotEmpty(t, cred.CredentialID)
	require.NotEmpty(t, cred.CredentialPrivate)

	return cred
}

// openSession walks the whole handshake and returns an authenticated
// session.
func openSession(t *testing.T, client *keystepsdk.Client) *keystepsdk.Session {
	t.Helper()

	session, err := client.CompleteHandshake(testContext(t), testUsername, testCode, testMessage)
	require.NoError(t, err, "Handshake should succeed")
	require.NotNil(t, session)

	return session
}

// assertSDKError verifies that err is a service error with the expected
// HTTP status and error code.
func assertSDKError(t *testing.T, err error, wantStatus int, wantCode string) {
	t.Helper()

	require.Error(t, err)

	var sdkErr *keystepsdk.Error
	require.ErrorAs(t, err, &sdkErr, "error should carry the service's error shape, got: %v", err)
	require.Equal(t, wantStatus, sdkErr.StatusCode)
	require.Equal(t, wantCode, sdkErr.Code)
}

// assertHealthy verifies a health check response is OK.
func assertHealthy(t *testing.T, health *keystepsdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
