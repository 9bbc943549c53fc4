package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/keystep/keystep/internal/handshake/metrics"
	"github.com/keystep/keystep/internal/handshake/service"
	"github.com/keystep/keystep/pkg/httpx"
	"github.com/keystep/keystep/pkg/slogx"

	_ "github.com/keystep/keystep/api/keystep" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	Handshake *service.HandshakeService
	Metrics   *metrics.Metrics
}

func NewRouter(
	buildVersion string,
	logger *slog.Logger,
	handshake *service.HandshakeService,
	m *metrics.Metrics,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		logger:       logger,
		Handshake:    handshake,
		Metrics:      m,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		httpx.CORSMiddleware(),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerHandshake()
	r.registerPreferences()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Keystep Handshake Service API
//	@version		0.1.0
//	@description	Three-step credential handshake: a verification code check buys a verification token,
//	@description	the token buys a temporary Ed25519 credential, and a signed proof of possession opens a session.
//	@description
//	@description				All artifacts are random, opaque and expire server-side; nothing survives a restart.
//
//	@contact.name				Keystep Team
//	@contact.url				https://github.com/keystep/keystep
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	SessionAuth
//	@in							header
//	@name						Authorization
//	@description				Session token from step three. Format: "Bearer {session_token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerHandshake() {
	// The three steps are deliberately unlimited: brute-force protection
	// on the code check is out of scope, and concurrent proofs against a
	// live credential must all get through.
	verify := &VerifyHandler{Handshake: r.Handshake}
	issue := &IssueCredentialsHandler{Handshake: r.Handshake}
	enter := &EnterHandler{Handshake: r.Handshake}

	r.Mux.Handle("POST /api/step1/verify",
		r.Metrics.InstrumentHandler("step1_verify", verify))
	r.Mux.Handle("POST /api/step2/issue-credentials",
		r.Metrics.InstrumentHandler("step2_issue_credentials", issue))
	r.Mux.Handle("POST /api/step3/enter",
		r.Metrics.InstrumentHandler("step3_enter", enter))
}

func (r *Router) registerPreferences() {
	// POST /api/user/preferences - session bearer auth, moderate rate limit
	secured := httpx.Chain(PreferencesHandler(),
		httpx.SessionAuthMiddleware(r.Handshake),
		httpx.RateLimitByIP(httpx.ModerateLimit),
	)

	r.Mux.Handle("POST /api/user/preferences",
		r.Metrics.InstrumentHandler("preferences", secured))
}

func (r *Router) registerSystem() {
	// Health check endpoints - generous limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.Handshake),
			httpx.RateLimitByIP(httpx.PublicLimit),
		),
	)

	// Prometheus scrape endpoint, unlimited
	r.Mux.Handle("GET /metrics", r.Metrics.Handler())
}
