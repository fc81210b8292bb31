package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/lumacart/lumacart/internal/auth/service"
	"github.com/lumacart/lumacart/internal/auth/store"
	"github.com/lumacart/lumacart/pkg/httpx"
	"github.com/lumacart/lumacart/pkg/jwtx"
	"github.com/lumacart/lumacart/pkg/slogx"

	_ "github.com/lumacart/lumacart/api/auth" // Swagger docs
	"github.com/go-chi/cors"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers. Every API route is
// mounted under the /api prefix; only the probes and swagger live outside it.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	verifier     jwtx.Verifier
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	AuthService         *service.AuthService
	AccountService      *service.AccountService
	VerificationService *service.VerificationService
	UserService         *service.UserService
}

func NewRouter(
	verifier jwtx.Verifier,
	buildVersion string,
	corsOrigins []string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		verifier:     verifier,
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
		cors.Handler(cors.Options{
			AllowedOrigins:   corsOrigins,
			AllowedMethods:   []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Device-ID"},
			AllowCredentials: true,
			MaxAge:           300,
		}),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerAuth()
	r.registerVerification()
	r.registerAccount()
	r.registerAdmin()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			Lumacart Auth Service API
//	@version		0.1.0
//	@description	Authentication and session lifecycle for the lumacart storefront:
//	@description	registration, login with email or phone, JWT refresh rotation,
//	@description	remember-me restore, verification codes and the account deletion workflow.
//
//	@contact.name				Lumacart Platform Team
//	@contact.url				https://github.com/lumacart/lumacart
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				JWT access token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerAuth() {
	// POST /api/auth/register - strict rate limit by IP (public signup)
	registerHandler := &RegisterHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/auth/register",
		httpx.Chain(registerHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /api/auth/login - strict rate limit (credential guessing)
	loginHandler := &LoginHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/auth/login",
		httpx.Chain(loginHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /api/auth/refresh - strict rate limit by IP
	refreshHandler := &RefreshHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/auth/refresh",
		httpx.Chain(refreshHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /api/auth/remember - strict rate limit by IP (token guessing)
	rememberHandler := &RememberHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/auth/remember",
		httpx.Chain(rememberHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /api/auth/logout - authenticated, lenient
	logoutHandler := &LogoutHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/auth/logout",
		httpx.Chain(logoutHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// POST /api/auth/change-password - authenticated, strict (re-verifies the
	// current password, so it is a credential endpoint too)
	changePasswordHandler := &ChangePasswordHandler{AuthService: r.AuthService}
	r.Mux.Handle("POST /api/auth/change-password",
		httpx.Chain(changePasswordHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)

	// GET /api/auth/profile - authenticated read, lenient
	profileHandler := &ProfileHandler{UserService: r.UserService}
	r.Mux.Handle("GET /api/auth/profile",
		httpx.Chain(profileHandler,
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)
}

func (r *Router) registerVerification() {
	h := &VerificationHandler{VerificationService: r.VerificationService}

	// POST /api/auth/verify/request - authenticated, moderate
	r.Mux.Handle("POST /api/auth/verify/request",
		httpx.Chain(http.HandlerFunc(h.HandleRequest),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// POST /api/auth/verify/confirm - authenticated, strict (code guessing)
	r.Mux.Handle("POST /api/auth/verify/confirm",
		httpx.Chain(http.HandlerFunc(h.HandleConfirm),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerAccount() {
	h := &DeletionHandler{AccountService: r.AccountService}

	// POST /api/account/deletion - authenticated, moderate
	r.Mux.Handle("POST /api/account/deletion",
		httpx.Chain(http.HandlerFunc(h.HandleRequest),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)

	// GET /api/account/deletion - authenticated read, lenient
	r.Mux.Handle("GET /api/account/deletion",
		httpx.Chain(http.HandlerFunc(h.HandleGet),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.LenientLimit),
		),
	)

	// POST /api/account/deletion/confirm - strict by IP. Unauthenticated on
	// purpose: the confirmation token may arrive out-of-band long after the
	// access token expired.
	r.Mux.Handle("POST /api/account/deletion/confirm",
		httpx.Chain(http.HandlerFunc(h.HandleConfirm),
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /api/account/deletion/cancel - authenticated, moderate
	r.Mux.Handle("POST /api/account/deletion/cancel",
		httpx.Chain(http.HandlerFunc(h.HandleCancel),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerAdmin() {
	h := &AdminHandler{UserService: r.UserService}

	// PATCH /api/admin/users/{id}/active - admin only, moderate
	r.Mux.Handle("PATCH /api/admin/users/{id}/active",
		httpx.Chain(http.HandlerFunc(h.HandleSetActive),
			httpx.AuthnMiddleware(r.verifier),
			httpx.RequireRole("ADMIN"),
			httpx.RateLimitByUser(httpx.ModerateLimit),
		),
	)
}

func (r *Router) registerSystem() {
	// Probes sit outside /api so orchestration configs stay short.
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)

	// GET /api/health - the detailed health report
	r.Mux.Handle("GET /api/health",
		httpx.Chain(HealthHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
