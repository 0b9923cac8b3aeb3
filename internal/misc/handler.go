package misc

import (
	"net/http"

	"github.com/2beens/fitconnect/internal/middleware"
	"github.com/2beens/fitconnect/internal/telemetry/metrics"
	"github.com/2beens/fitconnect/pkg"

	"github.com/gorilla/mux"
)

type loginHandler interface {
	HandleLogin(w http.ResponseWriter, r *http.Request)
	HandleLogout(w http.ResponseWriter, r *http.Request)
}

type Handler struct {
	versionInfo string
	login       loginHandler
}

func NewHandler(versionInfo string, login loginHandler) *Handler {
	return &Handler{
		versionInfo: versionInfo,
		login:       login,
	}
}

// SetupRoutes registers the root, version and the rate limited /a login routes.
func (handler *Handler) SetupRoutes(
	mainRouter *mux.Router,
	rateLimiter middleware.RequestRateLimiter,
	metricsManager *metrics.Manager,
	loginAllowedPerMin int,
) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")

	loginSubrouter := mainRouter.PathPrefix("/a").Subrouter()
	loginSubrouter.
		HandleFunc("/login", handler.login.HandleLogin).
		Methods("POST", "OPTIONS").Name("login")
	loginSubrouter.
		HandleFunc("/logout", handler.login.HandleLogout).
		Methods("GET", "OPTIONS").Name("logout")

	// brute force guard
	loginSubrouter.Use(middleware.RateLimit(rateLimiter, "login", loginAllowedPerMin, metricsManager))
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	if handler.versionInfo == "" {
		pkg.WriteTextResponseOK(w, "unknown")
		return
	}
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}
