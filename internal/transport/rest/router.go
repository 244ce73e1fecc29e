package rest

import (
	"net/http"

	"github.com/bipbipboopboop/ielts-progressor/internal/transport/middleware"
)

// Handlers groups the HTTP handlers mounted by NewRouter.
type Handlers struct {
	Health   *HealthHandler
	Auth     *AuthHandler
	Practice *PracticeHandler
	Hook     *HookHandler
}

// NewRouter mounts every endpoint on a ServeMux. Probes are served bare;
// everything else goes through mw.
func NewRouter(h Handlers, mw middleware.Middleware) http.Handler {
	api := http.NewServeMux()

	api.HandleFunc("POST /auth/register", h.Auth.Register)
	api.HandleFunc("POST /auth/login", h.Auth.Login)

	api.HandleFunc("POST /v1/generatePracticeText", h.Practice.GeneratePracticeText)
	api.HandleFunc("POST /v1/processSelectedWords", h.Practice.ProcessSelectedWords)
	api.HandleFunc("GET /v1/profile", h.Practice.Profile)
	api.HandleFunc("GET /v1/attempts", h.Practice.ListAttempts)
	api.HandleFunc("GET /v1/attempts/current", h.Practice.CurrentAttempt)
	api.HandleFunc("GET /v1/attempts/{id}", h.Practice.GetAttempt)

	api.HandleFunc("POST /hooks/identity-created", h.Hook.IdentityCreated)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /live", h.Health.Live)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.Handle("/", mw(api))

	return mux
}
