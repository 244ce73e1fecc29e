package rest

import (
	"context"
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/bipbipboopboop/ielts-progressor/internal/domain"
)

// HookSecretHeader carries the shared secret of lifecycle webhooks.
const HookSecretHeader = "X-Hook-Secret"

type lifecycleHandler interface {
	OnIdentityCreated(ctx context.Context, evt domain.IdentityCreated) error
}

// HookHandler receives identity lifecycle events from an external identity provider.
type HookHandler struct {
	lifecycle lifecycleHandler
	secret    []byte
	log       *slog.Logger
}

// NewHookHandler creates a HookHandler. An empty secret disables the hook.
func NewHookHandler(lifecycle lifecycleHandler, secret string, logger *slog.Logger) *HookHandler {
	return &HookHandler{
		lifecycle: lifecycle,
		secret:    []byte(secret),
		log:       logger.With("handler", "hook"),
	}
}

type identityCreatedRequest struct {
	UID         string `json:"uid"`
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
}

// IdentityCreated handles POST /hooks/identity-created.
func (h *HookHandler) IdentityCreated(w http.ResponseWriter, r *http.Request) {
	if len(h.secret) == 0 {
		writeStatus(w, http.StatusNotFound, statusNotFound, "not found")
		return
	}
	got := []byte(r.Header.Get(HookSecretHeader))
	if subtle.ConstantTimeCompare(got, h.secret) != 1 {
		h.log.WarnContext(r.Context(), "hook secret mismatch")
		writeStatus(w, http.StatusUnauthorized, statusUnauthenticated, "invalid hook secret")
		return
	}

	var req identityCreatedRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, h.log, err)
		return
	}

	err := h.lifecycle.OnIdentityCreated(r.Context(), domain.IdentityCreated{
		UID:         req.UID,
		Email:       req.Email,
		DisplayName: req.DisplayName,
	})
	if err != nil {
		writeError(w, r, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
