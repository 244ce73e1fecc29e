package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/bipbipboopboop/ielts-progressor/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (string, error)
}

// unauthenticatedBody matches the error envelope of the callable endpoints.
const unauthenticatedBody = `{"error":{"status":"UNAUTHENTICATED","message":"invalid access token"}}` + "\n"

// Auth resolves a bearer token into the caller uid stored in the context.
// Requests without a token continue anonymously; the operations themselves
// reject anonymous callers. A token that fails validation is rejected here.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r) // Anonymous
				return
			}
			uid, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(unauthenticatedBody))
				return
			}
			ctx := ctxutil.WithUserID(r.Context(), uid)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(h, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}
