package middleware

import (
	"log/slog"
	"net/http"
	"runtime/debug"
)

const internalBody = `{"error":{"status":"INTERNAL","message":"internal error"}}` + "\n"

// Recovery returns middleware that recovers from panics, logs the error
// with a stack trace, and responds with 500 in the callable error envelope.
// It runs outside RequestID, so the id is read back from the response header.
func Recovery(logger *slog.Logger) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					logger.ErrorContext(r.Context(), "panic recovered",
						slog.Any("error", err),
						slog.String("stack", string(debug.Stack())),
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.String("request_id", w.Header().Get(RequestIDHeader)),
					)
					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					_, _ = w.Write([]byte(internalBody))
				}
			}()
			next.ServeHTTP(w, r)
		})
	}
}
