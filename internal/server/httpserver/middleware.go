package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/dmitrijs2005/assignhub/internal/common"
	"github.com/dmitrijs2005/assignhub/internal/logging"
	"github.com/dmitrijs2005/assignhub/internal/server/auth"
	"github.com/go-chi/chi/v5/middleware"
)

type ctxKey string

const identityKey ctxKey = "identity"

const (
	msgUnauthorized = "Unauthorized Access"
	msgForbidden    = "Forbidden Access"
)

// IdentityFromContext returns the identity stored by AuthMiddleware.
func IdentityFromContext(ctx context.Context) (auth.Identity, bool) {
	id, ok := ctx.Value(identityKey).(auth.Identity)
	return id, ok
}

func withIdentity(ctx context.Context, id auth.Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// AuthMiddleware requires a valid token cookie. A missing cookie yields 401,
// a cookie that fails verification yields 403.
func (h *Handler) AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c, err := r.Cookie(common.TokenCookieName)
		if err != nil || c.Value == "" {
			_ = writeMessage(w, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		identity, err := h.tokens.Verify(c.Value)
		if err != nil {
			h.logger.Debug(r.Context(), "token rejected", "error", err)
			_ = writeMessage(w, http.StatusForbidden, msgForbidden)
			return
		}

		next.ServeHTTP(w, r.WithContext(withIdentity(r.Context(), identity)))
	})
}

type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func newLoggingMiddleware(logger logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(sw, r)

			logger.Info(r.Context(), "request completed",
				"request_id", middleware.GetReqID(r.Context()),
				"method", r.Method,
				"path", r.URL.Path,
				"status", sw.status,
				"duration", time.Since(start),
			)
		})
	}
}
