package api

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"booking-system/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// RequireAuth guards a route with bearer-token verification. The verified
// claims are placed on the request context for the wrapped handler.
func (a *API) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := r.Header.Get("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			a.JSON(w, http.StatusUnauthorized, map[string]any{"error": "missing bearer token"})
			return
		}

		claims, err := auth.VerifyToken(a.secret, strings.TrimPrefix(h, "Bearer "))
		if err != nil {
			a.JSON(w, http.StatusUnauthorized, map[string]any{"error": "invalid token"})
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromContext returns the claims stored by RequireAuth.
func ClaimsFromContext(ctx context.Context) (auth.Claims, bool) {
	c, ok := ctx.Value(claimsKey).(auth.Claims)
	return c, ok
}

// RequestID tags every response with an X-Request-ID header, honoring one
// supplied by the client.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set("X-Request-ID", id)
		next.ServeHTTP(w, r)
	})
}
