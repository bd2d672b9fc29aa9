package httpx

import (
	"net/http"
	"strings"

	"bookreview/internal/auth"
)

// AuthMiddleware guards review-mutation routes. It extracts the bearer
// token, verifies it, and passes the authenticated username to the handler
// through the request context. Everything else is a 401.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				JSONError(w, http.StatusUnauthorized, "missing Authorization header")
				return
			}
			scheme, token, ok := strings.Cut(header, " ")
			if !ok || scheme != "Bearer" || token == "" {
				JSONError(w, http.StatusUnauthorized, "invalid Authorization header")
				return
			}

			claims, err := auth.ParseToken(secret, token)
			if err != nil {
				JSONError(w, http.StatusUnauthorized, "invalid or expired token")
				return
			}

			ctx := ContextWithUsername(r.Context(), claims.Username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
