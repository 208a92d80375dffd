package httpserver

import (
	"net/http"
	"strings"

	"github.com/Ron9508/bookstore-backend/internal/platform/token"
)

// Verifier checks a bearer credential and returns the identity it carries.
type Verifier interface {
	Verify(tokenString string) (token.Identity, error)
}

// RequireAuth rejects requests without a valid "Bearer <token>" Authorization
// header. On success the verified identity is placed in the request context
// for handlers to read via token.IdentityFromContext.
//
// Missing, malformed, invalid and expired credentials all produce the same
// 401 body.
func RequireAuth(verifier Verifier) MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			scheme, rest, found := strings.Cut(r.Header.Get("Authorization"), " ")
			if !found || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(rest) == "" {
				unauthorized(w)
				return
			}

			identity, err := verifier.Verify(strings.TrimSpace(rest))
			if err != nil {
				unauthorized(w)
				return
			}

			next.ServeHTTP(w, r.WithContext(token.WithIdentity(r.Context(), identity)))
		})
	}
}

func unauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	w.Write([]byte(`{"error":"unauthorized"}`))
}
