package middleware

import (
	"context"
	"net/http"
	"strings"

	"leadhub-backend/internal/auth"
	"leadhub-backend/internal/transport"
)

type adminEmailKey struct{}

// AdminAuth guards admin routes. It accepts a bearer token in the
// Authorization header (the admin console stores the token client-side) or
// the HttpOnly access cookie set at OTP verification.
func AdminAuth(manager *auth.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if manager == nil {
				transport.WriteError(w, http.StatusServiceUnavailable, "admin auth not configured", nil)
				return
			}

			token := bearerToken(r)
			if token == "" {
				if cookie, err := r.Cookie(auth.AccessCookieName); err == nil {
					token = cookie.Value
				}
			}

			if token != "" {
				claims, err := manager.Parse(token)
				if err == nil && claims.Role == "admin" {
					ctx := context.WithValue(r.Context(), adminEmailKey{}, claims.Subject)
					next.ServeHTTP(w, r.WithContext(ctx))
					return
				}
			}

			transport.WriteError(w, http.StatusUnauthorized, "unauthorized", nil)
		})
	}
}

func AdminEmailFromContext(ctx context.Context) string {
	if v := ctx.Value(adminEmailKey{}); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

func bearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
