package middleware

import (
	"context"
	"net/http"
	"strings"

	jwtutil "lost-and-found/backend/app/jwt"
	"lost-and-found/backend/app/models"
)

type ctxKey int

const ClaimsKey ctxKey = 1

type Auth struct{ Signer *jwtutil.Signer }

// tokenFromRequest accepts the http-only cookie set at login or a bearer
// header, in that order.
func tokenFromRequest(r *http.Request) string {
	if c, err := r.Cookie("token"); err == nil && c.Value != "" {
		return c.Value
	}
	authz := r.Header.Get("Authorization")
	if strings.HasPrefix(authz, "Bearer ") {
		return strings.TrimPrefix(authz, "Bearer ")
	}
	return ""
}

// RequireAuth rejects with 401 when no token is present and 403 when one is
// present but fails verification. The two cases stay distinct so clients can
// tell "log in" apart from "log in again".
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := tokenFromRequest(r)
		if token == "" {
			writeAuthError(w, http.StatusUnauthorized, "Access denied. Please login.")
			return
		}
		claims, err := a.Signer.Parse(token)
		if err != nil {
			writeAuthError(w, http.StatusForbidden, "Invalid or expired token.")
			return
		}
		ctx := context.WithValue(r.Context(), ClaimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (a *Auth) RequireAdmin(next http.Handler) http.Handler {
	return a.RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		claims := GetClaims(r.Context())
		if claims == nil || claims.Role != models.RoleAdmin {
			writeAuthError(w, http.StatusForbidden, "Access denied. Admin privileges required.")
			return
		}
		next.ServeHTTP(w, r)
	}))
}

func writeAuthError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(`{"error":"` + msg + `"}`))
}
