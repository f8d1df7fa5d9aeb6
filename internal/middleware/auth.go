package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gorilla/mux"
	"github.com/mealdb/mealdb-gobackend/internal/auth"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey string

// EmailKey is the context key carrying the authenticated user's email claim.
const EmailKey contextKey = "email"

// GetEmail extracts the authenticated email from the context.
// Returns empty string if not found.
func GetEmail(ctx context.Context) string {
	email, _ := ctx.Value(EmailKey).(string)
	return email
}

// AdminChecker resolves an email to whether that user has the admin role.
type AdminChecker interface {
	IsAdmin(ctx context.Context, email string) (bool, error)
}

// RequireAuth validates the bearer token on the request and stores the
// token's email claim in the request context. Missing or invalid tokens
// answer 401.
func RequireAuth(m *auth.Manager) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				writeMessage(w, http.StatusUnauthorized, "Unauthorized access")
				return
			}

			parts := strings.Split(header, " ")
			if len(parts) != 2 || parts[0] != "Bearer" {
				writeMessage(w, http.StatusUnauthorized, "Unauthorized access")
				return
			}

			claims, err := m.Verify(parts[1])
			if err != nil {
				writeMessage(w, http.StatusUnauthorized, "Unauthorized access")
				return
			}

			email, _ := claims["email"].(string)
			ctx := context.WithValue(r.Context(), EmailKey, email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAdmin looks up the authenticated email in the users collection and
// rejects with 403 unless the role is admin. Must be applied after
// RequireAuth.
func RequireAdmin(users AdminChecker) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			email := GetEmail(r.Context())
			isAdmin, err := users.IsAdmin(r.Context(), email)
			if err != nil {
				writeMessage(w, http.StatusInternalServerError, "Server Error")
				return
			}
			if !isAdmin {
				writeMessage(w, http.StatusForbidden, "Forbidden access")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
