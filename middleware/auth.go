package middleware

import (
	"net/http"

	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/session"
)

// RequireSession sends unauthenticated visitors to the login screen.
func RequireSession(store *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !store.Authenticated() {
				http.Redirect(w, r, "/login", http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole additionally restricts a subtree to the given roles. The
// backend still enforces authorization on every write; this only keeps
// screens out of sight.
func RequireRole(store *session.Store, roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !store.HasRole(roles...) {
				http.Error(w, "Forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
