package middleware

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/models"
	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/session"
	"github.com/golang-jwt/jwt/v4"
	"github.com/jonboulle/clockwork"
)

func loggedInStore(t *testing.T, role string) *session.Store {
	t.Helper()
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"), clock)

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"exp": clock.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	if err := store.Set(token, &models.User{ID: 1, Role: role}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	return store
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireSessionRedirectsToLogin(t *testing.T) {
	store := session.NewStore(filepath.Join(t.TempDir(), "session.json"), clockwork.NewRealClock())
	rec := httptest.NewRecorder()
	RequireSession(store)(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tournaments", nil))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("expected redirect, got %d", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/login" {
		t.Fatalf("expected redirect to /login, got %q", loc)
	}
}

func TestRequireSessionPassesAuthenticated(t *testing.T) {
	store := loggedInStore(t, models.RoleDelegate)
	rec := httptest.NewRecorder()
	RequireSession(store)(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/tournaments", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	store := loggedInStore(t, models.RoleOrganizer)

	rec := httptest.NewRecorder()
	RequireRole(store, models.RoleAdmin)(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))
	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	RequireRole(store, models.RoleAdmin, models.RoleOrganizer)(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/users", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
