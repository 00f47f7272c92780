package session

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/jonboulle/clockwork"
)

func signedToken(t *testing.T, exp time.Time) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": 1,
		"exp": exp.Unix(),
	}).SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

func TestSetPersistsAndLoadRestores(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	token := signedToken(t, clock.Now().Add(time.Hour))

	first := NewStore(path, clock)
	user := &models.User{ID: 3, FirstName: "Lucia", Role: models.RoleOrganizer}
	if err := first.Set(token, user); err != nil {
		t.Fatalf("Set: %v", err)
	}

	second := NewStore(path, clock)
	if err := second.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !second.Authenticated() {
		t.Fatal("expected an authenticated session after load")
	}
	if second.Token() != token {
		t.Fatal("token did not survive the round trip")
	}
	if u := second.User(); u == nil || u.ID != 3 || u.FirstName != "Lucia" {
		t.Fatalf("unexpected user after load: %+v", second.User())
	}
}

func TestLoadDiscardsExpiredToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	token := signedToken(t, clock.Now().Add(time.Hour))

	store := NewStore(path, clock)
	if err := store.Set(token, &models.User{ID: 3}); err != nil {
		t.Fatalf("Set: %v", err)
	}

	clock.Advance(2 * time.Hour)
	reloaded := NewStore(path, clock)
	if err := reloaded.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if reloaded.Authenticated() {
		t.Fatal("an expired token must not restore a session")
	}
	if reloaded.Token() != "" {
		t.Fatal("expected no token after discarding an expired session")
	}
}

func TestLoadWithMissingFileIsNotAnError(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "absent.json"), clockwork.NewRealClock())
	if err := store.Load(); err != nil {
		t.Fatalf("Load on a missing file: %v", err)
	}
	if store.Authenticated() {
		t.Fatal("expected no session")
	}
}

func TestAuthenticatedExpiresWithTheClock(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	store := NewStore(filepath.Join(t.TempDir(), "session.json"), clock)
	token := signedToken(t, clock.Now().Add(30*time.Minute))

	if err := store.Set(token, &models.User{ID: 3}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !store.Authenticated() {
		t.Fatal("expected a live session")
	}

	clock.Advance(31 * time.Minute)
	if store.Authenticated() {
		t.Fatal("expected the session to expire with the clock")
	}
}

func TestClearRemovesPersistedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	store := NewStore(path, clock)

	if err := store.Set(signedToken(t, clock.Now().Add(time.Hour)), &models.User{ID: 3}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := store.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if store.Authenticated() || store.Token() != "" || store.User() != nil {
		t.Fatal("expected an empty store after Clear")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatal("expected the session file to be removed")
	}

	// Clearing again is a no-op, not an error.
	if err := store.Clear(); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
}

func TestHasRole(t *testing.T) {
	clock := clockwork.NewFakeClockAt(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	store := NewStore(filepath.Join(t.TempDir(), "session.json"), clock)
	if store.HasRole(models.RoleAdmin) {
		t.Fatal("a logged-out store holds no role")
	}

	token := signedToken(t, clock.Now().Add(time.Hour))
	if err := store.Set(token, &models.User{ID: 3, Role: models.RoleOrganizer}); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if !store.HasRole(models.RoleAdmin, models.RoleOrganizer) {
		t.Fatal("expected the organizer role to match")
	}
	if store.HasRole(models.RoleAdmin) {
		t.Fatal("organizer must not pass an admin-only check")
	}
}
