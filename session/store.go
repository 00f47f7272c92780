// Package session holds the client-side session: the bearer token and the
// authenticated user record, persisted across runs.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/CarlosLlanosRodriguez/gestion-torneos-app/models"
	"github.com/golang-jwt/jwt/v4"
	"github.com/jonboulle/clockwork"
)

// Session is the persisted token + user pair.
type Session struct {
	Token string       `json:"token"`
	User  *models.User `json:"user"`
}

// Store is the process-wide session holder. All mutation goes through Set and
// Clear; resource clients read the token and clear the store when they
// observe a 401.
type Store struct {
	path  string
	clock clockwork.Clock

	mu  sync.RWMutex
	cur *Session
}

func NewStore(path string, clock clockwork.Clock) *Store {
	return &Store{path: path, clock: clock}
}

// Load initializes the store from the persisted file. A missing file is not
// an error; a session whose token has expired is discarded.
func (s *Store) Load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("read session file: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return fmt.Errorf("decode session file: %w", err)
	}
	if sess.Token == "" || s.tokenExpired(sess.Token) {
		return nil
	}

	s.mu.Lock()
	s.cur = &sess
	s.mu.Unlock()
	return nil
}

// Set replaces the current session and persists it.
func (s *Store) Set(token string, user *models.User) error {
	sess := &Session{Token: token, User: user}

	data, err := json.MarshalIndent(sess, "", "\t")
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.mu.Lock()
	s.cur = sess
	s.mu.Unlock()
	return nil
}

// Clear drops the current session and removes the persisted file. Called on
// logout and on any 401 observed by a resource client.
func (s *Store) Clear() error {
	s.mu.Lock()
	s.cur = nil
	s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("remove session file: %w", err)
	}
	return nil
}

// Token returns the current bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return ""
	}
	return s.cur.Token
}

// User returns the current user record, or nil when logged out.
func (s *Store) User() *models.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.cur == nil {
		return nil
	}
	return s.cur.User
}

// Authenticated reports whether a non-expired session is present.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	cur := s.cur
	s.mu.RUnlock()
	return cur != nil && cur.Token != "" && !s.tokenExpired(cur.Token)
}

// HasRole reports whether the current user holds one of the given roles.
func (s *Store) HasRole(roles ...string) bool {
	u := s.User()
	return u != nil && u.HasRole(roles...)
}

// tokenExpired decodes the token without verifying the signature (the client
// never holds the signing key) and checks the exp claim against the clock.
// Tokens without a readable exp claim are treated as non-expiring; the
// backend rejects them authoritatively either way.
func (s *Store) tokenExpired(raw string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return false
	}
	return !s.clock.Now().Before(time.Unix(int64(exp), 0))
}
