package session

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/Hosannah10/julidsfashion-admin/internal/shared/apperr"
	"github.com/Hosannah10/julidsfashion-admin/internal/storage"
)

const (
	keyToken = "token"
	keyUser  = "user"
)

// User is the authenticated staff account as returned by the backend.
type User struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsStaff bool   `json:"is_staff"`
}

// Store holds the authenticated identity and bearer token for the running
// client. It persists both through a storage.Store so a restart picks the
// session back up. The API client reads the token fresh on every call via
// Token.
type Store struct {
	mu      sync.RWMutex
	persist storage.Store
	log     *slog.Logger

	user  *User
	token string
}

func New(persist storage.Store, log *slog.Logger) *Store {
	return &Store{persist: persist, log: log}
}

// Restore hydrates the in-memory session from persisted state. A persisted
// non-staff account is purged without surfacing an error: the user simply
// stays logged out.
func (s *Store) Restore() {
	tok, err := s.persist.Load(keyToken)
	if err != nil {
		if err != storage.ErrNotFound {
			s.log.Warn("session restore: token load failed", "error", err)
		}
		return
	}
	raw, err := s.persist.Load(keyUser)
	if err != nil {
		if err != storage.ErrNotFound {
			s.log.Warn("session restore: user load failed", "error", err)
		}
		return
	}

	var u User
	if err := json.Unmarshal(raw, &u); err != nil {
		s.log.Warn("session restore: bad user record, purging", "error", err)
		s.purge()
		return
	}

	if !u.IsStaff {
		// Non-staff accounts never get into the admin client.
		s.purge()
		return
	}

	s.mu.Lock()
	s.user = &u
	s.token = string(tok)
	s.mu.Unlock()
}

// Login establishes the session. It rejects non-staff users without
// persisting anything.
func (s *Store) Login(token string, u User) error {
	if !u.IsStaff {
		return apperr.NotAuthorizedErr("Access denied. Admins only.")
	}

	s.mu.Lock()
	s.user = &u
	s.token = token
	s.mu.Unlock()

	if err := s.persist.Save(keyToken, []byte(token)); err != nil {
		s.log.Warn("session: token persist failed", "error", err)
	}
	raw, err := json.Marshal(u)
	if err == nil {
		err = s.persist.Save(keyUser, raw)
	}
	if err != nil {
		s.log.Warn("session: user persist failed", "error", err)
	}
	return nil
}

// Logout clears the in-memory session and the persisted copy. Idempotent.
func (s *Store) Logout() {
	s.mu.Lock()
	s.user = nil
	s.token = ""
	s.mu.Unlock()
	s.purge()
}

// Current returns the logged-in user, or nil. Callers treat nil as
// "redirect to login".
func (s *Store) Current() *User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

// Token returns the bearer token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Store) purge() {
	if err := s.persist.Delete(keyToken); err != nil {
		s.log.Warn("session: token purge failed", "error", err)
	}
	if err := s.persist.Delete(keyUser); err != nil {
		s.log.Warn("session: user purge failed", "error", err)
	}
}
