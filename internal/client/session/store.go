// Package session owns the authentication state of the client: the opaque
// session token and the current user profile. Every mutation is mirrored to
// durable local storage; storage failures are swallowed so the in-memory
// state stays authoritative for the running session.
package session

import (
	"context"
	"encoding/json"
	"strings"
	"sync"

	"github.com/dmitrijs2005/forumcli/internal/client/models"
	"github.com/dmitrijs2005/forumcli/internal/client/repositories/localstate"
	"github.com/dmitrijs2005/forumcli/internal/logging"
)

const (
	tokenKey = "session_token"
	userKey  = "current_user"
)

// FallbackUserName is shown while a token exists but no profile has been
// confirmed by the backend yet.
const FallbackUserName = "Member"

type Store struct {
	mu    sync.Mutex
	token string
	user  *models.UserProfile

	repo localstate.Repository
	log  logging.Logger
}

// NewStore loads persisted state from repo. Corrupt or unreadable values
// are treated as absent. When a token is present without a cached profile,
// a fallback profile is synthesized so the UI can render an authenticated
// shell before the profile is confirmed.
func NewStore(ctx context.Context, repo localstate.Repository, log logging.Logger) *Store {
	s := &Store{repo: repo, log: log}

	if raw, err := repo.Get(ctx, tokenKey); err != nil {
		log.Warn(ctx, "reading persisted token failed", "error", err)
	} else {
		s.token = string(raw)
	}

	if raw, err := repo.Get(ctx, userKey); err != nil {
		log.Warn(ctx, "reading persisted profile failed", "error", err)
	} else if len(raw) > 0 {
		var profile models.UserProfile
		if json.Unmarshal(raw, &profile) == nil {
			s.user = sanitizeProfile(&profile)
		}
	}

	if s.token != "" && s.user == nil {
		s.user = fallbackProfile()
	}

	return s
}

// Token returns the current session token, or "" when logged out.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// SetToken replaces the session token. An empty token logs the session out
// and also clears the persisted profile.
func (s *Store) SetToken(ctx context.Context, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	if token == "" {
		s.user = nil
		if err := s.repo.DeleteMany(ctx, tokenKey, userKey); err != nil {
			s.log.Warn(ctx, "clearing session state failed", "error", err)
		}
		return
	}
	s.persistSet(ctx, tokenKey, []byte(token))
}

// CurrentUser returns a copy of the current profile, or nil when logged out.
func (s *Store) CurrentUser() *models.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	user := *s.user
	return &user
}

// SetCurrentUser replaces the cached profile. The profile is sanitized
// before storing; nil clears it.
func (s *Store) SetCurrentUser(ctx context.Context, profile *models.UserProfile) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = sanitizeProfile(profile)
	if s.user == nil {
		s.persistDelete(ctx, userKey)
		return
	}

	encoded, err := json.Marshal(s.user)
	if err != nil {
		s.log.Warn(ctx, "encoding profile failed", "error", err)
		return
	}
	s.persistSet(ctx, userKey, encoded)
}

// Clear drops the token and profile, both in memory and in storage.
func (s *Store) Clear(ctx context.Context) {
	s.SetToken(ctx, "")
}

// LoggedIn reports whether a session token is present.
func (s *Store) LoggedIn() bool {
	return s.Token() != ""
}

func (s *Store) persistSet(ctx context.Context, key string, value []byte) {
	if err := s.repo.Set(ctx, key, value); err != nil {
		s.log.Warn(ctx, "persisting state failed", "key", key, "error", err)
	}
}

func (s *Store) persistDelete(ctx context.Context, key string) {
	if err := s.repo.Delete(ctx, key); err != nil {
		s.log.Warn(ctx, "clearing state failed", "key", key, "error", err)
	}
}

func sanitizeProfile(profile *models.UserProfile) *models.UserProfile {
	if profile == nil {
		return nil
	}
	name := strings.TrimSpace(profile.Name)
	if name == "" {
		name = FallbackUserName
	}
	return &models.UserProfile{Name: name, Email: profile.Email}
}

func fallbackProfile() *models.UserProfile {
	return &models.UserProfile{Name: FallbackUserName}
}
