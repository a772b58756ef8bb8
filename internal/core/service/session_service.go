package service

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"

	"github.com/apollotyres/project-portal/internal/core/domain"
	"github.com/apollotyres/project-portal/internal/core/ports"
	"github.com/apollotyres/project-portal/internal/metrics"
)

// DefaultSessionKey is the well-known slot the current session is persisted
// under, matching the portal's original storage key.
const DefaultSessionKey = "apollo_auth"

// SessionService authenticates against the directory and owns the single
// current-session cell. The session has exactly two states, anonymous and
// authenticated; the persisted payload is the full user record as JSON and
// must round-trip to an equivalent value across a restart.
type SessionService struct {
	repo     ports.DirectoryRepository
	store    ports.SessionStore
	verifier ports.CredentialVerifier
	key      string
	logger   zerolog.Logger

	mu      sync.Mutex
	current *domain.User
}

func NewSessionService(repo ports.DirectoryRepository, store ports.SessionStore, verifier ports.CredentialVerifier, key string, logger zerolog.Logger) *SessionService {
	if key == "" {
		key = DefaultSessionKey
	}
	if verifier == nil {
		verifier = PlainVerifier{}
	}
	return &SessionService{
		repo:     repo,
		store:    store,
		verifier: verifier,
		key:      key,
		logger:   logger,
	}
}

// Login scans the directory in store order and establishes the first user
// whose email matches and whose stored secret verifies. Store order is the
// tie-break when several accounts share an email. Failure leaves any existing
// session untouched.
func (s *SessionService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range users {
		if u.Email != email || !s.verifier.Verify(u.Password, password) {
			continue
		}

		payload, err := json.Marshal(u)
		if err != nil {
			return nil, err
		}
		if err := s.store.Set(ctx, s.key, string(payload)); err != nil {
			return nil, err
		}

		s.mu.Lock()
		s.current = u
		s.mu.Unlock()

		metrics.LoginsTotal.WithLabelValues("success").Inc()
		s.logger.Info().Str("user_id", u.ID).Str("role", string(u.Role)).Msg("login")
		return u, nil
	}

	metrics.LoginsTotal.WithLabelValues("rejected").Inc()
	s.logger.Warn().Str("email", email).Msg("login rejected")
	return nil, domain.ErrInvalidCredentials
}

// Logout clears the session cell and the persisted slot. Idempotent: calling
// it with no active session does nothing and reports no error.
func (s *SessionService) Logout(ctx context.Context) error {
	s.mu.Lock()
	s.current = nil
	s.mu.Unlock()

	if err := s.store.Delete(ctx, s.key); err != nil {
		return err
	}
	s.logger.Info().Msg("logout")
	return nil
}

// Restore rehydrates the session from the persisted slot at process start.
// An empty slot yields (nil, nil); a payload that does not parse as a user is
// deleted and likewise treated as no session, never surfaced as an error.
func (s *SessionService) Restore(ctx context.Context) (*domain.User, error) {
	payload, ok, err := s.store.Get(ctx, s.key)
	if err != nil {
		return nil, err
	}
	if !ok {
		metrics.SessionRestoresTotal.WithLabelValues("empty").Inc()
		return nil, nil
	}

	var user domain.User
	if err := json.Unmarshal([]byte(payload), &user); err != nil || user.ID == "" {
		_ = s.store.Delete(ctx, s.key)
		metrics.SessionRestoresTotal.WithLabelValues("discarded").Inc()
		s.logger.Warn().Msg("discarded malformed session payload")
		return nil, nil
	}

	s.mu.Lock()
	s.current = &user
	s.mu.Unlock()

	metrics.SessionRestoresTotal.WithLabelValues("restored").Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("session restored")
	return &user, nil
}

// Current returns the authenticated user, or nil when anonymous.
func (s *SessionService) Current() *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}

func (s *SessionService) IsAuthenticated() bool {
	return s.Current() != nil
}
