package ports

import (
	"context"

	"github.com/apollotyres/project-portal/internal/core/domain"
)

// SessionStore is the single-slot persistent key/value interface the session
// manager writes through. Get returns ("", false, nil) when the key is
// absent; Delete on an absent key is not an error.
type SessionStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// CredentialVerifier decides whether a presented password matches a stored
// secret. The portal's stock implementation is plain string equality against
// the cleartext stored password; a hardened deployment swaps in the bcrypt
// variant without touching the session manager.
type CredentialVerifier interface {
	Verify(stored, presented string) bool
}

// SessionService authenticates against the directory and owns the one
// current-session cell, persisted across restarts through a SessionStore.
type SessionService interface {
	Login(ctx context.Context, email, password string) (*domain.User, error)
	Logout(ctx context.Context) error
	Restore(ctx context.Context) (*domain.User, error)
	Current() *domain.User
	IsAuthenticated() bool
}
