package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/apollotyres/project-portal/internal/core/domain"
	"github.com/apollotyres/project-portal/internal/infrastructure/db/memory"
)

func newSessionFixture(t *testing.T) (*SessionService, *memory.DirectoryStore, *memory.SessionStore) {
	t.Helper()
	repo := memory.NewDirectoryStore()
	slot := memory.NewSessionStore()

	admin := &domain.User{
		ID:       "admin-1",
		Name:     "Apollo Admin",
		Email:    "admin@apollotyres.com",
		Password: "apollo123",
		Role:     domain.RoleMajorAdmin,
	}
	if err := repo.InsertUser(context.Background(), admin); err != nil {
		t.Fatalf("insert admin: %v", err)
	}

	svc := NewSessionService(repo, slot, PlainVerifier{}, "", zerolog.Nop())
	return svc, repo, slot
}

func TestSessionService_Login(t *testing.T) {
	svc, _, _ := newSessionFixture(t)
	ctx := context.Background()

	u, err := svc.Login(ctx, "admin@apollotyres.com", "apollo123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.ID != "admin-1" {
		t.Fatalf("logged in as %s, want admin-1", u.ID)
	}
	if !svc.IsAuthenticated() || svc.Current().ID != "admin-1" {
		t.Fatalf("session not established")
	}
}

func TestSessionService_LoginRejected(t *testing.T) {
	svc, _, _ := newSessionFixture(t)
	ctx := context.Background()

	if _, err := svc.Login(ctx, "admin@apollotyres.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: %v, want ErrInvalidCredentials", err)
	}
	if _, err := svc.Login(ctx, "ghost@apollotyres.com", "apollo123"); err != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email: %v, want ErrInvalidCredentials", err)
	}
	if svc.IsAuthenticated() {
		t.Fatalf("rejected login must leave the session anonymous")
	}
}

// A restart is simulated by building a fresh SessionService over the same
// session store: the persisted payload must round-trip to an equivalent user.
func TestSessionService_RestoreRoundTrip(t *testing.T) {
	svc, repo, slot := newSessionFixture(t)
	ctx := context.Background()

	logged, err := svc.Login(ctx, "admin@apollotyres.com", "apollo123")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	restartSvc := NewSessionService(repo, slot, PlainVerifier{}, "", zerolog.Nop())
	restored, err := restartSvc.Restore(ctx)
	if err != nil {
		t.Fatalf("restore: %v", err)
	}
	if restored == nil {
		t.Fatalf("expected restored session")
	}
	if restored.ID != logged.ID || restored.Email != logged.Email ||
		restored.Role != logged.Role || restored.Password != logged.Password ||
		!restored.CreatedAt.Equal(logged.CreatedAt) {
		t.Fatalf("restored user differs: got %+v, want %+v", restored, logged)
	}
	if !restartSvc.IsAuthenticated() {
		t.Fatalf("restore must transition to authenticated")
	}
}

func TestSessionService_RestoreEmpty(t *testing.T) {
	svc, _, _ := newSessionFixture(t)

	u, err := svc.Restore(context.Background())
	if err != nil || u != nil {
		t.Fatalf("restore on empty slot = (%v, %v), want (nil, nil)", u, err)
	}
	if svc.IsAuthenticated() {
		t.Fatalf("empty slot must leave the session anonymous")
	}
}

func TestSessionService_RestoreDiscardsMalformedPayload(t *testing.T) {
	svc, _, slot := newSessionFixture(t)
	ctx := context.Background()

	if err := slot.Set(ctx, DefaultSessionKey, "{not json"); err != nil {
		t.Fatalf("seed slot: %v", err)
	}

	u, err := svc.Restore(ctx)
	if err != nil || u != nil {
		t.Fatalf("malformed payload = (%v, %v), want (nil, nil)", u, err)
	}
	if _, ok, _ := slot.Get(ctx, DefaultSessionKey); ok {
		t.Fatalf("malformed payload must be deleted")
	}
}

func TestSessionService_LogoutIdempotent(t *testing.T) {
	svc, _, slot := newSessionFixture(t)
	ctx := context.Background()

	if _, err := svc.Login(ctx, "admin@apollotyres.com", "apollo123"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("first logout: %v", err)
	}
	if err := svc.Logout(ctx); err != nil {
		t.Fatalf("second logout: %v", err)
	}
	if svc.IsAuthenticated() {
		t.Fatalf("logout must leave the session anonymous")
	}
	if _, ok, _ := slot.Get(ctx, DefaultSessionKey); ok {
		t.Fatalf("logout must clear the persisted slot")
	}
}

// When several accounts share an email, the first match in store order wins.
// The directory service rejects duplicate emails at creation, but the login
// path stays deterministic even for records inserted around it.
func TestSessionService_DuplicateEmailFirstMatchWins(t *testing.T) {
	svc, repo, _ := newSessionFixture(t)
	ctx := context.Background()

	_ = repo.InsertUser(ctx, &domain.User{ID: "dup-1", Email: "dup@apollotyres.com", Password: "pw", Role: domain.RoleUser})
	_ = repo.InsertUser(ctx, &domain.User{ID: "dup-2", Email: "dup@apollotyres.com", Password: "pw", Role: domain.RoleUser})

	u, err := svc.Login(ctx, "dup@apollotyres.com", "pw")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if u.ID != "dup-1" {
		t.Fatalf("logged in as %s, want first-inserted dup-1", u.ID)
	}
}

func TestSessionService_BcryptVerifier(t *testing.T) {
	repo := memory.NewDirectoryStore()
	slot := memory.NewSessionStore()
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte("apollo123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	_ = repo.InsertUser(ctx, &domain.User{
		ID: "admin-1", Email: "admin@apollotyres.com", Password: string(hash), Role: domain.RoleMajorAdmin,
	})

	svc := NewSessionService(repo, slot, BcryptVerifier{}, "", zerolog.Nop())
	if _, err := svc.Login(ctx, "admin@apollotyres.com", "apollo123"); err != nil {
		t.Fatalf("bcrypt login: %v", err)
	}
	if _, err := svc.Login(ctx, "admin@apollotyres.com", "wrong"); err != domain.ErrInvalidCredentials {
		t.Fatalf("bcrypt wrong password: %v, want ErrInvalidCredentials", err)
	}
}
