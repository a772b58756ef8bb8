// Package app assembles the portal core for presentation collaborators:
// configuration, logging, the directory store, the session backend, and the
// bootstrap seed come together here, so a UI embeds the core with one call.
package app

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/apollotyres/project-portal/internal/core/domain"
	"github.com/apollotyres/project-portal/internal/core/ports"
	"github.com/apollotyres/project-portal/internal/core/service"
	"github.com/apollotyres/project-portal/internal/infrastructure/config"
	"github.com/apollotyres/project-portal/internal/infrastructure/db/memory"
	redisdb "github.com/apollotyres/project-portal/internal/infrastructure/db/redis"
	"github.com/apollotyres/project-portal/internal/infrastructure/seed"
)

// App is the assembled portal core. Directory is the single source of truth;
// Session and the policy package are stateless over it.
type App struct {
	Directory ports.DirectoryService
	Session   ports.SessionService

	// Restored is the user rehydrated from the persisted session slot at
	// startup, or nil when the process starts anonymous.
	Restored *domain.User
}

// New wires the core from cfg: picks the session backend, seeds an empty
// directory, and restores any persisted session.
func New(ctx context.Context, cfg *config.Config, logger zerolog.Logger) (*App, error) {
	store, err := sessionStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	repo := memory.NewDirectoryStore()

	bootstrap := seed.Default()
	if cfg.SeedFile != "" {
		bootstrap, err = seed.FromFile(cfg.SeedFile)
		if err != nil {
			return nil, err
		}
	}
	if err := seed.Apply(ctx, repo, bootstrap); err != nil {
		return nil, fmt.Errorf("apply seed: %w", err)
	}

	directory := service.NewDirectoryService(repo, logger)
	session := service.NewSessionService(repo, store, service.PlainVerifier{}, cfg.SessionKey, logger)

	restored, err := session.Restore(ctx)
	if err != nil {
		return nil, err
	}

	return &App{
		Directory: directory,
		Session:   session,
		Restored:  restored,
	}, nil
}

func sessionStore(ctx context.Context, cfg *config.Config) (ports.SessionStore, error) {
	switch cfg.SessionBackend {
	case "redis":
		client, err := redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			return nil, err
		}
		return redisdb.NewSessionStore(client), nil
	case "", "memory":
		return memory.NewSessionStore(), nil
	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}
}
