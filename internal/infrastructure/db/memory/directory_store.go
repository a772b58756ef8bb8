// Package memory holds the in-process storage backing the portal directory.
// The whole directory lives in one process's memory; the only durable state
// in the system is the session slot, which is a separate store.
package memory

import (
	"context"
	"sync"

	"github.com/apollotyres/project-portal/internal/core/domain"
	"github.com/apollotyres/project-portal/internal/metrics"
)

// DirectoryStore is an insertion-ordered, mutex-guarded implementation of
// ports.DirectoryRepository. All reads hand out clones, so callers can hold
// snapshots across later mutations without aliasing store state.
type DirectoryStore struct {
	mu       sync.RWMutex
	users    []*domain.User
	projects []*domain.Project
}

func NewDirectoryStore() *DirectoryStore {
	return &DirectoryStore{}
}

func cloneUser(u *domain.User) *domain.User {
	clone := *u
	clone.ProjectAccess = append([]string(nil), u.ProjectAccess...)
	return &clone
}

func cloneProject(p *domain.Project) *domain.Project {
	clone := *p
	return &clone
}

func (s *DirectoryStore) InsertUser(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users = append(s.users, cloneUser(user))
	return nil
}

func (s *DirectoryStore) UpdateUser(_ context.Context, user *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == user.ID {
			s.users[i] = cloneUser(user)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (s *DirectoryStore) DeleteUser(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (s *DirectoryStore) FindUser(_ context.Context, id string) (*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (s *DirectoryStore) ListUsers(_ context.Context) ([]*domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.User, len(s.users))
	for i, u := range s.users {
		out[i] = cloneUser(u)
	}
	return out, nil
}

func (s *DirectoryStore) InsertProject(_ context.Context, project *domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.projects = append(s.projects, cloneProject(project))
	return nil
}

func (s *DirectoryStore) UpdateProject(_ context.Context, project *domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.projects {
		if p.ID == project.ID {
			s.projects[i] = cloneProject(project)
			return nil
		}
	}
	return domain.ErrProjectNotFound
}

// DeleteProject removes the project and strips its id from every user's
// grant list. Both steps happen under the same lock: no reader can see the
// project gone while a user still references it, or the reverse.
func (s *DirectoryStore) DeleteProject(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i, p := range s.projects {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return domain.ErrProjectNotFound
	}
	s.projects = append(s.projects[:idx], s.projects[idx+1:]...)

	for _, u := range s.users {
		if !u.HasGrant(id) {
			continue
		}
		kept := u.ProjectAccess[:0]
		for _, pid := range u.ProjectAccess {
			if pid != id {
				kept = append(kept, pid)
			}
		}
		u.ProjectAccess = kept
		metrics.CascadeRemovalsTotal.Inc()
	}
	return nil
}

func (s *DirectoryStore) FindProject(_ context.Context, id string) (*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, p := range s.projects {
		if p.ID == id {
			return cloneProject(p), nil
		}
	}
	return nil, domain.ErrProjectNotFound
}

func (s *DirectoryStore) ListProjects(_ context.Context) ([]*domain.Project, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*domain.Project, len(s.projects))
	for i, p := range s.projects {
		out[i] = cloneProject(p)
	}
	return out, nil
}
