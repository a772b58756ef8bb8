package ports

import (
	"context"

	"github.com/apollotyres/project-portal/internal/core/domain"
)

// DirectoryRepository is the storage contract for the user and project
// collections. It is a plain state container: it assigns nothing, validates
// nothing, and rejects nothing beyond "record not found" on a mutation whose
// target id is absent. All policy and validation live in the service layer.
//
// Implementations must preserve insertion order in ListUsers/ListProjects and
// must apply DeleteProject's grant cascade atomically with the delete: no
// caller may ever observe a user granting a project that no longer exists.
type DirectoryRepository interface {
	InsertUser(ctx context.Context, user *domain.User) error
	UpdateUser(ctx context.Context, user *domain.User) error
	DeleteUser(ctx context.Context, id string) error
	FindUser(ctx context.Context, id string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]*domain.User, error)

	InsertProject(ctx context.Context, project *domain.Project) error
	UpdateProject(ctx context.Context, project *domain.Project) error
	// DeleteProject removes the project and strips its id from every user's
	// grant list in the same critical section.
	DeleteProject(ctx context.Context, id string) error
	FindProject(ctx context.Context, id string) (*domain.Project, error)
	ListProjects(ctx context.Context) ([]*domain.Project, error)
}
