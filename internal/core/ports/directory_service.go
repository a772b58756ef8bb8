package ports

import (
	"context"

	"github.com/apollotyres/project-portal/internal/core/domain"
)

// CreateUserInput carries the fields of the add-user form. ID and CreatedAt
// are assigned by the directory, never by the caller; CreatedBy is taken from
// the acting user.
type CreateUserInput struct {
	Name          string      `validate:"required"`
	Email         string      `validate:"required,email"`
	Password      string      `validate:"required"`
	Role          domain.Role `validate:"required,oneof=major_admin sub_admin user"`
	ProjectAccess []string
}

// UpdateUserInput is a partial update: nil fields are left untouched.
type UpdateUserInput struct {
	Name          *string      `validate:"omitempty,min=1"`
	Email         *string      `validate:"omitempty,email"`
	Password      *string      `validate:"omitempty,min=1"`
	Role          *domain.Role `validate:"omitempty,oneof=major_admin sub_admin user"`
	ProjectAccess *[]string
}

type CreateProjectInput struct {
	Name        string `validate:"required"`
	URL         string `validate:"required,url"`
	Description string
}

type UpdateProjectInput struct {
	Name        *string `validate:"omitempty,min=1"`
	URL         *string `validate:"omitempty,url"`
	Description *string
}

// DirectoryService is the mutation and query surface the presentation layer
// talks to. Every mutation takes the acting user so role-assignment legality
// and admin-only operations are enforced here, inside the mutation path, and
// not just in whatever option list a form happens to render.
type DirectoryService interface {
	AddUser(ctx context.Context, actor *domain.User, input CreateUserInput) (*domain.User, error)
	UpdateUser(ctx context.Context, actor *domain.User, id string, input UpdateUserInput) (*domain.User, error)
	DeleteUser(ctx context.Context, actor *domain.User, id string) error
	Users(ctx context.Context) ([]*domain.User, error)
	UserByID(ctx context.Context, id string) (*domain.User, error)

	AddProject(ctx context.Context, actor *domain.User, input CreateProjectInput) (*domain.Project, error)
	UpdateProject(ctx context.Context, actor *domain.User, id string, input UpdateProjectInput) (*domain.Project, error)
	DeleteProject(ctx context.Context, actor *domain.User, id string) error
	Projects(ctx context.Context) ([]*domain.Project, error)
	ProjectByID(ctx context.Context, id string) (*domain.Project, error)
}
