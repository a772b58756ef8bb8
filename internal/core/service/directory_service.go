package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/apollotyres/project-portal/internal/core/domain"
	"github.com/apollotyres/project-portal/internal/core/policy"
	"github.com/apollotyres/project-portal/internal/core/ports"
	"github.com/apollotyres/project-portal/internal/metrics"
)

// DirectoryService owns all portal directory mutations. Inputs are validated
// and policy-checked here, before the repository is touched; the repository
// itself stays a plain state container.
//
// Policy placement: role-assignment legality (policy.CanAssignRole) is
// enforced in this mutation path. The presentation layer filters its role
// picker with the same function, but that filtering is a convenience
// duplicate, not the control.
type DirectoryService struct {
	repo      ports.DirectoryRepository
	validator *inputValidator
	logger    zerolog.Logger
}

func NewDirectoryService(repo ports.DirectoryRepository, logger zerolog.Logger) *DirectoryService {
	return &DirectoryService{
		repo:      repo,
		validator: newInputValidator(),
		logger:    logger,
	}
}

// requireAdmin gates every directory mutation: only admins reach the
// management panel, and the same rule holds here for callers that bypass it.
func requireAdmin(actor *domain.User) error {
	if actor == nil || !policy.IsAdmin(actor.Role) {
		return domain.ErrForbidden
	}
	return nil
}

func (s *DirectoryService) emailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return false, err
	}
	for _, u := range users {
		if u.Email == email && u.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

// majorAdminCount reports how many major_admin accounts the directory holds,
// for the last-admin guard on delete and demote.
func (s *DirectoryService) majorAdminCount(ctx context.Context) (int, error) {
	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, u := range users {
		if u.Role == domain.RoleMajorAdmin {
			n++
		}
	}
	return n, nil
}

func (s *DirectoryService) AddUser(ctx context.Context, actor *domain.User, input ports.CreateUserInput) (*domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := s.validator.validate(input); err != nil {
		return nil, err
	}
	if !policy.CanAssignRole(actor.Role, input.Role) {
		return nil, domain.ErrForbidden
	}
	taken, err := s.emailTaken(ctx, input.Email, "")
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, domain.ErrEmailExists
	}

	user := &domain.User{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Email:         input.Email,
		Password:      input.Password,
		Role:          input.Role,
		ProjectAccess: append([]string(nil), input.ProjectAccess...),
		CreatedBy:     actor.ID,
		CreatedAt:     time.Now().UTC(),
	}
	if err := s.repo.InsertUser(ctx, user); err != nil {
		return nil, err
	}

	metrics.DirectoryMutationsTotal.WithLabelValues("user", "add").Inc()
	s.logger.Info().Str("user_id", user.ID).Str("role", string(user.Role)).Str("created_by", actor.ID).Msg("user created")
	return user, nil
}

func (s *DirectoryService) UpdateUser(ctx context.Context, actor *domain.User, id string, input ports.UpdateUserInput) (*domain.User, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := s.validator.validate(input); err != nil {
		return nil, err
	}

	user, err := s.repo.FindUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Role != nil && *input.Role != user.Role {
		if !policy.CanAssignRole(actor.Role, *input.Role) {
			return nil, domain.ErrForbidden
		}
		if user.Role == domain.RoleMajorAdmin {
			n, err := s.majorAdminCount(ctx)
			if err != nil {
				return nil, err
			}
			if n <= 1 {
				return nil, domain.ErrLastMajorAdmin
			}
		}
		user.Role = *input.Role
	}
	if input.Email != nil && *input.Email != user.Email {
		taken, err := s.emailTaken(ctx, *input.Email, user.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, domain.ErrEmailExists
		}
		user.Email = *input.Email
	}
	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Password != nil {
		user.Password = *input.Password
	}
	if input.ProjectAccess != nil {
		user.ProjectAccess = append([]string(nil), (*input.ProjectAccess)...)
	}

	if err := s.repo.UpdateUser(ctx, user); err != nil {
		return nil, err
	}

	metrics.DirectoryMutationsTotal.WithLabelValues("user", "update").Inc()
	s.logger.Info().Str("user_id", user.ID).Msg("user updated")
	return user, nil
}

func (s *DirectoryService) DeleteUser(ctx context.Context, actor *domain.User, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	user, err := s.repo.FindUser(ctx, id)
	if err != nil {
		return err
	}
	if user.Role == domain.RoleMajorAdmin {
		n, err := s.majorAdminCount(ctx)
		if err != nil {
			return err
		}
		if n <= 1 {
			return domain.ErrLastMajorAdmin
		}
	}
	if err := s.repo.DeleteUser(ctx, id); err != nil {
		return err
	}

	metrics.DirectoryMutationsTotal.WithLabelValues("user", "delete").Inc()
	s.logger.Info().Str("user_id", id).Msg("user deleted")
	return nil
}

func (s *DirectoryService) Users(ctx context.Context) ([]*domain.User, error) {
	return s.repo.ListUsers(ctx)
}

func (s *DirectoryService) UserByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.FindUser(ctx, id)
}

func (s *DirectoryService) AddProject(ctx context.Context, actor *domain.User, input ports.CreateProjectInput) (*domain.Project, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := s.validator.validate(input); err != nil {
		return nil, err
	}

	project := &domain.Project{
		ID:          uuid.NewString(),
		Name:        input.Name,
		URL:         input.URL,
		Description: input.Description,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.repo.InsertProject(ctx, project); err != nil {
		return nil, err
	}

	metrics.DirectoryMutationsTotal.WithLabelValues("project", "add").Inc()
	s.logger.Info().Str("project_id", project.ID).Str("name", project.Name).Msg("project created")
	return project, nil
}

func (s *DirectoryService) UpdateProject(ctx context.Context, actor *domain.User, id string, input ports.UpdateProjectInput) (*domain.Project, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if err := s.validator.validate(input); err != nil {
		return nil, err
	}

	project, err := s.repo.FindProject(ctx, id)
	if err != nil {
		return nil, err
	}
	if input.Name != nil {
		project.Name = *input.Name
	}
	if input.URL != nil {
		project.URL = *input.URL
	}
	if input.Description != nil {
		project.Description = *input.Description
	}

	if err := s.repo.UpdateProject(ctx, project); err != nil {
		return nil, err
	}

	metrics.DirectoryMutationsTotal.WithLabelValues("project", "update").Inc()
	s.logger.Info().Str("project_id", project.ID).Msg("project updated")
	return project, nil
}

func (s *DirectoryService) DeleteProject(ctx context.Context, actor *domain.User, id string) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}
	if err := s.repo.DeleteProject(ctx, id); err != nil {
		return err
	}

	metrics.DirectoryMutationsTotal.WithLabelValues("project", "delete").Inc()
	s.logger.Info().Str("project_id", id).Msg("project deleted with grant cascade")
	return nil
}

func (s *DirectoryService) Projects(ctx context.Context) ([]*domain.Project, error) {
	return s.repo.ListProjects(ctx)
}

func (s *DirectoryService) ProjectByID(ctx context.Context, id string) (*domain.Project, error) {
	return s.repo.FindProject(ctx, id)
}
