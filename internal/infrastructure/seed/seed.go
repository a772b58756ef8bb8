// Package seed bootstraps an empty directory on first start. The seed is
// configuration, not logic: a YAML file can replace the built-in demo data
// without touching any component.
package seed

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/apollotyres/project-portal/internal/core/domain"
	"github.com/apollotyres/project-portal/internal/core/ports"
)

// Seed is the bootstrap content applied to an empty directory.
type Seed struct {
	Users    []SeedUser    `yaml:"users"`
	Projects []SeedProject `yaml:"projects"`
}

type SeedUser struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
	Role     string `yaml:"role"`
	// ProjectAccess lists project *names* from the same seed; ids are
	// assigned by the directory, so a seed file cannot reference them.
	ProjectAccess []string `yaml:"projectAccess"`
}

type SeedProject struct {
	Name        string `yaml:"name"`
	URL         string `yaml:"url"`
	Description string `yaml:"description"`
}

// Default returns the built-in demo seed: the bootstrap major admin and the
// three Apollo project entries.
func Default() Seed {
	return Seed{
		Users: []SeedUser{
			{
				Name:     "Apollo Admin",
				Email:    "admin@apollotyres.com",
				Password: "apollo123",
				Role:     string(domain.RoleMajorAdmin),
			},
		},
		Projects: []SeedProject{
			{
				Name:        "Apollo Passenger Tyres",
				URL:         "https://apollotyres.com/passenger",
				Description: "Passenger vehicle tyre management system",
			},
			{
				Name:        "Apollo Commercial Tyres",
				URL:         "https://apollotyres.com/commercial",
				Description: "Commercial vehicle tyre management system",
			},
			{
				Name:        "Apollo Racing Division",
				URL:         "https://apollotyres.com/racing",
				Description: "High-performance racing tyre division",
			},
		},
	}
}

// FromFile parses a YAML seed file.
func FromFile(path string) (Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed file: %w", err)
	}
	var s Seed
	if err := yaml.Unmarshal(raw, &s); err != nil {
		return Seed{}, fmt.Errorf("parse seed file: %w", err)
	}
	return s, nil
}

// Apply inserts the seed records into an empty directory. A directory that
// already holds users is left untouched, so restarting a process with a
// shared repository never duplicates the bootstrap accounts.
func Apply(ctx context.Context, repo ports.DirectoryRepository, s Seed) error {
	existing, err := repo.ListUsers(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	now := time.Now().UTC()
	projectIDs := make(map[string]string, len(s.Projects))
	for _, sp := range s.Projects {
		p := &domain.Project{
			ID:          uuid.NewString(),
			Name:        sp.Name,
			URL:         sp.URL,
			Description: sp.Description,
			CreatedAt:   now,
		}
		if err := repo.InsertProject(ctx, p); err != nil {
			return fmt.Errorf("seed project %q: %w", sp.Name, err)
		}
		projectIDs[p.Name] = p.ID
	}
	for _, su := range s.Users {
		var grants []string
		for _, name := range su.ProjectAccess {
			id, ok := projectIDs[name]
			if !ok {
				return fmt.Errorf("seed user %q: unknown project %q", su.Email, name)
			}
			grants = append(grants, id)
		}
		u := &domain.User{
			ID:            uuid.NewString(),
			Name:          su.Name,
			Email:         su.Email,
			Password:      su.Password,
			Role:          domain.Role(su.Role),
			ProjectAccess: grants,
			CreatedAt:     now,
		}
		if err := repo.InsertUser(ctx, u); err != nil {
			return fmt.Errorf("seed user %q: %w", su.Email, err)
		}
	}
	return nil
}
