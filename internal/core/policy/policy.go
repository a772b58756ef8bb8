// Package policy holds the access-control decision functions for the portal.
// Every function is pure: decisions are computed from the arguments alone, so
// the same checks can run at the point of display (filtering the role picker,
// hiding project cards) and again at the point of mutation.
package policy

import "github.com/apollotyres/project-portal/internal/core/domain"

// IsAdmin reports whether role carries administrator privileges.
func IsAdmin(role domain.Role) bool {
	return role == domain.RoleMajorAdmin || role == domain.RoleSubAdmin
}

// CanAssignRole reports whether an actor with actorRole may assign targetRole
// to an account. Any admin may hand out user or sub_admin; only a major_admin
// may mint another major_admin.
func CanAssignRole(actorRole, targetRole domain.Role) bool {
	switch targetRole {
	case domain.RoleUser, domain.RoleSubAdmin:
		return IsAdmin(actorRole)
	case domain.RoleMajorAdmin:
		return actorRole == domain.RoleMajorAdmin
	}
	return false
}

// HasProjectAccess reports whether user may open project. Admins see every
// project unconditionally; everyone else needs an explicit grant. The check
// reads the user's live grant list, not a snapshot taken at login.
func HasProjectAccess(user *domain.User, project *domain.Project) bool {
	if user == nil || project == nil {
		return false
	}
	if IsAdmin(user.Role) {
		return true
	}
	return user.HasGrant(project.ID)
}

// VisibleProjects returns the projects user may open, preserving the order of
// the input slice (the directory's insertion order).
func VisibleProjects(user *domain.User, projects []*domain.Project) []*domain.Project {
	if user == nil {
		return nil
	}
	if IsAdmin(user.Role) {
		out := make([]*domain.Project, len(projects))
		copy(out, projects)
		return out
	}
	var out []*domain.Project
	for _, p := range projects {
		if user.HasGrant(p.ID) {
			out = append(out, p)
		}
	}
	return out
}
