package domain

import "time"

// Role is the privilege level of a portal account. Privilege is totally
// ordered: major_admin > sub_admin > user.
type Role string

const (
	RoleMajorAdmin Role = "major_admin"
	RoleSubAdmin   Role = "sub_admin"
	RoleUser       Role = "user"
)

// Valid reports whether r is one of the three known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleMajorAdmin, RoleSubAdmin, RoleUser:
		return true
	}
	return false
}

// DisplayName returns the human-readable label shown in the portal header
// and the user management panel.
func (r Role) DisplayName() string {
	switch r {
	case RoleMajorAdmin:
		return "Major Admin"
	case RoleSubAdmin:
		return "Sub Admin"
	case RoleUser:
		return "User"
	default:
		return string(r)
	}
}

// User is a portal account. Password is the stored secret compared verbatim
// at login; the directory keeps it in the clear, matching the portal's
// demo-grade credential contract (see ports.CredentialVerifier for the seam
// where a hashed variant plugs in).
type User struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	Password      string    `json:"password"`
	Role          Role      `json:"role"`
	ProjectAccess []string  `json:"projectAccess"`
	CreatedBy     string    `json:"createdBy,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
}

// HasGrant reports whether projectID appears in the user's explicit grant
// list. Admin roles bypass grants entirely; see the policy package.
func (u *User) HasGrant(projectID string) bool {
	for _, id := range u.ProjectAccess {
		if id == projectID {
			return true
		}
	}
	return false
}
