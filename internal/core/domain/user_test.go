package domain

import "testing"

func TestRoleValid(t *testing.T) {
	for _, r := range []Role{RoleMajorAdmin, RoleSubAdmin, RoleUser} {
		if !r.Valid() {
			t.Errorf("%s must be valid", r)
		}
	}
	if Role("owner").Valid() {
		t.Errorf("unknown role must be invalid")
	}
}

func TestRoleDisplayName(t *testing.T) {
	cases := map[Role]string{
		RoleMajorAdmin: "Major Admin",
		RoleSubAdmin:   "Sub Admin",
		RoleUser:       "User",
		Role("ghost"):  "ghost",
	}
	for r, want := range cases {
		if got := r.DisplayName(); got != want {
			t.Errorf("DisplayName(%s) = %q, want %q", r, got, want)
		}
	}
}

func TestUserHasGrant(t *testing.T) {
	u := &User{ProjectAccess: []string{"p1", "p2"}}
	if !u.HasGrant("p2") {
		t.Fatalf("granted id not found")
	}
	if u.HasGrant("p3") {
		t.Fatalf("ungranted id reported")
	}
}
