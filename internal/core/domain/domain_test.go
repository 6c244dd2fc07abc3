package domain

import "testing"

func TestParseUserStatus(t *testing.T) {
	cases := []struct {
		raw  string
		want UserStatus
		ok   bool
	}{
		{"active", UserActive, true},
		{"INACTIVE", UserInactive, true},
		{"  Active ", UserActive, true},
		{"archived", "", false},
		{"", "", false},
	}

	for _, tc := range cases {
		got, err := ParseUserStatus(tc.raw)
		if tc.ok && (err != nil || got != tc.want) {
			t.Errorf("ParseUserStatus(%q) = %q, %v; want %q", tc.raw, got, err, tc.want)
		}
		if !tc.ok && err != ErrInvalidUserStatus {
			t.Errorf("ParseUserStatus(%q) err = %v; want ErrInvalidUserStatus", tc.raw, err)
		}
	}
}

func TestParseRole(t *testing.T) {
	if role, err := ParseRole(" Admin "); err != nil || role != RoleAdmin {
		t.Errorf("ParseRole(Admin) = %q, %v", role, err)
	}
	if _, err := ParseRole("superuser"); err != ErrInvalidRole {
		t.Errorf("ParseRole(superuser) err = %v; want ErrInvalidRole", err)
	}
}

func TestParseApplicationStatus(t *testing.T) {
	for _, raw := range []string{"pending", "approved", "rejected", "Approved"} {
		if _, err := ParseApplicationStatus(raw); err != nil {
			t.Errorf("ParseApplicationStatus(%q) err = %v", raw, err)
		}
	}
	if _, err := ParseApplicationStatus("archived"); err != ErrInvalidApplicationStatus {
		t.Errorf("ParseApplicationStatus(archived) err = %v; want ErrInvalidApplicationStatus", err)
	}
}

func TestUserProtected(t *testing.T) {
	admin := User{Username: ProtectedUsername, Role: RoleAdmin}
	if !admin.Protected() {
		t.Error("Admin account must be protected")
	}

	// Protection follows the literal username, not the role.
	otherAdmin := User{Username: "Root", Role: RoleAdmin}
	if otherAdmin.Protected() {
		t.Error("protection must not extend to other admin-role accounts")
	}

	renamed := User{Username: "admin", Role: RoleAdmin}
	if renamed.Protected() {
		t.Error("protection is case-sensitive on the stored username")
	}
}
