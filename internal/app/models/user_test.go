package models

import "testing"

func TestParseRole(t *testing.T) {
	role, ok := ParseRole("")
	if !ok || role != RoleUser {
		t.Fatalf("empty role should default to user, got %q ok=%v", role, ok)
	}

	role, ok = ParseRole("sector_coordinator")
	if !ok || role != RoleSectorCoordinator {
		t.Fatalf("expected sector_coordinator, got %q ok=%v", role, ok)
	}

	if _, ok := ParseRole("president"); ok {
		t.Fatalf("unknown role should be rejected")
	}
	// Role matching is case-sensitive
	if _, ok := ParseRole("Admin"); ok {
		t.Fatalf("capitalized role should be rejected")
	}
}

func TestRoleIsPrivileged(t *testing.T) {
	privileged := []Role{RoleAdmin, RoleGuard, RoleVillageCoordinator, RoleCellCoordinator, RoleSectorCoordinator}
	for _, r := range privileged {
		if !r.IsPrivileged() {
			t.Fatalf("expected %q to be privileged", r)
		}
	}

	if RoleUser.IsPrivileged() {
		t.Fatalf("base user role must not be privileged")
	}
	if Role("unknown").IsPrivileged() {
		t.Fatalf("unknown role must not be privileged")
	}
}
