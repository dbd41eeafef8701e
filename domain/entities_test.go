package domain

import "testing"

func TestIsAdminRole(t *testing.T) {
	tests := []struct {
		role string
		want bool
	}{
		{RoleAdmin, true},
		{RoleSuperAdmin, true},
		{RoleViewerAdmin, true},
		{RoleIndividual, false},
		{RoleLegalEntity, false},
		{"", false},
		{"admin", false},
	}

	for _, tt := range tests {
		if got := IsAdminRole(tt.role); got != tt.want {
			t.Errorf("IsAdminRole(%q) = %v, want %v", tt.role, got, tt.want)
		}
	}
}

func TestValidRole(t *testing.T) {
	for _, role := range []string{RoleIndividual, RoleLegalEntity, RoleAdmin, RoleSuperAdmin, RoleViewerAdmin} {
		if !ValidRole(role) {
			t.Errorf("ValidRole(%q) = false, want true", role)
		}
	}
	for _, role := range []string{"", "individual", "ROOT", "USER"} {
		if ValidRole(role) {
			t.Errorf("ValidRole(%q) = true, want false", role)
		}
	}
}
