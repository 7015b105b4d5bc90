package constants

import "testing"

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"admin", RoleAdmin},
		{"ADMIN", RoleAdmin},
		{"  Pengelola ", RolePengelola},
		{"penghuni", RolePenghuni},
		{"tamu", RoleTamu},
		// role tak dikenal jatuh ke tamu, bukan error
		{"superuser", RoleTamu},
		{"", RoleTamu},
	}
	for _, tt := range tests {
		if got := ParseRole(tt.in); got != tt.want {
			t.Errorf("ParseRole(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
