package helper

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kostku_backend/internals/constants"
)

func TestDecisionErr(t *testing.T) {
	if err := Allow().Err(); err != nil {
		t.Fatalf("Allow().Err() = %v, want nil", err)
	}

	err := Deny(fiber.StatusForbidden, "tidak boleh").Err()
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		t.Fatalf("Deny().Err() bukan *fiber.Error: %v", err)
	}
	if fe.Code != fiber.StatusForbidden {
		t.Errorf("code = %d, want 403", fe.Code)
	}

	// Code 0 jatuh ke 403
	err = Deny(0, "x").Err()
	errors.As(err, &fe)
	if fe.Code != fiber.StatusForbidden {
		t.Errorf("default code = %d, want 403", fe.Code)
	}
}

func TestCanManageKost(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	tests := []struct {
		name    string
		role    constants.Role
		actor   uuid.UUID
		allowed bool
	}{
		{"admin selalu boleh", constants.RoleAdmin, other, true},
		{"pengelola pemilik boleh", constants.RolePengelola, owner, true},
		{"pengelola lain ditolak", constants.RolePengelola, other, false},
		{"penghuni ditolak", constants.RolePenghuni, owner, false},
		{"tamu ditolak", constants.RoleTamu, other, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CanManageKost(tt.role, tt.actor, owner)
			if d.Allowed != tt.allowed {
				t.Errorf("Allowed = %v, want %v", d.Allowed, tt.allowed)
			}
		})
	}
}

func TestCanModerateReservation(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()

	if d := CanModerateReservation(constants.RoleAdmin, other, owner); !d.Allowed {
		t.Error("admin harus boleh memvalidasi")
	}
	if d := CanModerateReservation(constants.RolePengelola, owner, owner); !d.Allowed {
		t.Error("pengelola pemilik harus boleh memvalidasi")
	}
	if d := CanModerateReservation(constants.RolePengelola, other, owner); d.Allowed {
		t.Error("pengelola kost lain tidak boleh memvalidasi")
	}
	if d := CanModerateReservation(constants.RolePenghuni, owner, owner); d.Allowed {
		t.Error("penghuni tidak boleh memvalidasi")
	}
}

func TestCanActAsTenant(t *testing.T) {
	tenant := uuid.New()

	if d := CanActAsTenant(tenant, tenant); !d.Allowed {
		t.Error("pemilik record harus boleh")
	}
	if d := CanActAsTenant(uuid.New(), tenant); d.Allowed {
		t.Error("user lain tidak boleh")
	}
	// uuid.Nil (tamu tanpa token) tidak pernah boleh
	if d := CanActAsTenant(uuid.Nil, uuid.Nil); d.Allowed {
		t.Error("uuid.Nil tidak boleh dianggap pemilik")
	}
}

func TestCanManageProvider(t *testing.T) {
	owner := uuid.New()

	if d := CanManageProvider(constants.RoleAdmin, uuid.New(), owner); !d.Allowed {
		t.Error("admin harus boleh")
	}
	if d := CanManageProvider(constants.RolePengelola, owner, owner); !d.Allowed {
		t.Error("pengelola pemilik harus boleh")
	}
	if d := CanManageProvider(constants.RolePenghuni, owner, owner); d.Allowed {
		t.Error("penghuni tidak boleh")
	}
}

func TestCanAdministerMaster(t *testing.T) {
	if d := CanAdministerMaster(constants.RoleAdmin); !d.Allowed {
		t.Error("admin harus boleh")
	}
	for _, role := range []constants.Role{constants.RolePengelola, constants.RolePenghuni, constants.RoleTamu} {
		if d := CanAdministerMaster(role); d.Allowed {
			t.Errorf("role %s tidak boleh kelola master", role)
		}
	}
}
