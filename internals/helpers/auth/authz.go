package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"kostku_backend/internals/constants"
)

// Decision adalah hasil cek kapabilitas yang terstruktur.
// Controller tinggal memanggil .Err() — tidak ada branch boolean
// role tersebar di tiap endpoint.
type Decision struct {
	Allowed bool
	Code    int    // status HTTP saat ditolak
	Reason  string // pesan untuk client
}

func Allow() Decision { return Decision{Allowed: true} }

func Deny(code int, reason string) Decision {
	return Decision{Allowed: false, Code: code, Reason: reason}
}

// Err mengubah Decision menjadi *fiber.Error (nil bila diizinkan).
func (d Decision) Err() error {
	if d.Allowed {
		return nil
	}
	code := d.Code
	if code == 0 {
		code = fiber.StatusForbidden
	}
	return fiber.NewError(code, d.Reason)
}

/* ===============================
   Kapabilitas per mutasi
=================================*/

// CanManageKost: mutasi kost hanya oleh admin atau pengelola pemiliknya.
func CanManageKost(role constants.Role, actorID, ownerID uuid.UUID) Decision {
	if role == constants.RoleAdmin {
		return Allow()
	}
	if role == constants.RolePengelola && actorID == ownerID {
		return Allow()
	}
	return Deny(fiber.StatusForbidden, "Anda bukan pengelola kost ini")
}

// CanModerateReservation: approve/reject reservasi oleh admin atau
// pengelola yang memiliki kost tempat reservasi itu berada.
func CanModerateReservation(role constants.Role, actorID, kostOwnerID uuid.UUID) Decision {
	if role == constants.RoleAdmin {
		return Allow()
	}
	if role == constants.RolePengelola && actorID == kostOwnerID {
		return Allow()
	}
	return Deny(fiber.StatusForbidden, "Anda tidak berhak memvalidasi reservasi kost ini")
}

// CanActAsTenant: mutasi milik penghuni (extend, cancel order)
// hanya oleh penghuni pemilik record-nya.
func CanActAsTenant(actorID, tenantID uuid.UUID) Decision {
	if actorID != uuid.Nil && actorID == tenantID {
		return Allow()
	}
	return Deny(fiber.StatusForbidden, "Data ini bukan milik Anda")
}

// CanManageProvider: mutasi provider katering/laundry (termasuk update
// status order masuk) oleh admin atau pengelola kost tempat provider itu.
func CanManageProvider(role constants.Role, actorID, kostOwnerID uuid.UUID) Decision {
	if role == constants.RoleAdmin {
		return Allow()
	}
	if role == constants.RolePengelola && actorID == kostOwnerID {
		return Allow()
	}
	return Deny(fiber.StatusForbidden, "Anda bukan pengelola penyedia layanan ini")
}

// CanAdministerMaster: data master hanya dimutasi admin.
func CanAdministerMaster(role constants.Role) Decision {
	if role == constants.RoleAdmin {
		return Allow()
	}
	return Deny(fiber.StatusForbidden, constants.RoleErrorAdmin("data master"))
}
