package constants

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Role adalah enum tertutup untuk seluruh pengecekan akses.
// Jangan bandingkan string bebas di controller — pakai konstanta ini.
type Role string

const (
	RoleAdmin     Role = "admin"
	RolePengelola Role = "pengelola" // pemilik/pengelola kost
	RolePenghuni  Role = "penghuni"  // penyewa kamar
	RoleTamu      Role = "tamu"      // belum login / hanya lihat
)

// DummyUserID dipakai helper GetUserUUID saat request tanpa token (tamu).
var DummyUserID = uuid.Nil

// ParseRole menormalkan string role dari token/DB ke enum.
// String tak dikenal dianggap tamu.
func ParseRole(s string) Role {
	switch r := Role(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleAdmin, RolePengelola, RolePenghuni:
		return r
	default:
		return RoleTamu
	}
}

func (r Role) String() string { return string(r) }

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []Role{
		RoleAdmin,
		RolePengelola,
		RolePenghuni,
		RoleTamu,
	}

	RegisteredRoles = []Role{
		RoleAdmin,
		RolePengelola,
		RolePenghuni,
	}

	PengelolaAndAbove = []Role{
		RolePengelola,
		RoleAdmin,
	}

	AdminOnly = []Role{
		RoleAdmin,
	}

	PenghuniOnly = []Role{
		RolePenghuni,
	}
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess    = "Hanya admin yang boleh mengakses fitur %s."
	ErrOnlyPengelolaCanAccess = "Hanya pengelola atau admin yang boleh mengakses fitur %s."
	ErrOnlyPenghuniCanAccess  = "Hanya penghuni yang boleh mengakses fitur %s."
)

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorPengelola(feature string) string {
	return fmt.Sprintf(ErrOnlyPengelolaCanAccess, feature)
}

func RoleErrorPenghuni(feature string) string {
	return fmt.Sprintf(ErrOnlyPenghuniCanAccess, feature)
}
