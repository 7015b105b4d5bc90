package helper

import (
	"strings"

	"kostku_backend/internals/constants"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func GetUserUUID(c *fiber.Ctx) uuid.UUID {
	// Default: guest user
	userUUID := constants.DummyUserID

	if userIDRaw := c.Locals("user_id"); userIDRaw != nil {
		if userIDStr, ok := userIDRaw.(string); ok {
			if parsed, err := uuid.Parse(userIDStr); err == nil {
				return parsed
			}
		}
	}

	return userUUID
}

// GetUserRole membaca role dari Locals (di-set AuthMiddleware).
// Request tanpa token dianggap tamu.
func GetUserRole(c *fiber.Ctx) constants.Role {
	if raw := c.Locals("user_role"); raw != nil {
		if s, ok := raw.(string); ok {
			return constants.ParseRole(s)
		}
	}
	return constants.RoleTamu
}

func ParseUUIDParam(c *fiber.Ctx, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(c.Params(name)))
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusBadRequest, "Parameter "+name+" harus UUID yang valid")
	}
	return id, nil
}
