package helper

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// Validator instance dipakai bersama seluruh DTO.
var Validate = validator.New()

// ValidationError memetakan validator.ValidationErrors menjadi response 400
// dengan pesan per-field. Error lain jatuh ke "Invalid input".
func ValidationError(c *fiber.Ctx, err error) error {
	ve, ok := err.(validator.ValidationErrors)
	if !ok {
		return JsonError(c, fiber.StatusBadRequest, "Invalid input")
	}
	return JsonValidationError(c, FormatValidationErrors(ve))
}

// FormatValidationErrors mengubah error validasi menjadi pesan yang jelas.
func FormatValidationErrors(ve validator.ValidationErrors) map[string][]string {
	out := make(map[string][]string, len(ve))
	for _, fieldErr := range ve {
		field := fieldErr.Field()
		var msg string
		switch fieldErr.Tag() {
		case "required":
			msg = field + " wajib diisi."
		case "email":
			msg = "Format email tidak valid."
		case "min":
			msg = field + " harus minimal " + fieldErr.Param() + "."
		case "max":
			msg = field + " harus kurang dari " + fieldErr.Param() + "."
		case "gt":
			msg = field + " harus lebih besar dari " + fieldErr.Param() + "."
		case "gte":
			msg = field + " harus minimal " + fieldErr.Param() + "."
		case "oneof":
			msg = field + " harus salah satu dari " + fieldErr.Param() + "."
		case "uuid":
			msg = field + " harus berupa UUID yang valid."
		case "datetime":
			msg = field + " harus berformat " + fieldErr.Param() + "."
		case "dive":
			msg = field + " berisi entri yang tidak valid."
		default:
			msg = "Format tidak valid."
		}
		out[field] = append(out[field], msg)
	}
	return out
}
