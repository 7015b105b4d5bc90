package middlewares

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"kostku_backend/internals/configs"
	helper "kostku_backend/internals/helpers"
)

// ErrorHandler adalah satu-satunya penerjemah error → HTTP response.
// Service/controller cukup lempar *fiber.Error; selain itu
// (error validator, error gorm/constraint, panic yang sudah di-recover)
// diterjemahkan di sini.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		var fe *fiber.Error
		if errors.As(err, &fe) {
			return helper.JsonError(c, fe.Code, fe.Message)
		}

		if ve, ok := err.(validator.ValidationErrors); ok {
			return helper.JsonValidationError(c, helper.FormatValidationErrors(ve))
		}

		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Data tidak ditemukan")
		}

		// Pelanggaran constraint dari Postgres (unique dsb.) → 409
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case "23505":
				return helper.JsonError(c, fiber.StatusConflict, "Data sudah ada (duplikat)")
			case "23503":
				return helper.JsonError(c, fiber.StatusBadRequest, "Referensi data tidak valid")
			}
		}

		log.Printf("[ERROR] %s %s ip=%s err=%v", c.Method(), c.Path(), c.IP(), err)
		if configs.IsProduction() {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Terjadi kesalahan pada server")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
}
