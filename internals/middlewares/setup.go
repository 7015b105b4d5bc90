package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"kostku_backend/internals/middlewares/logger"
)

// SetupMiddlewares memasang rantai middleware dasar secara berurutan.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
