package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kostku_backend/internals/constants"
	userController "kostku_backend/internals/features/users/user/controller"
	authMiddleware "kostku_backend/internals/middlewares/auth"
)

func UserRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	// 👤 Profil sendiri
	userGroup := app.Group("/api/u/users", authMiddleware.AuthMiddleware(db))
	userGroup.Get("/me", ctrl.GetMe)
	userGroup.Put("/me", ctrl.UpdateMe)

	// 🛡️ Manajemen user (admin)
	adminGroup := app.Group("/api/a/users",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("manajemen user"), constants.RoleAdmin),
	)
	adminGroup.Get("/", ctrl.GetAllUsers)
	adminGroup.Get("/:id", ctrl.GetUserByID)
	adminGroup.Put("/:id/active", ctrl.SetActive)
	adminGroup.Delete("/:id", ctrl.DeleteUser)
}
