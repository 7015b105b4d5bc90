package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kostku_backend/internals/constants"
	kostController "kostku_backend/internals/features/kost/controller"
	"kostku_backend/internals/helpers/storage"
	authMiddleware "kostku_backend/internals/middlewares/auth"
)

func KostRoutes(app *fiber.App, db *gorm.DB, st *storage.LocalStorage) {
	ctrl := kostController.NewKostController(db, st)

	// 🌐 Publik (tamu boleh lihat)
	public := app.Group("/api/kosts")
	public.Get("/", ctrl.GetAllKosts)
	public.Get("/:slug", ctrl.GetKostBySlug)

	// 🏠 Pengelola
	owner := app.Group("/api/u/kosts",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorPengelola("kelola kost"),
			constants.RolePengelola, constants.RoleAdmin),
	)
	owner.Get("/me", ctrl.GetMyKosts)
	owner.Post("/", ctrl.CreateKost)
	owner.Put("/:id", ctrl.UpdateKost)
	owner.Delete("/:id", ctrl.DeleteKost)

	// 🛡️ Admin: approval
	admin := app.Group("/api/a/kosts",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("persetujuan kost"), constants.RoleAdmin),
	)
	admin.Put("/:id/approval", ctrl.SetApproval)
}
