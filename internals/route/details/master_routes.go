package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kostku_backend/internals/constants"
	masterController "kostku_backend/internals/features/master/controller"
	authMiddleware "kostku_backend/internals/middlewares/auth"
)

func MasterRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := masterController.NewMasterController(db)

	// 🌐 Publik: daftar referensi
	public := app.Group("/api/master")
	public.Get("/facility-types", ctrl.GetFacilityTypes)
	public.Get("/room-types", ctrl.GetRoomTypes)
	public.Get("/kost-rules", ctrl.GetKostRules)
	public.Get("/service-units", ctrl.GetServiceUnits)

	// 🛡️ Admin: CRUD
	admin := app.Group("/api/a/master",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("data master"), constants.RoleAdmin),
	)
	admin.Post("/facility-types", ctrl.CreateFacilityType)
	admin.Put("/facility-types/:id", ctrl.UpdateFacilityType)
	admin.Delete("/facility-types/:id", ctrl.DeleteFacilityType)

	admin.Post("/room-types", ctrl.CreateRoomType)
	admin.Put("/room-types/:id", ctrl.UpdateRoomType)
	admin.Delete("/room-types/:id", ctrl.DeleteRoomType)

	admin.Post("/kost-rules", ctrl.CreateKostRule)
	admin.Put("/kost-rules/:id", ctrl.UpdateKostRule)
	admin.Delete("/kost-rules/:id", ctrl.DeleteKostRule)

	admin.Post("/service-units", ctrl.CreateServiceUnit)
	admin.Put("/service-units/:id", ctrl.UpdateServiceUnit)
	admin.Delete("/service-units/:id", ctrl.DeleteServiceUnit)
}
