package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kostku_backend/internals/constants"
	cateringController "kostku_backend/internals/features/catering/controller"
	"kostku_backend/internals/helpers/storage"
	authMiddleware "kostku_backend/internals/middlewares/auth"
)

func CateringRoutes(app *fiber.App, db *gorm.DB, st *storage.LocalStorage) {
	ctrl := cateringController.NewCateringController(db, st)
	orderCtrl := cateringController.NewCateringOrderController(db, st)

	// 🌐 Publik: penyedia & menu bisa dilihat siapa saja
	public := app.Group("/api/caterings")
	public.Get("/kost/:kost_id", ctrl.GetCateringsByKost)
	public.Get("/:catering_id/menus", ctrl.GetMenusByCatering)

	// 🧑‍💼 Pengelola: kelola penyedia + menu
	owner := app.Group("/api/u/caterings",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorPengelola("kelola katering"),
			constants.RolePengelola, constants.RoleAdmin),
	)
	owner.Post("/", ctrl.CreateCatering)
	owner.Put("/:id", ctrl.UpdateCatering)
	owner.Delete("/:id", ctrl.DeleteCatering)
	owner.Post("/:catering_id/menus", ctrl.CreateMenu)
	owner.Put("/menus/:id", ctrl.UpdateMenu)
	owner.Delete("/menus/:id", ctrl.DeleteMenu)
	owner.Get("/:catering_id/orders", orderCtrl.GetOrdersByCatering)

	// 🛒 Pesanan
	orders := app.Group("/api/u/catering-orders", authMiddleware.AuthMiddleware(db))
	orders.Post("/",
		authMiddleware.OnlyRoles(constants.RoleErrorPenghuni("pesan katering"), constants.RolePenghuni),
		orderCtrl.PlaceOrder)
	orders.Get("/me", orderCtrl.GetMyOrders)
	orders.Get("/:id", orderCtrl.GetOrderByID)
	orders.Put("/:id/status",
		authMiddleware.OnlyRoles(constants.RoleErrorPengelola("ubah status pesanan"),
			constants.RolePengelola, constants.RoleAdmin),
		orderCtrl.UpdateOrderStatus)
	orders.Put("/:id/cancel",
		authMiddleware.OnlyRoles(constants.RoleErrorPenghuni("batalkan pesanan"), constants.RolePenghuni),
		orderCtrl.CancelOrder)
}
