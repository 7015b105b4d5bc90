package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kostku_backend/internals/constants"
	laundryController "kostku_backend/internals/features/laundry/controller"
	"kostku_backend/internals/helpers/storage"
	authMiddleware "kostku_backend/internals/middlewares/auth"
)

func LaundryRoutes(app *fiber.App, db *gorm.DB, st *storage.LocalStorage) {
	ctrl := laundryController.NewLaundryController(db, st)
	orderCtrl := laundryController.NewLaundryOrderController(db, st)

	// 🌐 Publik
	public := app.Group("/api/laundries")
	public.Get("/kost/:kost_id", ctrl.GetLaundriesByKost)
	public.Get("/:laundry_id/prices", ctrl.GetPricesByLaundry)

	// 🧑‍💼 Pengelola
	owner := app.Group("/api/u/laundries",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.OnlyRoles(constants.RoleErrorPengelola("kelola laundry"),
			constants.RolePengelola, constants.RoleAdmin),
	)
	owner.Post("/", ctrl.CreateLaundry)
	owner.Put("/:id", ctrl.UpdateLaundry)
	owner.Delete("/:id", ctrl.DeleteLaundry)
	owner.Post("/:laundry_id/prices", ctrl.CreatePrice)
	owner.Put("/prices/:id", ctrl.UpdatePrice)
	owner.Delete("/prices/:id", ctrl.DeletePrice)
	owner.Get("/:laundry_id/orders", orderCtrl.GetOrdersByLaundry)

	// 🛒 Pesanan
	orders := app.Group("/api/u/laundry-orders", authMiddleware.AuthMiddleware(db))
	orders.Post("/",
		authMiddleware.OnlyRoles(constants.RoleErrorPenghuni("pesan laundry"), constants.RolePenghuni),
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
