package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kostku_backend/internals/constants"
	resController "kostku_backend/internals/features/reservations/controller"
	"kostku_backend/internals/helpers/storage"
	authMiddleware "kostku_backend/internals/middlewares/auth"
)

func ReservationRoutes(app *fiber.App, db *gorm.DB, st *storage.LocalStorage) {
	ctrl := resController.NewReservationController(db, st)

	reservations := app.Group("/api/u/reservations", authMiddleware.AuthMiddleware(db))

	// 🙋 Penghuni
	reservations.Post("/",
		authMiddleware.OnlyRoles(constants.RoleErrorPenghuni("buat reservasi"), constants.RolePenghuni),
		ctrl.CreateReservation)
	reservations.Get("/me", ctrl.GetMyReservations)
	reservations.Put("/:id/extend",
		authMiddleware.OnlyRoles(constants.RoleErrorPenghuni("perpanjang reservasi"), constants.RolePenghuni),
		ctrl.ExtendReservation)

	// 🧑‍💼 Pengelola pemilik / admin
	reservations.Put("/:id/status",
		authMiddleware.OnlyRoles(constants.RoleErrorPengelola("validasi reservasi"),
			constants.RolePengelola, constants.RoleAdmin),
		ctrl.UpdateReservationStatus)
	reservations.Get("/kost/:kost_id",
		authMiddleware.OnlyRoles(constants.RoleErrorPengelola("daftar reservasi kost"),
			constants.RolePengelola, constants.RoleAdmin),
		ctrl.GetReservationsByKost)

	reservations.Get("/:id", ctrl.GetReservationByID)
}
