package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kostku_backend/internals/constants"
	historyController "kostku_backend/internals/features/history/controller"
	authMiddleware "kostku_backend/internals/middlewares/auth"
)

func HistoryRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := historyController.NewHistoryController(db)

	history := app.Group("/api/u/history", authMiddleware.AuthMiddleware(db))

	history.Get("/stays",
		authMiddleware.OnlyRoles(constants.RoleErrorPenghuni("riwayat menginap"), constants.RolePenghuni),
		ctrl.GetMyStayHistory)
	history.Get("/income",
		authMiddleware.OnlyRoles(constants.RoleErrorPengelola("rekap pendapatan"),
			constants.RolePengelola, constants.RoleAdmin),
		ctrl.GetIncomeRecap)
}
