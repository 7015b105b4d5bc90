package route

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"kostku_backend/internals/helpers/storage"
	routeDetails "kostku_backend/internals/route/details"
)

func SetupRoutes(app *fiber.App, db *gorm.DB, st *storage.LocalStorage) {
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db)

	log.Println("[INFO] Setting up UserRoutes...")
	routeDetails.UserRoutes(app, db)

	log.Println("[INFO] Setting up KostRoutes...")
	routeDetails.KostRoutes(app, db, st)

	log.Println("[INFO] Setting up MasterRoutes...")
	routeDetails.MasterRoutes(app, db)

	log.Println("[INFO] Setting up ReservationRoutes...")
	routeDetails.ReservationRoutes(app, db, st)

	log.Println("[INFO] Setting up CateringRoutes...")
	routeDetails.CateringRoutes(app, db, st)

	log.Println("[INFO] Setting up LaundryRoutes...")
	routeDetails.LaundryRoutes(app, db, st)

	log.Println("[INFO] Setting up HistoryRoutes...")
	routeDetails.HistoryRoutes(app, db)

	// Healthcheck sederhana
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"success": true, "message": "OK"})
	})
}
