package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"

	"kostku_backend/internals/configs"
	database "kostku_backend/internals/databases"
	scheduler "kostku_backend/internals/features/users/auth/scheduler"
	"kostku_backend/internals/helpers/storage"
	middlewares "kostku_backend/internals/middlewares"
	routes "kostku_backend/internals/route"
)

func main() {
	configs.LoadEnv()

	app := fiber.New(fiber.Config{
		// 🚀 JSON super cepat
		JSONEncoder:           sonic.Marshal,
		JSONDecoder:           sonic.Unmarshal,
		DisableStartupMessage: true,
		ProxyHeader:           fiber.HeaderXForwardedFor,
		ErrorHandler:          middlewares.ErrorHandler(),
	})

	// ⚙️ middleware dasar + performa
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app)

	// 🔌 DB connect + pool + warm-up
	db, err := database.Connect()
	if err != nil {
		log.Fatalf("❌ Gagal konek database: %v", err)
	}
	database.TunePool(db)
	database.WarmUp(db)

	// 📁 Storage lokal + file statis /uploads
	st := storage.NewFromEnv()
	app.Static("/uploads", st.Root)

	// ⏱ scheduler setelah DB & storage siap
	scheduler.StartBlacklistCleanup(db)
	storage.StartTempReaperCron(st)

	// ✅ Routes
	routes.SetupRoutes(app, db, st)

	// 🔒 timeout koneksi server
	app.Server().ReadTimeout = 15 * time.Second
	app.Server().WriteTimeout = 30 * time.Second
	app.Server().IdleTimeout = 90 * time.Second

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	go func() {
		log.Printf("✅ Listening on :%s", port)
		if err := app.Listen("0.0.0.0:" + port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup pool DB
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_ = app.ShutdownWithContext(ctx)

	database.Close(db)
}
