package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/etag"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"tokobuku_backend/internals/configs"
	database "tokobuku_backend/internals/databases"
	paymentService "tokobuku_backend/internals/features/finance/payments/service"
	helper "tokobuku_backend/internals/helpers"
	"tokobuku_backend/internals/middlewares"
	"tokobuku_backend/internals/route"
	"tokobuku_backend/internals/scheduler"
)

func main() {
	configs.LoadEnv()

	// 🔌 Database
	database.ConnectDB()
	database.TunePool()
	database.WarmUpQueries()

	// 🔌 Payment gateway
	paymentService.InitMidtrans()

	// 🧹 Sweeper token kadaluarsa
	scheduler.StartTokenCleanupScheduler(database.DB, time.Hour)

	app := fiber.New(fiber.Config{
		AppName:      "tokobuku-backend",
		JSONEncoder:  sonic.Marshal,
		JSONDecoder:  sonic.Unmarshal,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
		BodyLimit:    10 * 1024 * 1024,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return helper.FromFiberError(c, err)
		},
	})

	app.Use(requestid.New())
	app.Use(compress.New(compress.Config{Level: compress.LevelDefault}))
	app.Use(etag.New())
	middlewares.SetupMiddlewares(app)

	// file upload (cover buku) disajikan statis
	app.Static("/uploads", configs.GetEnv("UPLOAD_DIR", "./uploads"))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "time": time.Now().UTC()})
	})

	route.SetupRoutes(app, database.DB)

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	port := configs.GetEnv("PORT", "8080")
	log.Printf("🚀 tokobuku-backend listen di :%s", port)
	if err := app.Listen(":" + port); err != nil {
		log.Fatalf("Server gagal start: %v", err)
	}
}
