package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"tokobuku_backend/internals/middlewares/logger"
)

// SetupMiddlewares pasang middleware dasar untuk semua route
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
