package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentController "tokobuku_backend/internals/features/finance/payments/controller"
)

// PublicPaymentRoutes: webhook gateway, tanpa auth (signature di-verify di service).
func PublicPaymentRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	api.Post("/payments/notification", ctrl.MidtransNotification)
}

// UserPaymentRoutes: pembayaran order milik user login (group /api/u).
func UserPaymentRoutes(protected fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	payments := protected.Group("/payments")
	payments.Post("/", ctrl.Create)
	payments.Get("/order/:orderId", ctrl.GetByOrder)
}

// AdminPaymentRoutes: manajemen payment (group /api/a).
func AdminPaymentRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := paymentController.NewPaymentController(db)

	payments := admin.Group("/payments")
	payments.Get("/", ctrl.List)
	payments.Put("/:id/status", ctrl.UpdateStatus)
	payments.Post("/:id/process", ctrl.Process)
}
