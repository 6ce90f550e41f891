package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	orderController "tokobuku_backend/internals/features/orders/orders/controller"
)

// UserOrderRoutes: order milik user login (group /api/u).
func UserOrderRoutes(protected fiber.Router, db *gorm.DB) {
	ctrl := orderController.NewOrderController(db)

	orders := protected.Group("/orders")
	orders.Post("/", ctrl.Create)
	orders.Get("/", ctrl.ListMine)
	orders.Get("/:id", ctrl.GetMine)
	orders.Post("/:id/cancel", ctrl.Cancel)
}

// AdminOrderRoutes: manajemen order (group /api/a).
func AdminOrderRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := orderController.NewOrderController(db)

	orders := admin.Group("/orders")
	orders.Get("/statistics", ctrl.Statistics) // sebelum /:id supaya tidak ketangkap param
	orders.Get("/", ctrl.ListAll)
	orders.Get("/:id", ctrl.GetByID)
	orders.Put("/:id/status", ctrl.UpdateStatus)
}
