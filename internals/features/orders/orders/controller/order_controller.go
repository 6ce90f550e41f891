package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tokobuku_backend/internals/features/orders/orders/dto"
	"tokobuku_backend/internals/features/orders/orders/service"
	userModel "tokobuku_backend/internals/features/users/user/model"
	helper "tokobuku_backend/internals/helpers"
	authMiddleware "tokobuku_backend/internals/middlewares/auth"
)

type OrderController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db, Validate: validator.New()}
}

func (oc *OrderController) resolveUserID(c *fiber.Ctx) (uuid.UUID, error) {
	authID, err := authMiddleware.GetAuthID(c)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	var u userModel.UserModel
	if err := oc.DB.Select("user_id").First(&u, "user_auth_id = ?", authID).Error; err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Hanya akun user yang bisa membuat order")
	}
	return u.UserID, nil
}

/* ==========================
   🔐 User
========================== */

// POST /api/u/orders
func (oc *OrderController) Create(c *fiber.Ctx) error {
	userID, err := oc.resolveUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateOrderRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := oc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	order, err := service.CreateOrder(oc.DB, userID, &req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Order berhasil dibuat", dto.FromOrderModel(order))
}

// GET /api/u/orders?status=
func (oc *OrderController) ListMine(c *fiber.Ctx) error {
	userID, err := oc.resolveUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	params := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	orders, total, err := service.ListOrders(oc.DB, &userID, c.Query("status"), params)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "OK", dto.FromOrderModels(orders), helper.BuildPagination(total, params))
}

// GET /api/u/orders/:id — order user lain -> 404
func (oc *OrderController) GetMine(c *fiber.Ctx) error {
	userID, err := oc.resolveUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "order_id tidak valid")
	}
	order, err := service.GetOrderForUser(oc.DB, userID, orderID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.FromOrderModel(order))
}

// POST /api/u/orders/:id/cancel
func (oc *OrderController) Cancel(c *fiber.Ctx) error {
	userID, err := oc.resolveUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "order_id tidak valid")
	}
	order, err := service.CancelOrder(oc.DB, userID, orderID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Order dibatalkan", dto.FromOrderModel(order))
}

/* ==========================
   🛡️ Admin
========================== */

// GET /api/a/orders?status=
func (oc *OrderController) ListAll(c *fiber.Ctx) error {
	params := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	orders, total, err := service.ListOrders(oc.DB, nil, c.Query("status"), params)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "OK", dto.FromOrderModels(orders), helper.BuildPagination(total, params))
}

// GET /api/a/orders/:id
func (oc *OrderController) GetByID(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "order_id tidak valid")
	}
	order, err := service.GetOrder(oc.DB, orderID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", dto.FromOrderModel(order))
}

// PUT /api/a/orders/:id/status
func (oc *OrderController) UpdateStatus(c *fiber.Ctx) error {
	orderID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "order_id tidak valid")
	}

	var req dto.UpdateOrderStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := oc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	order, err := service.UpdateOrderStatus(oc.DB, orderID, req.Status)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Status order diperbarui", dto.FromOrderModel(order))
}

// GET /api/a/orders/statistics?user_id=
func (oc *OrderController) Statistics(c *fiber.Ctx) error {
	var userID *uuid.UUID
	if raw := c.Query("user_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, "user_id tidak valid")
		}
		userID = &id
	}
	stats, err := service.Statistics(oc.DB, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", stats)
}
