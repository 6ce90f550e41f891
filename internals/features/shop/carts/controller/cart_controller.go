package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tokobuku_backend/internals/features/shop/carts/dto"
	"tokobuku_backend/internals/features/shop/carts/service"
	userModel "tokobuku_backend/internals/features/users/user/model"
	helper "tokobuku_backend/internals/helpers"
	authMiddleware "tokobuku_backend/internals/middlewares/auth"
)

type CartController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewCartController(db *gorm.DB) *CartController {
	return &CartController{DB: db, Validate: validator.New()}
}

func (cc *CartController) resolveUserID(c *fiber.Ctx) (uuid.UUID, error) {
	authID, err := authMiddleware.GetAuthID(c)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	var u userModel.UserModel
	if err := cc.DB.Select("user_id").First(&u, "user_auth_id = ?", authID).Error; err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Hanya akun user yang punya cart")
	}
	return u.UserID, nil
}

func (cc *CartController) respondCart(c *fiber.Ctx, userID uuid.UUID, status int, message string) error {
	cart, err := service.LoadCartWithItems(cc.DB, userID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	resp := helper.SuccessResponse{Success: true, Message: message, Data: dto.BuildCartResponse(cart)}
	return c.Status(status).JSON(resp)
}

// GET /api/u/cart
func (cc *CartController) GetCart(c *fiber.Ctx) error {
	userID, err := cc.resolveUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return cc.respondCart(c, userID, fiber.StatusOK, "OK")
}

// POST /api/u/cart/items
func (cc *CartController) AddItem(c *fiber.Ctx) error {
	userID, err := cc.resolveUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.AddCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := cc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := service.AddItem(cc.DB, userID, req.BookID, req.Quantity, req.Selected()); err != nil {
		return helper.FromFiberError(c, err)
	}
	return cc.respondCart(c, userID, fiber.StatusCreated, "Item ditambahkan ke cart")
}

// PUT /api/u/cart/items/:id
func (cc *CartController) UpdateItem(c *fiber.Ctx) error {
	userID, err := cc.resolveUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "cart_item_id tidak valid")
	}

	var req dto.UpdateCartItemRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := cc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	if err := service.UpdateItem(cc.DB, userID, itemID, req.Quantity, req.IsSelected); err != nil {
		return helper.FromFiberError(c, err)
	}
	return cc.respondCart(c, userID, fiber.StatusOK, "Cart diperbarui")
}

// DELETE /api/u/cart/items/:id
func (cc *CartController) RemoveItem(c *fiber.Ctx) error {
	userID, err := cc.resolveUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	itemID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "cart_item_id tidak valid")
	}
	if err := service.RemoveItem(cc.DB, userID, itemID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return cc.respondCart(c, userID, fiber.StatusOK, "Item dihapus dari cart")
}

// DELETE /api/u/cart
func (cc *CartController) Clear(c *fiber.Ctx) error {
	userID, err := cc.resolveUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	if err := service.Clear(cc.DB, userID); err != nil {
		return helper.FromFiberError(c, err)
	}
	return cc.respondCart(c, userID, fiber.StatusOK, "Cart dikosongkan")
}
