package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	bookModel "tokobuku_backend/internals/features/catalog/books/model"
	wishlistModel "tokobuku_backend/internals/features/shop/wishlists/model"
	userModel "tokobuku_backend/internals/features/users/user/model"
	helper "tokobuku_backend/internals/helpers"
	authMiddleware "tokobuku_backend/internals/middlewares/auth"
)

type WishlistController struct {
	DB *gorm.DB
}

func NewWishlistController(db *gorm.DB) *WishlistController {
	return &WishlistController{DB: db}
}

func (wc *WishlistController) resolveUserID(c *fiber.Ctx) (uuid.UUID, error) {
	authID, err := authMiddleware.GetAuthID(c)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	var u userModel.UserModel
	if err := wc.DB.Select("user_id").First(&u, "user_auth_id = ?", authID).Error; err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Hanya akun user yang punya wishlist")
	}
	return u.UserID, nil
}

// GET /api/u/wishlist
func (wc *WishlistController) List(c *fiber.Ctx) error {
	userID, err := wc.resolveUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	var entries []wishlistModel.WishlistModel
	if err := wc.DB.
		Preload("WishlistBook").
		Where("wishlist_user_id = ?", userID).
		Order("wishlist_created_at DESC").
		Find(&entries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", entries)
}

// POST /api/u/wishlist — {book_id}; duplikat -> 409
func (wc *WishlistController) Add(c *fiber.Ctx) error {
	userID, err := wc.resolveUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req struct {
		BookID uuid.UUID `json:"book_id"`
	}
	if err := c.BodyParser(&req); err != nil || req.BookID == uuid.Nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "book_id wajib diisi")
	}

	var count int64
	if err := wc.DB.Model(&bookModel.BookModel{}).
		Where("book_id = ?", req.BookID).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Buku tidak ditemukan")
	}

	entry := wishlistModel.WishlistModel{
		WishlistUserID: userID,
		WishlistBookID: req.BookID,
	}
	if err := wc.DB.Create(&entry).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Buku sudah ada di wishlist", "Buku tidak valid", "Gagal menambah wishlist"))
	}
	return helper.JsonCreated(c, "Buku ditambahkan ke wishlist", entry)
}

// GET /api/u/wishlist/contains/:bookId — cek membership cepat
func (wc *WishlistController) Contains(c *fiber.Ctx) error {
	userID, err := wc.resolveUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	bookID, err := uuid.Parse(c.Params("bookId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "book_id tidak valid")
	}
	var count int64
	if err := wc.DB.Model(&wishlistModel.WishlistModel{}).
		Where("wishlist_user_id = ? AND wishlist_book_id = ?", userID, bookID).
		Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", fiber.Map{"in_wishlist": count > 0})
}

// DELETE /api/u/wishlist/:bookId — idempotent
func (wc *WishlistController) Remove(c *fiber.Ctx) error {
	userID, err := wc.resolveUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	bookID, err := uuid.Parse(c.Params("bookId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "book_id tidak valid")
	}
	if err := wc.DB.
		Where("wishlist_user_id = ? AND wishlist_book_id = ?", userID, bookID).
		Delete(&wishlistModel.WishlistModel{}).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus wishlist")
	}
	return helper.JsonDeleted(c, "Buku dihapus dari wishlist", nil)
}
