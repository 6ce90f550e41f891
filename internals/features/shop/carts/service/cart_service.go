package service

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	bookModel "tokobuku_backend/internals/features/catalog/books/model"
	cartModel "tokobuku_backend/internals/features/shop/carts/model"
	helper "tokobuku_backend/internals/helpers"
)

// GetOrCreateCart: idempotent, user selalu punya tepat satu cart.
// Register sudah buatin, tapi akun lama / race tetap ke-cover di sini.
func GetOrCreateCart(db *gorm.DB, userID uuid.UUID) (*cartModel.CartModel, error) {
	var cart cartModel.CartModel
	err := db.First(&cart, "cart_user_id = ?", userID).Error
	if err == nil {
		return &cart, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	cart = cartModel.CartModel{CartUserID: userID}
	if err := db.Create(&cart).Error; err != nil {
		if helper.IsUniqueViolation(err) {
			// kalah race dengan request lain, ambil yang sudah ada
			if err := db.First(&cart, "cart_user_id = ?", userID).Error; err != nil {
				return nil, fiber.NewError(fiber.StatusInternalServerError, "DB error")
			}
			return &cart, nil
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat cart")
	}
	return &cart, nil
}

// LoadCartWithItems: cart + item + data buku untuk hitung total.
func LoadCartWithItems(db *gorm.DB, userID uuid.UUID) (*cartModel.CartModel, error) {
	cart, err := GetOrCreateCart(db, userID)
	if err != nil {
		return nil, err
	}
	if err := db.
		Preload("CartItems", func(tx *gorm.DB) *gorm.DB {
			return tx.Order("cart_item_created_at ASC")
		}).
		Preload("CartItems.CartItemBook").
		First(cart, "cart_id = ?", cart.CartID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return cart, nil
}

// AddItem: book sudah ada di cart -> quantity digabung dan is_selected
// ditimpa dengan nilai request. Total quantity dicek terhadap stok saat
// ini (cek ulang lagi nanti waktu checkout).
func AddItem(db *gorm.DB, userID, bookID uuid.UUID, quantity int, isSelected bool) error {
	if quantity < 1 {
		return fiber.NewError(fiber.StatusBadRequest, "quantity minimal 1")
	}

	cart, err := GetOrCreateCart(db, userID)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var book bookModel.BookModel
		if err := tx.Select("book_id, book_stock").
			First(&book, "book_id = ?", bookID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Buku tidak ditemukan")
		}

		var item cartModel.CartItemModel
		err := tx.First(&item, "cart_item_cart_id = ? AND cart_item_book_id = ?", cart.CartID, bookID).Error
		switch {
		case err == nil:
			newQty := item.CartItemQuantity + quantity
			if newQty > book.BookStock {
				return fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("Stok tidak cukup: tersedia %d, diminta %d", book.BookStock, newQty))
			}
			// merge: quantity digabung, is_selected ikut request terakhir
			return tx.Model(&item).Updates(map[string]interface{}{
				"cart_item_quantity":    newQty,
				"cart_item_is_selected": isSelected,
			}).Error
		case errors.Is(err, gorm.ErrRecordNotFound):
			if quantity > book.BookStock {
				return fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("Stok tidak cukup: tersedia %d, diminta %d", book.BookStock, quantity))
			}
			item = cartModel.CartItemModel{
				CartItemCartID:     cart.CartID,
				CartItemBookID:     bookID,
				CartItemQuantity:   quantity,
				CartItemIsSelected: isSelected,
			}
			if err := tx.Create(&item).Error; err != nil {
				return helper.TranslateDBError(err, "Item sudah ada di cart", "Buku tidak valid", "Gagal menambah item")
			}
			return nil
		default:
			return fiber.NewError(fiber.StatusInternalServerError, "DB error")
		}
	})
}

// UpdateItem: quantity 0 atau negatif = hapus. is_selected boleh diubah terpisah.
func UpdateItem(db *gorm.DB, userID, itemID uuid.UUID, quantity *int, isSelected *bool) error {
	cart, err := GetOrCreateCart(db, userID)
	if err != nil {
		return err
	}

	return db.Transaction(func(tx *gorm.DB) error {
		var item cartModel.CartItemModel
		if err := tx.First(&item, "cart_item_id = ? AND cart_item_cart_id = ?", itemID, cart.CartID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Item tidak ditemukan di cart")
		}

		if quantity != nil && *quantity <= 0 {
			return tx.Delete(&item).Error
		}

		updates := map[string]interface{}{}
		if quantity != nil {
			var book bookModel.BookModel
			if err := tx.Select("book_stock").
				First(&book, "book_id = ?", item.CartItemBookID).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Buku tidak ditemukan")
			}
			if *quantity > book.BookStock {
				return fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("Stok tidak cukup: tersedia %d, diminta %d", book.BookStock, *quantity))
			}
			updates["cart_item_quantity"] = *quantity
		}
		if isSelected != nil {
			updates["cart_item_is_selected"] = *isSelected
		}
		if len(updates) == 0 {
			return nil
		}
		return tx.Model(&item).Updates(updates).Error
	})
}

// RemoveItem idempotent: item sudah hilang tetap sukses.
func RemoveItem(db *gorm.DB, userID, itemID uuid.UUID) error {
	cart, err := GetOrCreateCart(db, userID)
	if err != nil {
		return err
	}
	return db.Where("cart_item_id = ? AND cart_item_cart_id = ?", itemID, cart.CartID).
		Delete(&cartModel.CartItemModel{}).Error
}

// Clear kosongkan seluruh cart. Idempotent.
func Clear(db *gorm.DB, userID uuid.UUID) error {
	cart, err := GetOrCreateCart(db, userID)
	if err != nil {
		return err
	}
	return db.Where("cart_item_cart_id = ?", cart.CartID).
		Delete(&cartModel.CartItemModel{}).Error
}
