package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	bookModel "tokobuku_backend/internals/features/catalog/books/model"
	"tokobuku_backend/internals/features/orders/orders/dto"
	orderModel "tokobuku_backend/internals/features/orders/orders/model"
	cartModel "tokobuku_backend/internals/features/shop/carts/model"
	addressModel "tokobuku_backend/internals/features/users/address/model"
	helper "tokobuku_backend/internals/helpers"
)

/* ==========================
   Create
========================== */

// CreateOrder: seluruh pembuatan order jalan dalam SATU transaksi:
// snapshot alamat, snapshot harga+judul per buku, kurangi stok, naikkan
// sold_count, bersihkan item cart yang ikut dipesan. Gagal satu -> rollback semua.
func CreateOrder(db *gorm.DB, userID uuid.UUID, req *dto.CreateOrderRequest) (*orderModel.OrderModel, error) {
	merged := MergeOrderItems(req.Items)

	var order orderModel.OrderModel
	err := db.Transaction(func(tx *gorm.DB) error {
		// alamat milik user lain -> 404, bukan 403
		var addr addressModel.AddressModel
		if err := tx.First(&addr, "address_id = ? AND address_user_id = ?", req.AddressID, userID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Alamat tidak ditemukan")
		}

		// row lock supaya dua order bersamaan tidak sama-sama lolos cek stok
		bookIDs := make([]uuid.UUID, 0, len(merged))
		for _, it := range merged {
			bookIDs = append(bookIDs, it.BookID)
		}
		var books []bookModel.BookModel
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("book_id IN ?", bookIDs).
			Find(&books).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "DB error")
		}

		snapshots := make(map[uuid.UUID]BookSnapshot, len(books))
		for i := range books {
			b := &books[i]
			snapshots[b.BookID] = BookSnapshot{
				BookID:   b.BookID,
				Title:    b.BookTitle,
				PriceIDR: b.BookPriceIDR,
				Stock:    b.BookStock,
			}
		}

		lines, total, err := BuildOrderLines(merged, snapshots)
		if err != nil {
			return err
		}

		order = orderModel.OrderModel{
			OrderUserID:          userID,
			OrderStatus:          orderModel.OrderStatusPending,
			OrderTotalAmountIDR:  total,
			OrderAddressSnapshot: addr.FormatSnapshot(),
			OrderPhoneSnapshot:   addr.AddressPhone,
		}
		if err := tx.Create(&order).Error; err != nil {
			return helper.TranslateDBError(err, "Order duplikat", "Referensi tidak valid", "Gagal membuat order")
		}

		for i := range lines {
			lines[i].OrderItemOrderID = order.OrderID
			if err := tx.Create(&lines[i]).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal menyimpan item order")
			}
			// stok turun, sold_count naik; guard stok di WHERE menjaga race
			res := tx.Model(&bookModel.BookModel{}).
				Where("book_id = ? AND book_stock >= ?", lines[i].OrderItemBookID, lines[i].OrderItemQuantity).
				Updates(map[string]interface{}{
					"book_stock":      gorm.Expr("book_stock - ?", lines[i].OrderItemQuantity),
					"book_sold_count": gorm.Expr("book_sold_count + ?", lines[i].OrderItemQuantity),
				})
			if res.Error != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal update stok")
			}
			if res.RowsAffected == 0 {
				return fiber.NewError(fiber.StatusBadRequest,
					"Stok \""+lines[i].OrderItemBookTitleSnapshot+"\" tidak cukup")
			}
		}
		order.OrderItems = lines

		// item cart yang ikut dipesan dibersihkan
		var cart cartModel.CartModel
		if err := tx.First(&cart, "cart_user_id = ?", userID).Error; err == nil {
			if err := tx.Where("cart_item_cart_id = ? AND cart_item_book_id IN ?", cart.CartID, bookIDs).
				Delete(&cartModel.CartItemModel{}).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Gagal membersihkan cart")
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

/* ==========================
   Read
========================== */

func GetOrderForUser(db *gorm.DB, userID, orderID uuid.UUID) (*orderModel.OrderModel, error) {
	var order orderModel.OrderModel
	if err := db.Preload("OrderItems").
		First(&order, "order_id = ? AND order_user_id = ?", orderID, userID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Order tidak ditemukan")
	}
	return &order, nil
}

func GetOrder(db *gorm.DB, orderID uuid.UUID) (*orderModel.OrderModel, error) {
	var order orderModel.OrderModel
	if err := db.Preload("OrderItems").
		First(&order, "order_id = ?", orderID).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Order tidak ditemukan")
	}
	return &order, nil
}

var orderSortColumns = map[string]string{
	"created_at": "order_created_at",
	"total":      "order_total_amount_idr",
	"status":     "order_status",
}

// ListOrders: userID nil = semua order (admin). Filter status opsional.
func ListOrders(db *gorm.DB, userID *uuid.UUID, status string, params helper.Params) ([]orderModel.OrderModel, int64, error) {
	q := db.Model(&orderModel.OrderModel{})
	if userID != nil {
		q = q.Where("order_user_id = ?", *userID)
	}
	if status != "" {
		if !orderModel.IsValidOrderStatus(status) {
			return nil, 0, fiber.NewError(fiber.StatusBadRequest, "Status order tidak dikenal: "+status)
		}
		q = q.Where("order_status = ?", status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	order, err := params.SafeOrderClause(orderSortColumns, "created_at")
	if err != nil {
		return nil, 0, fiber.NewError(fiber.StatusBadRequest, "sort_by tidak valid")
	}

	var orders []orderModel.OrderModel
	if err := q.Preload("OrderItems").
		Order(order).
		Limit(params.Limit()).Offset(params.Offset()).
		Find(&orders).Error; err != nil {
		return nil, 0, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	return orders, total, nil
}

/* ==========================
   Cancel / status
========================== */

// CancelOrder: hanya pending yang bisa dibatalkan user; stok dikembalikan
// dan sold_count dikoreksi dalam transaksi yang sama.
func CancelOrder(db *gorm.DB, userID, orderID uuid.UUID) (*orderModel.OrderModel, error) {
	var order orderModel.OrderModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("OrderItems").
			First(&order, "order_id = ? AND order_user_id = ?", orderID, userID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Order tidak ditemukan")
		}
		if !order.IsPending() {
			return fiber.NewError(fiber.StatusBadRequest,
				"Order dengan status "+order.OrderStatus+" tidak bisa dibatalkan")
		}
		return restockAndCancel(tx, &order)
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// status tidak valid untuk state sekarang = kesalahan input, bukan konflik data
func errInvalidTransition(from, to string) error {
	return fiber.NewError(fiber.StatusBadRequest,
		"Transisi "+from+" -> "+to+" tidak diizinkan")
}

// UpdateOrderStatus (admin): transisi dicek lewat state machine.
// Transisi ke canceled ikut mengembalikan stok.
func UpdateOrderStatus(db *gorm.DB, orderID uuid.UUID, newStatus string) (*orderModel.OrderModel, error) {
	var order orderModel.OrderModel
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Preload("OrderItems").
			First(&order, "order_id = ?", orderID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Order tidak ditemukan")
		}
		if !orderModel.CanTransition(order.OrderStatus, newStatus) {
			return errInvalidTransition(order.OrderStatus, newStatus)
		}
		if newStatus == orderModel.OrderStatusCanceled {
			return restockAndCancel(tx, &order)
		}
		if err := tx.Model(&order).Update("order_status", newStatus).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal update status order")
		}
		order.OrderStatus = newStatus
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &order, nil
}

func restockAndCancel(tx *gorm.DB, order *orderModel.OrderModel) error {
	for _, it := range order.OrderItems {
		if err := tx.Model(&bookModel.BookModel{}).
			Where("book_id = ?", it.OrderItemBookID).
			Updates(map[string]interface{}{
				"book_stock":      gorm.Expr("book_stock + ?", it.OrderItemQuantity),
				"book_sold_count": gorm.Expr("GREATEST(book_sold_count - ?, 0)", it.OrderItemQuantity),
			}).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengembalikan stok")
		}
	}
	if err := tx.Model(order).Update("order_status", orderModel.OrderStatusCanceled).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membatalkan order")
	}
	order.OrderStatus = orderModel.OrderStatusCanceled
	return nil
}

/* ==========================
   Statistik (admin)
========================== */

// Statistics: agregat order; userID opsional untuk statistik per user.
func Statistics(db *gorm.DB, userID *uuid.UUID) (*dto.OrderStatistics, error) {
	stats := &dto.OrderStatistics{CountByStatus: map[string]int64{}}

	scope := func() *gorm.DB {
		q := db.Model(&orderModel.OrderModel{})
		if userID != nil {
			q = q.Where("order_user_id = ?", *userID)
		}
		return q
	}

	if err := scope().Count(&stats.TotalOrders).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	// revenue = order yang selesai saja
	if err := scope().
		Where("order_status = ?", orderModel.OrderStatusCompleted).
		Select("COALESCE(SUM(order_total_amount_idr), 0)").
		Scan(&stats.TotalRevenueIDR).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}

	var rows []struct {
		Status string `gorm:"column:order_status"`
		Count  int64  `gorm:"column:count"`
	}
	if err := scope().
		Select("order_status, COUNT(*) AS count").
		Group("order_status").
		Scan(&rows).Error; err != nil {
		return nil, fiber.NewError(fiber.StatusInternalServerError, "DB error")
	}
	for _, r := range rows {
		stats.CountByStatus[r.Status] = r.Count
	}
	return stats, nil
}
