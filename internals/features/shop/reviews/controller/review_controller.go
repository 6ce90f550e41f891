package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	bookModel "tokobuku_backend/internals/features/catalog/books/model"
	"tokobuku_backend/internals/features/shop/reviews/dto"
	reviewModel "tokobuku_backend/internals/features/shop/reviews/model"
	userModel "tokobuku_backend/internals/features/users/user/model"
	helper "tokobuku_backend/internals/helpers"
	authMiddleware "tokobuku_backend/internals/middlewares/auth"
)

type ReviewController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db, Validate: validator.New()}
}

func (rc *ReviewController) resolveUserID(c *fiber.Ctx) (uuid.UUID, error) {
	authID, err := authMiddleware.GetAuthID(c)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	var u userModel.UserModel
	if err := rc.DB.Select("user_id").First(&u, "user_auth_id = ?", authID).Error; err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Hanya akun user yang bisa review")
	}
	return u.UserID, nil
}

/* ==========================
   🌐 Public
========================== */

// GET /api/books/:bookId/reviews
func (rc *ReviewController) ListByBook(c *fiber.Ctx) error {
	bookID, err := uuid.Parse(c.Params("bookId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "book_id tidak valid")
	}
	params := helper.ParseFiber(c, "created_at", "desc", helper.DefaultOpts)

	q := rc.DB.Model(&reviewModel.ReviewModel{}).Where("review_book_id = ?", bookID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}

	order, err := params.SafeOrderClause(map[string]string{
		"created_at": "review_created_at",
		"rating":     "review_rating",
	}, "created_at")
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "sort_by tidak valid")
	}

	var reviews []reviewModel.ReviewModel
	if err := q.Order(order).
		Limit(params.Limit()).Offset(params.Offset()).
		Find(&reviews).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonList(c, "OK", reviews, helper.BuildPagination(total, params))
}

// GET /api/books/:bookId/reviews/summary
func (rc *ReviewController) Summary(c *fiber.Ctx) error {
	bookID, err := uuid.Parse(c.Params("bookId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "book_id tidak valid")
	}
	summary := dto.RatingSummary{BookID: bookID}
	if err := rc.DB.Model(&reviewModel.ReviewModel{}).
		Select("COUNT(*) AS review_count, COALESCE(AVG(review_rating), 0) AS average_rating").
		Where("review_book_id = ?", bookID).
		Row().Scan(&summary.ReviewCount, &summary.AverageRating); err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	return helper.JsonOK(c, "OK", summary)
}

/* ==========================
   🔐 User
========================== */

// POST /api/u/reviews — satu review per (user, book)
func (rc *ReviewController) Create(c *fiber.Ctx) error {
	userID, err := rc.resolveUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	req.Normalize()
	if err := rc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var count int64
	if err := rc.DB.Model(&bookModel.BookModel{}).
		Where("book_id = ?", req.BookID).Count(&count).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "DB error")
	}
	if count == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Buku tidak ditemukan")
	}

	review := reviewModel.ReviewModel{
		ReviewUserID:  userID,
		ReviewBookID:  req.BookID,
		ReviewRating:  req.Rating,
		ReviewComment: req.Comment,
	}
	if err := rc.DB.Create(&review).Error; err != nil {
		return helper.FromFiberError(c, helper.TranslateDBError(err, "Kamu sudah mereview buku ini", "Buku tidak valid", "Gagal membuat review"))
	}
	return helper.JsonCreated(c, "Review berhasil dibuat", review)
}

// PUT /api/u/reviews/:id — hanya milik sendiri
func (rc *ReviewController) Update(c *fiber.Ctx) error {
	userID, err := rc.resolveUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "review_id tidak valid")
	}

	var req dto.UpdateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := rc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var review reviewModel.ReviewModel
	if err := rc.DB.First(&review, "review_id = ? AND review_user_id = ?", id, userID).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Review tidak ditemukan")
	}

	updates := map[string]interface{}{}
	if req.Rating != nil {
		updates["review_rating"] = *req.Rating
	}
	if req.Comment != nil {
		updates["review_comment"] = *req.Comment
	}
	if len(updates) == 0 {
		return helper.JsonOK(c, "Tidak ada perubahan", review)
	}
	if err := rc.DB.Model(&review).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal update review")
	}
	return helper.JsonUpdated(c, "Review berhasil diperbarui", review)
}

// DELETE /api/u/reviews/:id — pemilik atau admin
func (rc *ReviewController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "review_id tidak valid")
	}

	q := rc.DB.Where("review_id = ?", id)
	if !authMiddleware.IsAdmin(c) {
		userID, err := rc.resolveUserID(c)
		if err != nil {
			return helper.FromFiberError(c, err)
		}
		q = q.Where("review_user_id = ?", userID)
	}

	res := q.Delete(&reviewModel.ReviewModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Gagal menghapus review")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Review tidak ditemukan")
	}
	return helper.JsonDeleted(c, "Review berhasil dihapus", nil)
}
