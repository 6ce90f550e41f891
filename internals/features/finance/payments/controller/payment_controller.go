package controller

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"tokobuku_backend/internals/features/finance/payments/dto"
	"tokobuku_backend/internals/features/finance/payments/service"
	userModel "tokobuku_backend/internals/features/users/user/model"
	helper "tokobuku_backend/internals/helpers"
	authMiddleware "tokobuku_backend/internals/middlewares/auth"
)

type PaymentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db, Validate: validator.New()}
}

func (pc *PaymentController) resolveUserID(c *fiber.Ctx) (uuid.UUID, error) {
	authID, err := authMiddleware.GetAuthID(c)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	var u userModel.UserModel
	if err := pc.DB.Select("user_id").First(&u, "user_auth_id = ?", authID).Error; err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusForbidden, "Hanya akun user yang bisa membayar")
	}
	return u.UserID, nil
}

/* ==========================
   🔐 User
========================== */

// POST /api/u/payments
func (pc *PaymentController) Create(c *fiber.Ctx) error {
	userID, err := pc.resolveUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}

	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := pc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	payment, err := service.CreatePayment(pc.DB, userID, &req)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonCreated(c, "Payment berhasil dibuat", payment)
}

// GET /api/u/payments/order/:orderId
func (pc *PaymentController) GetByOrder(c *fiber.Ctx) error {
	userID, err := pc.resolveUserID(c)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	orderID, err := uuid.Parse(c.Params("orderId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "order_id tidak valid")
	}
	payment, err := service.GetPaymentByOrder(pc.DB, userID, orderID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", payment)
}

/* ==========================
   🛡️ Admin
========================== */

// GET /api/a/payments?status=
func (pc *PaymentController) List(c *fiber.Ctx) error {
	params := helper.ParseFiber(c, "created_at", "desc", helper.AdminOpts)

	payments, total, err := service.ListPayments(pc.DB, c.Query("status"), params)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonList(c, "OK", payments, helper.BuildPagination(total, params))
}

// PUT /api/a/payments/:id/status — update manual (cash / transfer dicek manual)
func (pc *PaymentController) UpdateStatus(c *fiber.Ctx) error {
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payment_id tidak valid")
	}

	var req dto.UpdatePaymentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := pc.Validate.Struct(&req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	payment, err := service.ApplyPaymentStatus(pc.DB, paymentID, req.Status)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Status payment diperbarui", payment)
}

// POST /api/a/payments/:id/process — settle payment metode manual
func (pc *PaymentController) Process(c *fiber.Ctx) error {
	paymentID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "payment_id tidak valid")
	}
	payment, err := service.ProcessPayment(pc.DB, paymentID)
	if err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonUpdated(c, "Payment berhasil diproses", payment)
}

/* ==========================
   🌐 Webhook
========================== */

// POST /api/payments/notification — dipanggil Midtrans, tanpa auth
// (diverifikasi lewat signature sha512).
func (pc *PaymentController) MidtransNotification(c *fiber.Ctx) error {
	var n dto.MidtransNotification
	if err := c.BodyParser(&n); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification payload")
	}
	if err := service.HandleMidtransNotification(pc.DB, &n); err != nil {
		return helper.FromFiberError(c, err)
	}
	return helper.JsonOK(c, "OK", nil)
}
