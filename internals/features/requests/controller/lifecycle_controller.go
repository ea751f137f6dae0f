package controller

import (
	"errors"
	"math"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	constants "layananku_backend/internals/constants"
	paymentDto "layananku_backend/internals/features/payments/dto"
	paymentModel "layananku_backend/internals/features/payments/model"
	dto "layananku_backend/internals/features/requests/dto"
	model "layananku_backend/internals/features/requests/model"
	reviewDto "layananku_backend/internals/features/reviews/dto"
	reviewModel "layananku_backend/internals/features/reviews/model"
	helper "layananku_backend/internals/helpers"
)

// LifecycleController: aksi provider (accept/complete/cancel) dan customer
// (pay/review) terhadap satu permintaan layanan. Semua endpoint di sini
// di-guard JWT; identitas diambil dari token, bukan dari body.
type LifecycleController struct {
	DB *gorm.DB
}

func NewLifecycleController(db *gorm.DB) *LifecycleController {
	return &LifecycleController{DB: db}
}

func (h *LifecycleController) loadRequest(id int) (*model.ServiceRequestModel, error) {
	var row model.ServiceRequestModel
	if err := h.DB.First(&row, "request_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Permintaan layanan tidak ditemukan")
		}
		return nil, fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	return &row, nil
}

// guardAssignedProvider memastikan token milik provider yang ditunjuk request.
// Role provider sudah dipastikan RequireRole di route.
func (h *LifecycleController) guardAssignedProvider(c *fiber.Ctx, req *model.ServiceRequestModel) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	if req.RequestProviderID == nil || *req.RequestProviderID != userID {
		return fiber.NewError(fiber.StatusForbidden, "Anda bukan penyedia jasa yang ditunjuk untuk permintaan ini")
	}
	return nil
}

// guardOwningCustomer memastikan token milik customer pemilik request.
// Role customer sudah dipastikan RequireRole di route.
func (h *LifecycleController) guardOwningCustomer(c *fiber.Ctx, req *model.ServiceRequestModel) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	if req.RequestCustomerID != userID {
		return fiber.NewError(fiber.StatusForbidden, "Anda bukan pemilik permintaan ini")
	}
	return nil
}

func (h *LifecycleController) setStatus(id uint, patch map[string]interface{}) error {
	if err := h.DB.Model(&model.ServiceRequestModel{}).
		Where("request_id = ?", id).
		Updates(patch).Error; err != nil {
		return helper.TranslateDBError(err, "")
	}
	return nil
}

/* ======================== PROVIDER: ACCEPT ======================== */
// POST /service-requests/:id/accept
// pending → in_progress (provider mulai mengerjakan)
func (h *LifecycleController) Accept(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	req, ferr := h.loadRequest(id)
	if ferr != nil {
		return ferr
	}
	if err := h.guardAssignedProvider(c, req); err != nil {
		return err
	}
	if req.RequestStatus != constants.RequestPending {
		return fiber.NewError(fiber.StatusBadRequest,
			"Permintaan berstatus '"+req.RequestStatus+"', hanya 'pending' yang bisa diterima")
	}

	if err := h.setStatus(req.RequestID, map[string]interface{}{"request_status": constants.RequestInProgress}); err != nil {
		return err
	}
	req.RequestStatus = constants.RequestInProgress

	return helper.JsonUpdated(c, "Permintaan diterima, pekerjaan dimulai", dto.FromModel(*req))
}

/* ======================== PROVIDER: COMPLETE ======================== */
// POST /service-requests/:id/complete
// in_progress → completed
func (h *LifecycleController) Complete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	req, ferr := h.loadRequest(id)
	if ferr != nil {
		return ferr
	}
	if err := h.guardAssignedProvider(c, req); err != nil {
		return err
	}
	if req.RequestStatus != constants.RequestInProgress {
		return fiber.NewError(fiber.StatusBadRequest,
			"Permintaan berstatus '"+req.RequestStatus+"', hanya 'in_progress' yang bisa diselesaikan")
	}

	if err := h.setStatus(req.RequestID, map[string]interface{}{"request_status": constants.RequestCompleted}); err != nil {
		return err
	}
	req.RequestStatus = constants.RequestCompleted

	return helper.JsonUpdated(c, "Permintaan selesai dikerjakan", dto.FromModel(*req))
}

/* ======================== PROVIDER: CANCEL ======================== */
// POST /service-requests/:id/cancel
// pending/in_progress → cancelled (dengan timestamp pembatalan)
func (h *LifecycleController) Cancel(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	req, ferr := h.loadRequest(id)
	if ferr != nil {
		return ferr
	}
	if err := h.guardAssignedProvider(c, req); err != nil {
		return err
	}
	if req.RequestStatus != constants.RequestPending && req.RequestStatus != constants.RequestInProgress {
		return fiber.NewError(fiber.StatusBadRequest,
			"Permintaan berstatus '"+req.RequestStatus+"' tidak bisa dibatalkan")
	}

	now := time.Now()
	if err := h.setStatus(req.RequestID, map[string]interface{}{
		"request_status":       constants.RequestCancelled,
		"request_cancelled_at": &now,
	}); err != nil {
		return err
	}
	req.RequestStatus = constants.RequestCancelled
	req.RequestCancelledAt = &now

	return helper.JsonUpdated(c, "Permintaan dibatalkan", dto.FromModel(*req))
}

/* ======================== CUSTOMER: PAY ======================== */
// POST /service-requests/:id/pay
// Syarat: request completed, milik customer ybs, nominal sama dengan request_cost.
// Kalau sudah ada baris payment, field-nya di-update dan payment_date asli dipertahankan.
func (h *LifecycleController) Pay(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.PayRequestRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	req, ferr := h.loadRequest(id)
	if ferr != nil {
		return ferr
	}
	if err := h.guardOwningCustomer(c, req); err != nil {
		return err
	}
	if req.RequestStatus != constants.RequestCompleted {
		return fiber.NewError(fiber.StatusBadRequest,
			"Permintaan berstatus '"+req.RequestStatus+"', pembayaran hanya untuk 'completed'")
	}
	if req.RequestCost == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Permintaan belum punya biaya yang disepakati")
	}

	amount := *req.RequestCost
	if body.PaymentAmount != nil {
		amount = *body.PaymentAmount
	}
	if math.Abs(amount-*req.RequestCost) > 0.01 {
		return fiber.NewError(fiber.StatusBadRequest, "Nominal pembayaran harus sama dengan biaya yang disepakati")
	}

	var existing paymentModel.PaymentModel
	err = h.DB.First(&existing, "payment_request_id = ?", req.RequestID).Error
	switch {
	case err == nil:
		if existing.PaymentStatus == constants.PaymentCompleted {
			return fiber.NewError(fiber.StatusBadRequest, "Permintaan ini sudah dibayar")
		}
		// update in place, payment_date asli tidak diubah
		if err := h.DB.Model(&paymentModel.PaymentModel{}).
			Where("payment_request_id = ?", req.RequestID).
			Updates(map[string]interface{}{
				"payment_amount": amount,
				"payment_method": body.PaymentMethod,
				"payment_status": constants.PaymentCompleted,
			}).Error; err != nil {
			return helper.TranslateDBError(err, "")
		}
	case errors.Is(err, gorm.ErrRecordNotFound):
		create := paymentModel.PaymentModel{
			PaymentRequestID: req.RequestID,
			PaymentAmount:    amount,
			PaymentMethod:    body.PaymentMethod,
			PaymentStatus:    constants.PaymentCompleted,
		}
		if err := h.DB.Create(&create).Error; err != nil {
			return helper.TranslateDBError(err, "Pembayaran untuk permintaan ini sudah ada")
		}
	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var paid paymentModel.PaymentModel
	if err := h.DB.First(&paid, "payment_request_id = ?", req.RequestID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "Pembayaran berhasil dicatat", paymentDto.FromModel(paid))
}

/* ======================== CUSTOMER: REVIEW ======================== */
// POST /service-requests/:id/review
// Syarat: request completed & sudah dibayar lunas, reviewer adalah pemiliknya,
// provider masih terpasang pada request, dan belum pernah direview.
func (h *LifecycleController) Review(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var body dto.ReviewRequestRequest
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(body); err != nil {
		return helper.ValidationError(c, err)
	}

	req, ferr := h.loadRequest(id)
	if ferr != nil {
		return ferr
	}
	if err := h.guardOwningCustomer(c, req); err != nil {
		return err
	}
	if req.RequestStatus != constants.RequestCompleted {
		return fiber.NewError(fiber.StatusBadRequest,
			"Permintaan berstatus '"+req.RequestStatus+"', review hanya untuk 'completed'")
	}
	if req.RequestProviderID == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Permintaan tidak punya penyedia jasa untuk direview")
	}

	var payment paymentModel.PaymentModel
	if err := h.DB.First(&payment, "payment_request_id = ?", req.RequestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusBadRequest, "Permintaan belum dibayar, review belum bisa dibuat")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if payment.PaymentStatus != constants.PaymentCompleted {
		return fiber.NewError(fiber.StatusBadRequest,
			"Status pembayaran '"+payment.PaymentStatus+"', review hanya setelah pembayaran 'completed'")
	}

	review := reviewModel.ReviewModel{
		ReviewRequestID:  req.RequestID,
		ReviewCustomerID: req.RequestCustomerID,
		ReviewProviderID: *req.RequestProviderID,
		ReviewRating:     body.ReviewRating,
		ReviewComment:    body.ReviewComment,
	}
	if err := h.DB.Create(&review).Error; err != nil {
		return helper.TranslateDBError(err, "Ulasan untuk permintaan ini sudah ada")
	}

	return helper.JsonCreated(c, "Ulasan berhasil dibuat", reviewDto.FromModel(review))
}
