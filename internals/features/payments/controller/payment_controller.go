package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "layananku_backend/internals/features/payments/dto"
	model "layananku_backend/internals/features/payments/model"
	requestModel "layananku_backend/internals/features/requests/model"
	helper "layananku_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

/* ======================= CREATE / UPSERT ======================= */
// POST /payments
// Satu request maksimal satu baris payment. Kalau sudah ada, amount/method/status
// di-update di tempat dan payment_date asli dipertahankan (respons 200, bukan 201).
func (h *PaymentController) Create(c *fiber.Ctx) error {
	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var existing model.PaymentModel
	err := h.DB.First(&existing, "payment_request_id = ?", req.PaymentRequestID).Error
	switch {
	case err == nil:
		m := req.ToModel()
		if err := h.DB.Model(&model.PaymentModel{}).
			Where("payment_request_id = ?", req.PaymentRequestID).
			Updates(map[string]interface{}{
				"payment_amount": m.PaymentAmount,
				"payment_method": m.PaymentMethod,
				"payment_status": m.PaymentStatus,
			}).Error; err != nil {
			return helper.TranslateDBError(err, "")
		}
		var updated model.PaymentModel
		if err := h.DB.First(&updated, "payment_request_id = ?", req.PaymentRequestID).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
		return helper.JsonOK(c, "Pembayaran diperbarui", dto.FromModel(updated))

	case errors.Is(err, gorm.ErrRecordNotFound):
		// pastikan request-nya ada dulu supaya error-nya 404, bukan 400 FK
		var reqRow requestModel.ServiceRequestModel
		if err := h.DB.Select("request_id").
			First(&reqRow, "request_id = ?", req.PaymentRequestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusNotFound, "Permintaan layanan tidak ditemukan")
			}
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}

		m := req.ToModel()
		if err := h.DB.Create(&m).Error; err != nil {
			return helper.TranslateDBError(err, "Pembayaran untuk permintaan ini sudah ada")
		}
		return helper.JsonCreated(c, "Pembayaran berhasil dibuat", dto.FromModel(m))

	default:
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
}

/* ======================== GET BY ID ======================== */
// GET /payments/:id
func (h *PaymentController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.PaymentModel
	if err := h.DB.First(&row, "payment_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Pembayaran tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== LIST ======================== */
// GET /payments?request_id=&page=&per_page=
func (h *PaymentController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.PaymentModel{})
	if raw := c.Query("request_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "request_id tidak valid")
		}
		base = base.Where("payment_request_id = ?", id)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.PaymentModel
	if err := base.
		Order("payment_date DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list), helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

/* ======================== UPDATE BY REQUEST ======================== */
// PUT /payments/request/:request_id
// Partial update: field yang nil tidak disentuh, payment_date tidak pernah berubah.
func (h *PaymentController) UpdateByRequest(c *fiber.Ctx) error {
	requestID, err := c.ParamsInt("request_id")
	if err != nil || requestID <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	patch := map[string]interface{}{}
	if req.PaymentAmount != nil {
		patch["payment_amount"] = *req.PaymentAmount
	}
	if req.PaymentMethod != nil {
		patch["payment_method"] = *req.PaymentMethod
	}
	if req.PaymentStatus != nil {
		patch["payment_status"] = *req.PaymentStatus
	}
	if len(patch) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "Tidak ada field yang diubah")
	}

	res := h.DB.Model(&model.PaymentModel{}).
		Where("payment_request_id = ?", requestID).
		Updates(patch)
	if res.Error != nil {
		return helper.TranslateDBError(res.Error, "")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Pembayaran tidak ditemukan")
	}

	var row model.PaymentModel
	if err := h.DB.First(&row, "payment_request_id = ?", requestID).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Pembayaran diperbarui", dto.FromModel(row))
}
