package controller

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	requestModel "layananku_backend/internals/features/requests/model"
	dto "layananku_backend/internals/features/reviews/dto"
	model "layananku_backend/internals/features/reviews/model"
	helper "layananku_backend/internals/helpers"
)

type ReviewController struct {
	DB *gorm.DB
}

func NewReviewController(db *gorm.DB) *ReviewController {
	return &ReviewController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /reviews
// Validasi berurutan: request ada (404) → request punya provider (400) →
// customer & provider di payload cocok dengan request (400) → belum pernah
// direview (409, via unique index).
func (h *ReviewController) Create(c *fiber.Ctx) error {
	var req dto.CreateReviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var reqRow requestModel.ServiceRequestModel
	if err := h.DB.First(&reqRow, "request_id = ?", req.ReviewRequestID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Permintaan layanan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}
	if reqRow.RequestProviderID == nil {
		return fiber.NewError(fiber.StatusBadRequest, "Permintaan tidak punya penyedia jasa untuk direview")
	}
	if reqRow.RequestCustomerID != req.ReviewCustomerID {
		return fiber.NewError(fiber.StatusBadRequest, "Pelanggan bukan pemilik permintaan ini")
	}
	if *reqRow.RequestProviderID != req.ReviewProviderID {
		return fiber.NewError(fiber.StatusBadRequest, "Penyedia jasa tidak sesuai dengan permintaan ini")
	}

	m := model.ReviewModel{
		ReviewRequestID:  req.ReviewRequestID,
		ReviewCustomerID: req.ReviewCustomerID,
		ReviewProviderID: req.ReviewProviderID,
		ReviewRating:     req.ReviewRating,
		ReviewComment:    req.ReviewComment,
	}
	if err := h.DB.Create(&m).Error; err != nil {
		return helper.TranslateDBError(err, "Ulasan untuk permintaan ini sudah ada")
	}

	return helper.JsonCreated(c, "Ulasan berhasil dibuat", dto.FromModel(m))
}

/* ======================== GET BY ID ======================== */
// GET /reviews/:id
func (h *ReviewController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.ReviewModel
	if err := h.DB.
		Preload("Customer").
		Preload("Provider").
		First(&row, "review_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Ulasan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== LIST ======================== */
// GET /reviews?provider_id=&customer_id=&page=&per_page=
func (h *ReviewController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.ReviewModel{})
	if raw := c.Query("provider_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "provider_id tidak valid")
		}
		base = base.Where("review_provider_id = ?", id)
	}
	if raw := c.Query("customer_id"); raw != "" {
		id, err := strconv.Atoi(raw)
		if err != nil || id <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "customer_id tidak valid")
		}
		base = base.Where("review_customer_id = ?", id)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.ReviewModel
	if err := base.
		Preload("Customer").
		Preload("Provider").
		Order("review_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list), helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

/* ======================== LIST BY PROVIDER ======================== */
// GET /providers/:id/reviews
// Ikut mengembalikan rata-rata rating provider di samping daftar ulasannya.
func (h *ReviewController) ListByProvider(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	p := helper.ResolvePaging(c, 20, 100)

	var total int64
	if err := h.DB.Model(&model.ReviewModel{}).
		Where("review_provider_id = ?", id).
		Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var avg *float64
	if err := h.DB.Model(&model.ReviewModel{}).
		Where("review_provider_id = ?", id).
		Select("AVG(review_rating)").
		Scan(&avg).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.ReviewModel
	if err := h.DB.
		Where("review_provider_id = ?", id).
		Preload("Customer").
		Order("review_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", fiber.Map{
		"provider_id":    id,
		"average_rating": avg,
		"reviews":        dto.FromModels(list),
	}, helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

/* ======================== DELETE ======================== */
// DELETE /reviews/:id
func (h *ReviewController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.Delete(&model.ReviewModel{}, "review_id = ?", id)
	if res.Error != nil {
		return helper.TranslateDBError(res.Error, "")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Ulasan tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Ulasan berhasil dihapus", fiber.Map{"review_id": id})
}
