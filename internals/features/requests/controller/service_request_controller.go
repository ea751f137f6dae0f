package controller

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	constants "layananku_backend/internals/constants"
	dto "layananku_backend/internals/features/requests/dto"
	model "layananku_backend/internals/features/requests/model"
	helper "layananku_backend/internals/helpers"
)

type ServiceRequestController struct {
	DB *gorm.DB
}

func NewServiceRequestController(db *gorm.DB) *ServiceRequestController {
	return &ServiceRequestController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /service-requests
func (h *ServiceRequestController) Create(c *fiber.Ctx) error {
	var req dto.CreateServiceRequestRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.TranslateDBError(err, "")
	}

	return helper.JsonCreated(c, "Permintaan layanan berhasil dibuat", dto.FromModel(*m))
}

/* ======================== GET BY ID ======================== */
// GET /service-requests/:id
func (h *ServiceRequestController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.ServiceRequestModel
	if err := h.DB.
		Preload("Customer").
		Preload("Provider").
		Preload("Category").
		Preload("Area").
		First(&row, "request_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Permintaan layanan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== LIST ======================== */
// GET /service-requests?customer_id=&provider_id=&page=&per_page=
func (h *ServiceRequestController) List(c *fiber.Ctx) error {
	var q dto.ListServiceRequestQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.ServiceRequestModel{})
	if q.CustomerID != nil {
		base = base.Where("request_customer_id = ?", *q.CustomerID)
	}
	if q.ProviderID != nil {
		base = base.Where("request_provider_id = ?", *q.ProviderID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.ServiceRequestModel
	if err := base.
		Preload("Category").
		Preload("Area").
		Order("request_created_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list), helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

/* ======================== UPDATE STATUS ======================== */
// PATCH /service-requests/:id/status
// Status bebas diganti ke nilai enum manapun (tanpa graf transisi).
// Khusus 'cancelled', timestamp pembatalan ikut dicatat.
func (h *ServiceRequestController) UpdateStatus(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateRequestStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	patch := map[string]interface{}{
		"request_status": req.RequestStatus,
	}
	if req.RequestStatus == constants.RequestCancelled {
		now := time.Now()
		patch["request_cancelled_at"] = &now
	}

	res := h.DB.Model(&model.ServiceRequestModel{}).
		Where("request_id = ?", id).
		Updates(patch)
	if res.Error != nil {
		return helper.TranslateDBError(res.Error, "")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Permintaan layanan tidak ditemukan")
	}

	var updated model.ServiceRequestModel
	if err := h.DB.First(&updated, "request_id = ?", id).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonUpdated(c, "Status permintaan berhasil diperbarui", dto.FromModel(updated))
}

/* ======================== DELETE ======================== */
// DELETE /service-requests/:id
// Payment & review milik request ini ikut terhapus (cascade).
func (h *ServiceRequestController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.Delete(&model.ServiceRequestModel{}, "request_id = ?", id)
	if res.Error != nil {
		return helper.TranslateDBError(res.Error, "")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Permintaan layanan tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Permintaan layanan berhasil dihapus", fiber.Map{"request_id": id})
}
