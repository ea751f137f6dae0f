package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "layananku_backend/internals/features/areas/dto"
	model "layananku_backend/internals/features/areas/model"
	helper "layananku_backend/internals/helpers"
)

type ServiceAreaController struct {
	DB *gorm.DB
}

func NewServiceAreaController(db *gorm.DB) *ServiceAreaController {
	return &ServiceAreaController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /areas
func (h *ServiceAreaController) Create(c *fiber.Ctx) error {
	var req dto.CreateServiceAreaRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.TranslateDBError(err, "Area layanan untuk kombinasi (kota, kecamatan, kode pos) sudah ada")
	}

	return helper.JsonCreated(c, "Area layanan berhasil dibuat", dto.FromModel(*m))
}

/* ======================== GET BY ID ======================== */
// GET /areas/:id
func (h *ServiceAreaController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.ServiceAreaModel
	if err := h.DB.First(&row, "area_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Area layanan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== LIST ======================== */
// GET /areas?page=&per_page=
func (h *ServiceAreaController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.ServiceAreaModel{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.ServiceAreaModel
	if err := base.
		Order("area_city ASC, area_district ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list), helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

/* ======================== DELETE ======================== */
// DELETE /areas/:id
// Customer/provider yang memakai area ini akan di-SET NULL, service request ikut terhapus (cascade).
func (h *ServiceAreaController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.Delete(&model.ServiceAreaModel{}, "area_id = ?", id)
	if res.Error != nil {
		return helper.TranslateDBError(res.Error, "")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Area layanan tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Area layanan berhasil dihapus", fiber.Map{"area_id": id})
}
