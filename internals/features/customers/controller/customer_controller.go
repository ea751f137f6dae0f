package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "layananku_backend/internals/features/customers/dto"
	model "layananku_backend/internals/features/customers/model"
	helper "layananku_backend/internals/helpers"
)

type CustomerController struct {
	DB *gorm.DB
}

func NewCustomerController(db *gorm.DB) *CustomerController {
	return &CustomerController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /customers
// Email duplikat harus jadi 409, bukan error generik.
func (h *CustomerController) Create(c *fiber.Ctx) error {
	var req dto.CreateCustomerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := helper.HashPassword(req.CustomerPassword)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
	}

	m := req.ToModel()
	m.CustomerPasswordHash = hashed

	if err := h.DB.Create(m).Error; err != nil {
		return helper.TranslateDBError(err, "Email "+req.CustomerEmail+" sudah terdaftar")
	}

	return helper.JsonCreated(c, "Pelanggan berhasil didaftarkan", dto.FromModel(*m))
}

/* ======================== GET BY ID ======================== */
// GET /customers/:id
func (h *CustomerController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.CustomerModel
	if err := h.DB.Preload("Area").First(&row, "customer_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Pelanggan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== LIST ======================== */
// GET /customers?area_id=&page=&per_page=
func (h *CustomerController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.CustomerModel{})
	if areaID := c.QueryInt("area_id"); areaID > 0 {
		base = base.Where("customer_area_id = ?", areaID)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.CustomerModel
	if err := base.
		Order("customer_registered_at DESC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list), helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

/* ======================== DELETE ======================== */
// DELETE /customers/:id
// Service request milik pelanggan ikut terhapus (cascade), termasuk payment & review-nya.
func (h *CustomerController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.Delete(&model.CustomerModel{}, "customer_id = ?", id)
	if res.Error != nil {
		return helper.TranslateDBError(res.Error, "")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Pelanggan tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Pelanggan berhasil dihapus", fiber.Map{"customer_id": id})
}
