package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "layananku_backend/internals/features/categories/dto"
	model "layananku_backend/internals/features/categories/model"
	helper "layananku_backend/internals/helpers"
)

type ServiceCategoryController struct {
	DB *gorm.DB
}

func NewServiceCategoryController(db *gorm.DB) *ServiceCategoryController {
	return &ServiceCategoryController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /categories
func (h *ServiceCategoryController) Create(c *fiber.Ctx) error {
	var req dto.CreateServiceCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := h.DB.Create(m).Error; err != nil {
		return helper.TranslateDBError(err, "Kategori dengan nama tersebut sudah ada")
	}

	return helper.JsonCreated(c, "Kategori layanan berhasil dibuat", dto.FromModel(*m))
}

/* ======================== GET BY ID ======================== */
// GET /categories/:id
func (h *ServiceCategoryController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.ServiceCategoryModel
	if err := h.DB.First(&row, "category_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Kategori layanan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== LIST ======================== */
// GET /categories?page=&per_page=
func (h *ServiceCategoryController) List(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	base := h.DB.Model(&model.ServiceCategoryModel{})

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	var list []model.ServiceCategoryModel
	if err := base.
		Order("category_name ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list), helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

/* ======================== DELETE ======================== */
// DELETE /categories/:id
func (h *ServiceCategoryController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.Delete(&model.ServiceCategoryModel{}, "category_id = ?", id)
	if res.Error != nil {
		return helper.TranslateDBError(res.Error, "")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Kategori layanan tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Kategori layanan berhasil dihapus", fiber.Map{"category_id": id})
}
