package controller

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	dto "layananku_backend/internals/features/providers/dto"
	model "layananku_backend/internals/features/providers/model"
	helper "layananku_backend/internals/helpers"
)

type ServiceProviderController struct {
	DB *gorm.DB
}

func NewServiceProviderController(db *gorm.DB) *ServiceProviderController {
	return &ServiceProviderController{DB: db}
}

/* ======================= CREATE ======================= */
// POST /providers
// Body boleh menyertakan category_ids; baris asosiasi dibuat dalam satu transaksi.
func (h *ServiceProviderController) Create(c *fiber.Ctx) error {
	var req dto.CreateServiceProviderRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	hashed, err := helper.HashPassword(req.ProviderPassword)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memproses password")
	}

	m := req.ToModel()
	m.ProviderPasswordHash = hashed

	tx := h.DB.Begin()
	if tx.Error != nil {
		return fiber.NewError(fiber.StatusInternalServerError, tx.Error.Error())
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := tx.Create(m).Error; err != nil {
		tx.Rollback()
		return helper.TranslateDBError(err, "Email "+req.ProviderEmail+" sudah terdaftar")
	}

	for _, categoryID := range req.CategoryIDs {
		pc := model.ProviderCategoryModel{
			ProviderID: m.ProviderID,
			CategoryID: categoryID,
		}
		if err := tx.Create(&pc).Error; err != nil {
			tx.Rollback()
			return helper.TranslateDBError(err, "Kategori sudah terpasang pada provider ini")
		}
	}

	if err := tx.Commit().Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonCreated(c, "Penyedia jasa berhasil didaftarkan", dto.FromModel(*m))
}

/* ======================== GET BY ID ======================== */
// GET /providers/:id
func (h *ServiceProviderController) GetByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var row model.ServiceProviderModel
	if err := h.DB.
		Preload("Area").
		Preload("Categories").
		First(&row, "provider_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Penyedia jasa tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonOK(c, "OK", dto.FromModel(row))
}

/* ======================== LIST / SEARCH ======================== */
// GET /providers?area_id=&category_id=&page=&per_page=
//
// Aturan filter:
//   - area_id saja  → provider tanpa kategori TETAP muncul (tidak ada join ke asosiasi)
//   - category_id   → JOIN ke provider_categories, hanya provider yang melayani kategori itu
func (h *ServiceProviderController) List(c *fiber.Ctx) error {
	var q dto.ListServiceProviderQuery
	if err := c.QueryParser(&q); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Query tidak valid")
	}
	p := helper.ResolvePaging(c, 20, 100)

	// join hanya saat filter kategori dipakai; filter area tidak boleh
	// diam-diam mensyaratkan provider punya kategori
	filtered := func() *gorm.DB {
		tx := h.DB.Model(&model.ServiceProviderModel{})
		if q.AreaID != nil {
			tx = tx.Where("service_providers.provider_area_id = ?", *q.AreaID)
		}
		if q.CategoryID != nil {
			tx = tx.
				Joins("JOIN provider_categories pc ON pc.provider_id = service_providers.provider_id").
				Where("pc.category_id = ?", *q.CategoryID)
		}
		return tx
	}

	// count DISTINCT pada primary key; DISTINCT service_providers.* tidak
	// valid di dalam COUNT()
	countQ := filtered()
	if q.CategoryID != nil {
		countQ = countQ.Distinct("service_providers.provider_id")
	}
	var total int64
	if err := countQ.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	listQ := filtered()
	if q.CategoryID != nil {
		listQ = listQ.Distinct("service_providers.*")
	}

	var list []model.ServiceProviderModel
	if err := listQ.
		Preload("Area").
		Order("service_providers.provider_availability DESC, service_providers.provider_hourly_rate ASC, service_providers.provider_last_name ASC").
		Limit(p.Limit).
		Offset(p.Offset).
		Find(&list).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return helper.JsonList(c, "OK", dto.FromModels(list), helper.BuildPaginationFromOffset(total, p.Offset, p.Limit))
}

/* ======================== DELETE ======================== */
// DELETE /providers/:id
// Asosiasi kategori & review ikut terhapus; service request yang menunjuk provider ini di-SET NULL.
func (h *ServiceProviderController) Delete(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id <= 0 {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	res := h.DB.Delete(&model.ServiceProviderModel{}, "provider_id = ?", id)
	if res.Error != nil {
		return helper.TranslateDBError(res.Error, "")
	}
	if res.RowsAffected == 0 {
		return fiber.NewError(fiber.StatusNotFound, "Penyedia jasa tidak ditemukan")
	}

	return helper.JsonDeleted(c, "Penyedia jasa berhasil dihapus", fiber.Map{"provider_id": id})
}
