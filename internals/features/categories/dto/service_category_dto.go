package dto

import (
	m "layananku_backend/internals/features/categories/model"
)

/* =============== REQUESTS =============== */

type CreateServiceCategoryRequest struct {
	CategoryName        string  `json:"category_name"        validate:"required,max=100"`
	CategoryDescription *string `json:"category_description" validate:"omitempty,max=255"`
}

func (r CreateServiceCategoryRequest) ToModel() *m.ServiceCategoryModel {
	return &m.ServiceCategoryModel{
		CategoryName:        r.CategoryName,
		CategoryDescription: r.CategoryDescription,
	}
}

/* =============== RESPONSES =============== */

type ServiceCategoryResponse struct {
	CategoryID          uint    `json:"category_id"`
	CategoryName        string  `json:"category_name"`
	CategoryDescription *string `json:"category_description,omitempty"`
}

/* =============== MAPPERS =============== */

func FromModel(x m.ServiceCategoryModel) ServiceCategoryResponse {
	return ServiceCategoryResponse{
		CategoryID:          x.CategoryID,
		CategoryName:        x.CategoryName,
		CategoryDescription: x.CategoryDescription,
	}
}

func FromModels(list []m.ServiceCategoryModel) []ServiceCategoryResponse {
	out := make([]ServiceCategoryResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
