package dto

import (
	"time"

	areaDto "layananku_backend/internals/features/areas/dto"
	categoryDto "layananku_backend/internals/features/categories/dto"
	m "layananku_backend/internals/features/providers/model"
)

/* =============== REQUESTS =============== */

type CreateServiceProviderRequest struct {
	ProviderFirstName    string  `json:"provider_first_name"   validate:"required,max=50"`
	ProviderLastName     string  `json:"provider_last_name"    validate:"required,max=50"`
	ProviderEmail        string  `json:"provider_email"        validate:"required,email,max=100"`
	ProviderPhone        string  `json:"provider_phone"        validate:"required,max=30"`
	ProviderAddress      string  `json:"provider_address"      validate:"required,max=255"`
	ProviderAreaID       *uint   `json:"provider_area_id"      validate:"omitempty,gt=0"`
	ProviderHourlyRate   float64 `json:"provider_hourly_rate"  validate:"gte=0"`
	ProviderAvailability string  `json:"provider_availability" validate:"omitempty,oneof=available busy unavailable"`
	ProviderPassword     string  `json:"provider_password"     validate:"required,min=8"`

	// Kategori yang dilayani (opsional saat daftar)
	CategoryIDs []uint `json:"category_ids" validate:"omitempty,dive,gt=0"`
}

// ToModel tidak menyalin password; hashing dilakukan controller.
func (r CreateServiceProviderRequest) ToModel() *m.ServiceProviderModel {
	availability := r.ProviderAvailability
	if availability == "" {
		availability = "available"
	}
	return &m.ServiceProviderModel{
		ProviderFirstName:    r.ProviderFirstName,
		ProviderLastName:     r.ProviderLastName,
		ProviderEmail:        r.ProviderEmail,
		ProviderPhone:        r.ProviderPhone,
		ProviderAddress:      r.ProviderAddress,
		ProviderAreaID:       r.ProviderAreaID,
		ProviderHourlyRate:   r.ProviderHourlyRate,
		ProviderAvailability: availability,
	}
}

// List / Query params
type ListServiceProviderQuery struct {
	AreaID     *uint `query:"area_id"     validate:"omitempty,gt=0"`
	CategoryID *uint `query:"category_id" validate:"omitempty,gt=0"`
}

/* =============== RESPONSES =============== */

type ServiceProviderResponse struct {
	ProviderID           uint                                  `json:"provider_id"`
	ProviderFirstName    string                                `json:"provider_first_name"`
	ProviderLastName     string                                `json:"provider_last_name"`
	ProviderEmail        string                                `json:"provider_email"`
	ProviderPhone        string                                `json:"provider_phone"`
	ProviderAddress      string                                `json:"provider_address"`
	ProviderAreaID       *uint                                 `json:"provider_area_id,omitempty"`
	Area                 *areaDto.ServiceAreaResponse          `json:"area,omitempty"`
	ProviderHourlyRate   float64                               `json:"provider_hourly_rate"`
	ProviderAvailability string                                `json:"provider_availability"`
	ProviderJoinedAt     time.Time                             `json:"provider_joined_at"`
	Categories           []categoryDto.ServiceCategoryResponse `json:"categories,omitempty"`
}

/* =============== MAPPERS =============== */

func FromModel(x m.ServiceProviderModel) ServiceProviderResponse {
	resp := ServiceProviderResponse{
		ProviderID:           x.ProviderID,
		ProviderFirstName:    x.ProviderFirstName,
		ProviderLastName:     x.ProviderLastName,
		ProviderEmail:        x.ProviderEmail,
		ProviderPhone:        x.ProviderPhone,
		ProviderAddress:      x.ProviderAddress,
		ProviderAreaID:       x.ProviderAreaID,
		ProviderHourlyRate:   x.ProviderHourlyRate,
		ProviderAvailability: x.ProviderAvailability,
		ProviderJoinedAt:     x.ProviderJoinedAt,
	}
	if x.Area != nil {
		area := areaDto.FromModel(*x.Area)
		resp.Area = &area
	}
	if len(x.Categories) > 0 {
		resp.Categories = categoryDto.FromModels(x.Categories)
	}
	return resp
}

func FromModels(list []m.ServiceProviderModel) []ServiceProviderResponse {
	out := make([]ServiceProviderResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
