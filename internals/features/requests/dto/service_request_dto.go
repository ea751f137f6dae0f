package dto

import (
	"time"

	areaDto "layananku_backend/internals/features/areas/dto"
	categoryDto "layananku_backend/internals/features/categories/dto"
	customerDto "layananku_backend/internals/features/customers/dto"
	providerDto "layananku_backend/internals/features/providers/dto"
	m "layananku_backend/internals/features/requests/model"
)

/* =============== REQUESTS =============== */

type CreateServiceRequestRequest struct {
	RequestCustomerID  uint     `json:"request_customer_id" validate:"required,gt=0"`
	RequestProviderID  *uint    `json:"request_provider_id" validate:"omitempty,gt=0"`
	RequestCategoryID  uint     `json:"request_category_id" validate:"required,gt=0"`
	RequestAreaID      uint     `json:"request_area_id"     validate:"required,gt=0"`
	RequestAddress     string   `json:"request_address"     validate:"required,max=255"`
	RequestDescription *string  `json:"request_description" validate:"omitempty"`
	RequestCost        *float64 `json:"request_cost"        validate:"omitempty,gte=0"`
}

func (r CreateServiceRequestRequest) ToModel() *m.ServiceRequestModel {
	return &m.ServiceRequestModel{
		RequestCustomerID:  r.RequestCustomerID,
		RequestProviderID:  r.RequestProviderID,
		RequestCategoryID:  r.RequestCategoryID,
		RequestAreaID:      r.RequestAreaID,
		RequestAddress:     r.RequestAddress,
		RequestDescription: r.RequestDescription,
		RequestCost:        r.RequestCost,
		RequestStatus:      "pending",
	}
}

// PATCH /service-requests/:id/status
type UpdateRequestStatusRequest struct {
	RequestStatus string `json:"request_status" validate:"required,oneof=pending accepted in_progress completed cancelled"`
}

// List / Query params
type ListServiceRequestQuery struct {
	CustomerID *uint `query:"customer_id" validate:"omitempty,gt=0"`
	ProviderID *uint `query:"provider_id" validate:"omitempty,gt=0"`
}

/* =============== RESPONSES =============== */

type ServiceRequestResponse struct {
	RequestID uint `json:"request_id"`

	RequestCustomerID uint                                 `json:"request_customer_id"`
	Customer          *customerDto.CustomerResponse        `json:"customer,omitempty"`
	RequestProviderID *uint                                `json:"request_provider_id,omitempty"`
	Provider          *providerDto.ServiceProviderResponse `json:"provider,omitempty"`
	RequestCategoryID uint                                 `json:"request_category_id"`
	Category          *categoryDto.ServiceCategoryResponse `json:"category,omitempty"`
	RequestAreaID     uint                                 `json:"request_area_id"`
	Area              *areaDto.ServiceAreaResponse         `json:"area,omitempty"`

	RequestAddress     string   `json:"request_address"`
	RequestDescription *string  `json:"request_description,omitempty"`
	RequestStatus      string   `json:"request_status"`
	RequestCost        *float64 `json:"request_cost,omitempty"`

	RequestCreatedAt   time.Time  `json:"request_created_at"`
	RequestCancelledAt *time.Time `json:"request_cancelled_at,omitempty"`
}

/* =============== MAPPERS =============== */

func FromModel(x m.ServiceRequestModel) ServiceRequestResponse {
	resp := ServiceRequestResponse{
		RequestID:          x.RequestID,
		RequestCustomerID:  x.RequestCustomerID,
		RequestProviderID:  x.RequestProviderID,
		RequestCategoryID:  x.RequestCategoryID,
		RequestAreaID:      x.RequestAreaID,
		RequestAddress:     x.RequestAddress,
		RequestDescription: x.RequestDescription,
		RequestStatus:      x.RequestStatus,
		RequestCost:        x.RequestCost,
		RequestCreatedAt:   x.RequestCreatedAt,
		RequestCancelledAt: x.RequestCancelledAt,
	}
	if x.Customer != nil {
		customer := customerDto.FromModel(*x.Customer)
		resp.Customer = &customer
	}
	if x.Provider != nil {
		provider := providerDto.FromModel(*x.Provider)
		resp.Provider = &provider
	}
	if x.Category != nil {
		category := categoryDto.FromModel(*x.Category)
		resp.Category = &category
	}
	if x.Area != nil {
		area := areaDto.FromModel(*x.Area)
		resp.Area = &area
	}
	return resp
}

func FromModels(list []m.ServiceRequestModel) []ServiceRequestResponse {
	out := make([]ServiceRequestResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
