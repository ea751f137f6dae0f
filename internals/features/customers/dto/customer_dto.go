package dto

import (
	"time"

	areaDto "layananku_backend/internals/features/areas/dto"
	m "layananku_backend/internals/features/customers/model"
)

/* =============== REQUESTS =============== */

type CreateCustomerRequest struct {
	CustomerFirstName string `json:"customer_first_name" validate:"required,max=50"`
	CustomerLastName  string `json:"customer_last_name"  validate:"required,max=50"`
	CustomerEmail     string `json:"customer_email"      validate:"required,email,max=100"`
	CustomerPhone     string `json:"customer_phone"      validate:"required,max=30"`
	CustomerAddress   string `json:"customer_address"    validate:"required,max=255"`
	CustomerAreaID    *uint  `json:"customer_area_id"    validate:"omitempty,gt=0"`
	CustomerPassword  string `json:"customer_password"   validate:"required,min=8"`
}

// ToModel tidak menyalin password; hashing dilakukan controller.
func (r CreateCustomerRequest) ToModel() *m.CustomerModel {
	return &m.CustomerModel{
		CustomerFirstName: r.CustomerFirstName,
		CustomerLastName:  r.CustomerLastName,
		CustomerEmail:     r.CustomerEmail,
		CustomerPhone:     r.CustomerPhone,
		CustomerAddress:   r.CustomerAddress,
		CustomerAreaID:    r.CustomerAreaID,
	}
}

/* =============== RESPONSES =============== */

type CustomerResponse struct {
	CustomerID           uint                         `json:"customer_id"`
	CustomerFirstName    string                       `json:"customer_first_name"`
	CustomerLastName     string                       `json:"customer_last_name"`
	CustomerEmail        string                       `json:"customer_email"`
	CustomerPhone        string                       `json:"customer_phone"`
	CustomerAddress      string                       `json:"customer_address"`
	CustomerAreaID       *uint                        `json:"customer_area_id,omitempty"`
	Area                 *areaDto.ServiceAreaResponse `json:"area,omitempty"`
	CustomerRegisteredAt time.Time                    `json:"customer_registered_at"`
}

/* =============== MAPPERS =============== */

func FromModel(x m.CustomerModel) CustomerResponse {
	resp := CustomerResponse{
		CustomerID:           x.CustomerID,
		CustomerFirstName:    x.CustomerFirstName,
		CustomerLastName:     x.CustomerLastName,
		CustomerEmail:        x.CustomerEmail,
		CustomerPhone:        x.CustomerPhone,
		CustomerAddress:      x.CustomerAddress,
		CustomerAreaID:       x.CustomerAreaID,
		CustomerRegisteredAt: x.CustomerRegisteredAt,
	}
	if x.Area != nil {
		area := areaDto.FromModel(*x.Area)
		resp.Area = &area
	}
	return resp
}

func FromModels(list []m.CustomerModel) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
