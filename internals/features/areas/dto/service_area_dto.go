package dto

import (
	m "layananku_backend/internals/features/areas/model"
)

/* =============== REQUESTS =============== */

type CreateServiceAreaRequest struct {
	AreaCity       string `json:"area_city"        validate:"required,max=100"`
	AreaDistrict   string `json:"area_district"    validate:"required,max=100"`
	AreaPostalCode string `json:"area_postal_code" validate:"required,max=20"`
}

func (r CreateServiceAreaRequest) ToModel() *m.ServiceAreaModel {
	return &m.ServiceAreaModel{
		AreaCity:       r.AreaCity,
		AreaDistrict:   r.AreaDistrict,
		AreaPostalCode: r.AreaPostalCode,
	}
}

/* =============== RESPONSES =============== */

type ServiceAreaResponse struct {
	AreaID         uint   `json:"area_id"`
	AreaCity       string `json:"area_city"`
	AreaDistrict   string `json:"area_district"`
	AreaPostalCode string `json:"area_postal_code"`
}

/* =============== MAPPERS =============== */

func FromModel(x m.ServiceAreaModel) ServiceAreaResponse {
	return ServiceAreaResponse{
		AreaID:         x.AreaID,
		AreaCity:       x.AreaCity,
		AreaDistrict:   x.AreaDistrict,
		AreaPostalCode: x.AreaPostalCode,
	}
}

func FromModels(list []m.ServiceAreaModel) []ServiceAreaResponse {
	out := make([]ServiceAreaResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
