// file: internals/features/reviews/dto/review_dto.go
package dto

import (
	"time"

	m "layananku_backend/internals/features/reviews/model"
)

/* =============== REQUESTS =============== */

type CreateReviewRequest struct {
	ReviewRequestID  uint    `json:"review_request_id"  validate:"required,gt=0"`
	ReviewCustomerID uint    `json:"review_customer_id" validate:"required,gt=0"`
	ReviewProviderID uint    `json:"review_provider_id" validate:"required,gt=0"`
	ReviewRating     int     `json:"review_rating"      validate:"required,min=1,max=5"`
	ReviewComment    *string `json:"review_comment"     validate:"omitempty,max=1000"`
}

/* =============== RESPONSES =============== */

type ReviewResponse struct {
	ReviewID         uint      `json:"review_id"`
	ReviewRequestID  uint      `json:"review_request_id"`
	ReviewCustomerID uint      `json:"review_customer_id"`
	ReviewProviderID uint      `json:"review_provider_id"`
	ReviewRating     int       `json:"review_rating"`
	ReviewComment    *string   `json:"review_comment,omitempty"`
	ReviewCreatedAt  time.Time `json:"review_created_at"`

	CustomerName *string `json:"customer_name,omitempty"`
	ProviderName *string `json:"provider_name,omitempty"`
}

/* =============== MAPPERS =============== */

func FromModel(x m.ReviewModel) ReviewResponse {
	resp := ReviewResponse{
		ReviewID:         x.ReviewID,
		ReviewRequestID:  x.ReviewRequestID,
		ReviewCustomerID: x.ReviewCustomerID,
		ReviewProviderID: x.ReviewProviderID,
		ReviewRating:     x.ReviewRating,
		ReviewComment:    x.ReviewComment,
		ReviewCreatedAt:  x.ReviewCreatedAt,
	}
	if x.Customer != nil {
		name := x.Customer.CustomerFirstName + " " + x.Customer.CustomerLastName
		resp.CustomerName = &name
	}
	if x.Provider != nil {
		name := x.Provider.ProviderFirstName + " " + x.Provider.ProviderLastName
		resp.ProviderName = &name
	}
	return resp
}

func FromModels(list []m.ReviewModel) []ReviewResponse {
	out := make([]ReviewResponse, 0, len(list))
	for _, it := range list {
		out = append(out, FromModel(it))
	}
	return out
}
