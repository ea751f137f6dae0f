// file: internals/features/payments/dto/payment_dto.go
package dto

import (
	"time"

	model "layananku_backend/internals/features/payments/model"
)

/* ======================== REQUEST DTO ======================== */

type CreatePaymentRequest struct {
	PaymentRequestID uint    `json:"payment_request_id" validate:"required,gt=0"`
	PaymentAmount    float64 `json:"payment_amount" validate:"gte=0"`
	PaymentMethod    string  `json:"payment_method" validate:"required,oneof=credit_card debit_card cash paypal bank_transfer"`
	PaymentStatus    string  `json:"payment_status" validate:"omitempty,oneof=pending completed failed refunded"`
}

func (r CreatePaymentRequest) ToModel() model.PaymentModel {
	status := r.PaymentStatus
	if status == "" {
		status = "pending"
	}
	return model.PaymentModel{
		PaymentRequestID: r.PaymentRequestID,
		PaymentAmount:    r.PaymentAmount,
		PaymentMethod:    r.PaymentMethod,
		PaymentStatus:    status,
	}
}

// UpdatePaymentRequest: partial update, field nil tidak disentuh.
type UpdatePaymentRequest struct {
	PaymentAmount *float64 `json:"payment_amount" validate:"omitempty,gte=0"`
	PaymentMethod *string  `json:"payment_method" validate:"omitempty,oneof=credit_card debit_card cash paypal bank_transfer"`
	PaymentStatus *string  `json:"payment_status" validate:"omitempty,oneof=pending completed failed refunded"`
}

/* ======================== RESPONSE DTO ======================== */

type PaymentResponse struct {
	PaymentID        uint      `json:"payment_id"`
	PaymentRequestID uint      `json:"payment_request_id"`
	PaymentAmount    float64   `json:"payment_amount"`
	PaymentMethod    string    `json:"payment_method"`
	PaymentStatus    string    `json:"payment_status"`
	PaymentDate      time.Time `json:"payment_date"`
}

func FromModel(m model.PaymentModel) PaymentResponse {
	return PaymentResponse{
		PaymentID:        m.PaymentID,
		PaymentRequestID: m.PaymentRequestID,
		PaymentAmount:    m.PaymentAmount,
		PaymentMethod:    m.PaymentMethod,
		PaymentStatus:    m.PaymentStatus,
		PaymentDate:      m.PaymentDate,
	}
}

func FromModels(rows []model.PaymentModel) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, FromModel(m))
	}
	return out
}
