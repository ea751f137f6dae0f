// file: internals/features/payments/model/payment_model.go
package model

import (
	"time"

	requestModel "layananku_backend/internals/features/requests/model"
)

// PaymentModel: satu permintaan layanan maksimal punya satu baris pembayaran
// (uniqueIndex pada payment_request_id).
type PaymentModel struct {
	PaymentID        uint    `gorm:"column:payment_id;primaryKey;autoIncrement" json:"payment_id"`
	PaymentRequestID uint    `gorm:"column:payment_request_id;not null;uniqueIndex:uk_payment_request" json:"payment_request_id"`
	PaymentAmount    float64 `gorm:"column:payment_amount;type:numeric(10,2);not null;check:payment_amount >= 0" json:"payment_amount"`
	PaymentMethod    string  `gorm:"column:payment_method;type:varchar(30);not null" json:"payment_method"`
	PaymentStatus    string  `gorm:"column:payment_status;type:varchar(20);not null;default:pending" json:"payment_status"`

	PaymentDate time.Time `gorm:"column:payment_date;autoCreateTime" json:"payment_date"`

	Request *requestModel.ServiceRequestModel `gorm:"foreignKey:PaymentRequestID;references:RequestID;constraint:OnDelete:CASCADE" json:"request,omitempty"`
}

func (PaymentModel) TableName() string {
	return "payments"
}
