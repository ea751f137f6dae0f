// file: internals/features/reviews/model/review_model.go
package model

import (
	"time"

	customerModel "layananku_backend/internals/features/customers/model"
	providerModel "layananku_backend/internals/features/providers/model"
	requestModel "layananku_backend/internals/features/requests/model"
)

// ReviewModel: satu ulasan per permintaan layanan (uniqueIndex pada
// review_request_id). Provider yang diulas diambil dari request saat
// ulasan dibuat, jadi tetap valid meskipun request-nya berubah belakangan.
type ReviewModel struct {
	ReviewID         uint `gorm:"column:review_id;primaryKey;autoIncrement" json:"review_id"`
	ReviewRequestID  uint `gorm:"column:review_request_id;not null;uniqueIndex:uk_review_request" json:"review_request_id"`
	ReviewCustomerID uint `gorm:"column:review_customer_id;not null" json:"review_customer_id"`
	ReviewProviderID uint `gorm:"column:review_provider_id;not null" json:"review_provider_id"`

	ReviewRating  int     `gorm:"column:review_rating;not null;check:review_rating >= 1 AND review_rating <= 5" json:"review_rating"`
	ReviewComment *string `gorm:"column:review_comment;type:text" json:"review_comment,omitempty"`

	ReviewCreatedAt time.Time `gorm:"column:review_created_at;autoCreateTime" json:"review_created_at"`

	Request  *requestModel.ServiceRequestModel   `gorm:"foreignKey:ReviewRequestID;references:RequestID;constraint:OnDelete:CASCADE" json:"request,omitempty"`
	Customer *customerModel.CustomerModel        `gorm:"foreignKey:ReviewCustomerID;references:CustomerID;constraint:OnDelete:CASCADE" json:"customer,omitempty"`
	Provider *providerModel.ServiceProviderModel `gorm:"foreignKey:ReviewProviderID;references:ProviderID;constraint:OnDelete:CASCADE" json:"provider,omitempty"`
}

func (ReviewModel) TableName() string {
	return "reviews"
}
