package model

import (
	"time"

	areaModel "layananku_backend/internals/features/areas/model"
	categoryModel "layananku_backend/internals/features/categories/model"
	customerModel "layananku_backend/internals/features/customers/model"
	providerModel "layananku_backend/internals/features/providers/model"
)

type ServiceRequestModel struct {
	RequestID uint `gorm:"column:request_id;primaryKey;autoIncrement" json:"request_id"`

	// FK wajib: hapus customer → request ikut terhapus
	RequestCustomerID uint                         `gorm:"column:request_customer_id;not null" json:"request_customer_id"`
	Customer          *customerModel.CustomerModel `gorm:"foreignKey:RequestCustomerID;references:CustomerID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"customer,omitempty"`

	// FK opsional: hapus provider → request tetap ada, referensinya di-NULL
	RequestProviderID *uint                               `gorm:"column:request_provider_id" json:"request_provider_id,omitempty"`
	Provider          *providerModel.ServiceProviderModel `gorm:"foreignKey:RequestProviderID;references:ProviderID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"provider,omitempty"`

	RequestCategoryID uint                                `gorm:"column:request_category_id;not null" json:"request_category_id"`
	Category          *categoryModel.ServiceCategoryModel `gorm:"foreignKey:RequestCategoryID;references:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"category,omitempty"`

	RequestAreaID uint                        `gorm:"column:request_area_id;not null" json:"request_area_id"`
	Area          *areaModel.ServiceAreaModel `gorm:"foreignKey:RequestAreaID;references:AreaID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"area,omitempty"`

	RequestAddress     string  `gorm:"column:request_address;type:varchar(255);not null" json:"request_address"`
	RequestDescription *string `gorm:"column:request_description;type:text" json:"request_description,omitempty"`

	RequestStatus string   `gorm:"column:request_status;type:varchar(20);not null;default:pending" json:"request_status"`
	RequestCost   *float64 `gorm:"column:request_cost;type:numeric(10,2);check:request_cost >= 0" json:"request_cost,omitempty"`

	RequestCreatedAt   time.Time  `gorm:"column:request_created_at;autoCreateTime" json:"request_created_at"`
	RequestCancelledAt *time.Time `gorm:"column:request_cancelled_at" json:"request_cancelled_at,omitempty"`
}

func (ServiceRequestModel) TableName() string { return "service_requests" }
