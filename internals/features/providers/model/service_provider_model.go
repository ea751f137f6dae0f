package model

import (
	"time"

	areaModel "layananku_backend/internals/features/areas/model"
	categoryModel "layananku_backend/internals/features/categories/model"
)

type ServiceProviderModel struct {
	ProviderID uint `gorm:"column:provider_id;primaryKey;autoIncrement" json:"provider_id"`

	ProviderFirstName string `gorm:"column:provider_first_name;type:varchar(50);not null" json:"provider_first_name"`
	ProviderLastName  string `gorm:"column:provider_last_name;type:varchar(50);not null" json:"provider_last_name"`
	ProviderEmail     string `gorm:"column:provider_email;type:varchar(100);not null;unique" json:"provider_email"`
	ProviderPhone     string `gorm:"column:provider_phone;type:varchar(30);not null" json:"provider_phone"`
	ProviderAddress   string `gorm:"column:provider_address;type:varchar(255);not null" json:"provider_address"`

	// FK area (nullable → SET NULL saat area dihapus)
	ProviderAreaID *uint                       `gorm:"column:provider_area_id" json:"provider_area_id,omitempty"`
	Area           *areaModel.ServiceAreaModel `gorm:"foreignKey:ProviderAreaID;references:AreaID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"area,omitempty"`

	ProviderHourlyRate   float64 `gorm:"column:provider_hourly_rate;type:numeric(10,2);not null;check:provider_hourly_rate >= 0" json:"provider_hourly_rate"`
	ProviderAvailability string  `gorm:"column:provider_availability;type:varchar(20);not null;default:available" json:"provider_availability"`

	ProviderPasswordHash string `gorm:"column:provider_password_hash;type:varchar(255);not null" json:"-"`

	ProviderJoinedAt time.Time `gorm:"column:provider_joined_at;autoCreateTime" json:"provider_joined_at"`

	// Kategori yang dilayani (lewat tabel provider_categories)
	Categories []categoryModel.ServiceCategoryModel `gorm:"many2many:provider_categories;foreignKey:ProviderID;joinForeignKey:ProviderID;references:CategoryID;joinReferences:CategoryID" json:"categories,omitempty"`
}

func (ServiceProviderModel) TableName() string { return "service_providers" }
