package model

import (
	"time"

	areaModel "layananku_backend/internals/features/areas/model"
)

type CustomerModel struct {
	CustomerID uint `gorm:"column:customer_id;primaryKey;autoIncrement" json:"customer_id"`

	CustomerFirstName string `gorm:"column:customer_first_name;type:varchar(50);not null" json:"customer_first_name"`
	CustomerLastName  string `gorm:"column:customer_last_name;type:varchar(50);not null" json:"customer_last_name"`
	CustomerEmail     string `gorm:"column:customer_email;type:varchar(100);not null;unique" json:"customer_email"`
	CustomerPhone     string `gorm:"column:customer_phone;type:varchar(30);not null" json:"customer_phone"`
	CustomerAddress   string `gorm:"column:customer_address;type:varchar(255);not null" json:"customer_address"`

	// FK area (nullable → SET NULL saat area dihapus)
	CustomerAreaID *uint                       `gorm:"column:customer_area_id" json:"customer_area_id,omitempty"`
	Area           *areaModel.ServiceAreaModel `gorm:"foreignKey:CustomerAreaID;references:AreaID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"area,omitempty"`

	CustomerPasswordHash string `gorm:"column:customer_password_hash;type:varchar(255);not null" json:"-"`

	CustomerRegisteredAt time.Time `gorm:"column:customer_registered_at;autoCreateTime" json:"customer_registered_at"`
}

func (CustomerModel) TableName() string { return "customers" }
