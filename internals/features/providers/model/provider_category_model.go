package model

import (
	categoryModel "layananku_backend/internals/features/categories/model"
)

// ProviderCategoryModel: asosiasi many-to-many provider ↔ kategori.
// Hapus provider atau kategori → baris asosiasi ikut terhapus.
type ProviderCategoryModel struct {
	ProviderID uint `gorm:"column:provider_id;primaryKey" json:"provider_id"`
	CategoryID uint `gorm:"column:category_id;primaryKey" json:"category_id"`

	Provider *ServiceProviderModel               `gorm:"foreignKey:ProviderID;references:ProviderID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
	Category *categoryModel.ServiceCategoryModel `gorm:"foreignKey:CategoryID;references:CategoryID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"-"`
}

func (ProviderCategoryModel) TableName() string { return "provider_categories" }
