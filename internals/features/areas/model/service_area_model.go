package model

type ServiceAreaModel struct {
	AreaID uint `gorm:"column:area_id;primaryKey;autoIncrement" json:"area_id"`

	// Kombinasi kota + kecamatan + kode pos harus unik
	AreaCity       string `gorm:"column:area_city;type:varchar(100);not null;uniqueIndex:uk_area_location" json:"area_city"`
	AreaDistrict   string `gorm:"column:area_district;type:varchar(100);not null;uniqueIndex:uk_area_location" json:"area_district"`
	AreaPostalCode string `gorm:"column:area_postal_code;type:varchar(20);not null;uniqueIndex:uk_area_location" json:"area_postal_code"`
}

func (ServiceAreaModel) TableName() string { return "service_areas" }
