package model

type ServiceCategoryModel struct {
	CategoryID uint `gorm:"column:category_id;primaryKey;autoIncrement" json:"category_id"`

	CategoryName        string  `gorm:"column:category_name;type:varchar(100);not null;unique" json:"category_name"`
	CategoryDescription *string `gorm:"column:category_description;type:varchar(255)" json:"category_description,omitempty"`
}

func (ServiceCategoryModel) TableName() string { return "service_categories" }
