// file: internals/seeds/seed_categories.go
package seeds

import (
	"log"

	"gorm.io/gorm"

	categoryModel "layananku_backend/internals/features/categories/model"
)

func strptr(s string) *string { return &s }

// SeedServiceCategories: kategori jasa demo, idempoten.
func SeedServiceCategories(db *gorm.DB) ([]categoryModel.ServiceCategoryModel, error) {
	data := []categoryModel.ServiceCategoryModel{
		{CategoryName: "Electrician", CategoryDescription: strptr("Electrical repairs and installations")},
		{CategoryName: "Plumber", CategoryDescription: strptr("Plumbing repairs and installations")},
		{CategoryName: "Mechanic", CategoryDescription: strptr("Car and vehicle repairs")},
		{CategoryName: "Cleaning", CategoryDescription: strptr("Home and office cleaning services")},
		{CategoryName: "AC Repair", CategoryDescription: strptr("Air conditioning repair and maintenance")},
		{CategoryName: "Carpenter", CategoryDescription: strptr("Carpentry and furniture work")},
		{CategoryName: "Painter", CategoryDescription: strptr("Interior and exterior painting")},
	}

	out := make([]categoryModel.ServiceCategoryModel, 0, len(data))
	for _, cat := range data {
		var existing categoryModel.ServiceCategoryModel
		err := db.First(&existing, "category_name = ?", cat.CategoryName).Error
		if err == nil {
			out = append(out, existing)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		if err := db.Create(&cat).Error; err != nil {
			return nil, err
		}
		out = append(out, cat)
	}

	log.Printf("✓ Seeded %d service categories", len(data))
	return out, nil
}
