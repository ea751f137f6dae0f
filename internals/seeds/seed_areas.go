// file: internals/seeds/seed_areas.go
package seeds

import (
	"log"

	"gorm.io/gorm"

	areaModel "layananku_backend/internals/features/areas/model"
)

// SeedServiceAreas: wilayah layanan demo (regional Lebanon).
// Idempoten: baris yang sudah ada dipakai ulang, tidak diduplikasi.
func SeedServiceAreas(db *gorm.DB) ([]areaModel.ServiceAreaModel, error) {
	data := []areaModel.ServiceAreaModel{
		{AreaCity: "Beirut", AreaDistrict: "Achrafieh", AreaPostalCode: "1100"},
		{AreaCity: "Beirut", AreaDistrict: "Hamra", AreaPostalCode: "1103"},
		{AreaCity: "Beirut", AreaDistrict: "Verdun", AreaPostalCode: "1102"},
		{AreaCity: "Mount Lebanon", AreaDistrict: "Jounieh", AreaPostalCode: "1200"},
		{AreaCity: "Mount Lebanon", AreaDistrict: "Jbeil", AreaPostalCode: "1201"},
		{AreaCity: "Mount Lebanon", AreaDistrict: "Baabda", AreaPostalCode: "1202"},
		{AreaCity: "North Lebanon", AreaDistrict: "Tripoli", AreaPostalCode: "1300"},
		{AreaCity: "North Lebanon", AreaDistrict: "Zgharta", AreaPostalCode: "1301"},
		{AreaCity: "South Lebanon", AreaDistrict: "Sidon", AreaPostalCode: "1400"},
		{AreaCity: "South Lebanon", AreaDistrict: "Tyre", AreaPostalCode: "1401"},
		{AreaCity: "Bekaa", AreaDistrict: "Zahle", AreaPostalCode: "1500"},
		{AreaCity: "Bekaa", AreaDistrict: "Baalbek", AreaPostalCode: "1501"},
	}

	out := make([]areaModel.ServiceAreaModel, 0, len(data))
	for _, a := range data {
		var existing areaModel.ServiceAreaModel
		err := db.First(&existing,
			"area_city = ? AND area_district = ?", a.AreaCity, a.AreaDistrict).Error
		if err == nil {
			out = append(out, existing)
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		if err := db.Create(&a).Error; err != nil {
			return nil, err
		}
		out = append(out, a)
	}

	log.Printf("✓ Seeded %d service areas", len(data))
	return out, nil
}
