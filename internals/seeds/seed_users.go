// file: internals/seeds/seed_users.go
package seeds

import (
	"log"

	"gorm.io/gorm"

	constants "layananku_backend/internals/constants"
	areaModel "layananku_backend/internals/features/areas/model"
	categoryModel "layananku_backend/internals/features/categories/model"
	customerModel "layananku_backend/internals/features/customers/model"
	providerModel "layananku_backend/internals/features/providers/model"
	helper "layananku_backend/internals/helpers"
)

type demoCustomer struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Address   string
	AreaIdx   int
	Password  string
}

type demoProvider struct {
	FirstName   string
	LastName    string
	Email       string
	Phone       string
	Address     string
	AreaIdx     int
	HourlyRate  float64
	Password    string
	CategoryIdx []int
}

// SeedDemoCustomers: akun pelanggan demo, idempoten (cek email dulu).
// Kredensial hanya dicetak ke log server.
func SeedDemoCustomers(db *gorm.DB, areas []areaModel.ServiceAreaModel) error {
	data := []demoCustomer{
		{"Ali", "Hassan", "ali@customer.com", "+961 70 123456", "Mar Elias Street, Beirut", 0, "customer123"},
		{"Sara", "Khalil", "sara@customer.com", "+961 76 654321", "Hamra Main Street, Beirut", 1, "customer123"},
	}

	created := 0
	for _, d := range data {
		var existing customerModel.CustomerModel
		err := db.First(&existing, "customer_email = ?", d.Email).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		hash, err := helper.HashPassword(d.Password)
		if err != nil {
			return err
		}
		areaID := areas[d.AreaIdx].AreaID
		row := customerModel.CustomerModel{
			CustomerFirstName:    d.FirstName,
			CustomerLastName:     d.LastName,
			CustomerEmail:        d.Email,
			CustomerPhone:        d.Phone,
			CustomerAddress:      d.Address,
			CustomerAreaID:       &areaID,
			CustomerPasswordHash: hash,
		}
		if err := db.Create(&row).Error; err != nil {
			return err
		}
		log.Printf("  • customer %s %s | %s / %s", d.FirstName, d.LastName, d.Email, d.Password)
		created++
	}

	log.Printf("✓ Seeded %d demo customers", created)
	return nil
}

// SeedDemoProviders: akun penyedia jasa demo beserta kategorinya, idempoten.
func SeedDemoProviders(db *gorm.DB, areas []areaModel.ServiceAreaModel, categories []categoryModel.ServiceCategoryModel) error {
	data := []demoProvider{
		{"Hassan", "Electrician", "hassan@provider.com", "+961 70 111222", "Downtown Beirut", 0, 35.00, "provider123", []int{0}},
		{"Rami", "Plumber", "rami@provider.com", "+961 70 999888", "Jounieh Center", 3, 30.00, "provider123", []int{1}},
		{"Nabil", "Mechanic", "nabil@provider.com", "+961 71 555444", "Tripoli Industrial Zone", 6, 40.00, "provider123", []int{2}},
		{"Layla", "Cleaning", "layla@provider.com", "+961 76 333222", "Verdun Street, Beirut", 2, 25.00, "provider123", []int{3}},
	}

	created := 0
	for _, d := range data {
		var existing providerModel.ServiceProviderModel
		err := db.First(&existing, "provider_email = ?", d.Email).Error
		if err == nil {
			continue
		}
		if err != gorm.ErrRecordNotFound {
			return err
		}

		hash, err := helper.HashPassword(d.Password)
		if err != nil {
			return err
		}
		areaID := areas[d.AreaIdx].AreaID
		row := providerModel.ServiceProviderModel{
			ProviderFirstName:    d.FirstName,
			ProviderLastName:     d.LastName,
			ProviderEmail:        d.Email,
			ProviderPhone:        d.Phone,
			ProviderAddress:      d.Address,
			ProviderAreaID:       &areaID,
			ProviderHourlyRate:   d.HourlyRate,
			ProviderAvailability: constants.AvailabilityAvailable,
			ProviderPasswordHash: hash,
		}

		if err := db.Transaction(func(tx *gorm.DB) error {
			if err := tx.Create(&row).Error; err != nil {
				return err
			}
			for _, ci := range d.CategoryIdx {
				pc := providerModel.ProviderCategoryModel{
					ProviderID: row.ProviderID,
					CategoryID: categories[ci].CategoryID,
				}
				if err := tx.Create(&pc).Error; err != nil {
					return err
				}
			}
			return nil
		}); err != nil {
			return err
		}

		log.Printf("  • provider %s %s | %s / %s", d.FirstName, d.LastName, d.Email, d.Password)
		created++
	}

	log.Printf("✓ Seeded %d demo providers", created)
	return nil
}
