// file: internals/seeds/runner.go
package seeds

import (
	"log"

	"gorm.io/gorm"
)

// Run menjalankan seluruh seeder secara berurutan (areas → categories → users).
// Dipanggil dari main kalau env SEED=true. Aman dijalankan berulang kali.
func Run(db *gorm.DB) error {
	log.Println("[INFO] Menjalankan database seeder...")

	areas, err := SeedServiceAreas(db)
	if err != nil {
		return err
	}
	categories, err := SeedServiceCategories(db)
	if err != nil {
		return err
	}
	if err := SeedDemoCustomers(db, areas); err != nil {
		return err
	}
	if err := SeedDemoProviders(db, areas, categories); err != nil {
		return err
	}

	log.Println("✅ Database seeding selesai")
	return nil
}
