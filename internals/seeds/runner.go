package seeds

import (
	"log"

	"gorm.io/gorm"
)

// Run mengisi data awal yang dibutuhkan aplikasi. Semua seeder
// idempoten, aman dijalankan berulang kali (RUN_SEEDS=true).
func Run(db *gorm.DB) {
	log.Println("[SEED] Menjalankan seeder...")

	if err := SeedSuperadmin(db); err != nil {
		log.Printf("[SEED] superadmin gagal: %v", err)
	}
	if err := SeedCouriers(db); err != nil {
		log.Printf("[SEED] kurir gagal: %v", err)
	}
	if err := SeedPaymentMethods(db); err != nil {
		log.Printf("[SEED] metode pembayaran gagal: %v", err)
	}
	if err := SeedRegions(db); err != nil {
		log.Printf("[SEED] wilayah gagal: %v", err)
	}
	if err := SeedCatalogBase(db); err != nil {
		log.Printf("[SEED] katalog dasar gagal: %v", err)
	}

	log.Println("[SEED] Selesai")
}
