package seeds

import (
	"gorm.io/gorm"

	productModel "tokorakit_backend/internals/features/catalog/products/model"
	addressModel "tokorakit_backend/internals/features/shopping/addresses/model"
	referenceModel "tokorakit_backend/internals/features/shopping/references/model"
	helper "tokorakit_backend/internals/helpers"
)

func SeedCouriers(db *gorm.DB) error {
	names := []string{"JNE", "J&T Express", "SiCepat", "AnterAja", "Pos Indonesia"}
	for _, name := range names {
		courier := referenceModel.Courier{CourierName: name, CourierIsActive: true}
		if err := db.Where("courier_name = ?", name).
			FirstOrCreate(&courier).Error; err != nil {
			return err
		}
	}
	return nil
}

func SeedPaymentMethods(db *gorm.DB) error {
	methods := []referenceModel.PaymentMethod{
		{PaymentMethodName: "Transfer BCA", PaymentMethodAccountName: "Toko Rakit", PaymentMethodAccountNumber: "8830112233"},
		{PaymentMethodName: "Transfer BRI", PaymentMethodAccountName: "Toko Rakit", PaymentMethodAccountNumber: "002201004455667"},
		{PaymentMethodName: "Transfer Mandiri", PaymentMethodAccountName: "Toko Rakit", PaymentMethodAccountNumber: "1370099887766"},
	}
	for _, m := range methods {
		m.PaymentMethodIsActive = true
		if err := db.Where("payment_method_name = ?", m.PaymentMethodName).
			FirstOrCreate(&m).Error; err != nil {
			return err
		}
	}
	return nil
}

func SeedRegions(db *gorm.DB) error {
	regions := map[string][]string{
		"DKI Jakarta":      {"Jakarta Pusat", "Jakarta Selatan", "Jakarta Barat", "Jakarta Timur", "Jakarta Utara"},
		"Jawa Barat":       {"Bandung", "Bekasi", "Bogor", "Depok", "Cimahi"},
		"Jawa Tengah":      {"Semarang", "Surakarta", "Magelang"},
		"Jawa Timur":       {"Surabaya", "Malang", "Sidoarjo"},
		"DI Yogyakarta":    {"Yogyakarta", "Sleman", "Bantul"},
		"Banten":           {"Tangerang", "Tangerang Selatan", "Serang"},
		"Sumatera Utara":   {"Medan", "Binjai"},
		"Sulawesi Selatan": {"Makassar", "Parepare"},
	}

	for provinceName, cities := range regions {
		province := addressModel.Province{ProvinceName: provinceName}
		if err := db.Where("province_name = ?", provinceName).
			FirstOrCreate(&province).Error; err != nil {
			return err
		}
		for _, cityName := range cities {
			city := addressModel.City{
				CityProvinceID: province.ProvinceID,
				CityName:       cityName,
			}
			if err := db.Where("city_province_id = ? AND city_name = ?", province.ProvinceID, cityName).
				FirstOrCreate(&city).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// SeedCatalogBase mengisi kategori komponen PC standar dan beberapa brand.
func SeedCatalogBase(db *gorm.DB) error {
	categories := map[string][]string{
		"Processor":    {"Intel", "AMD"},
		"Motherboard":  {"ATX", "Micro-ATX", "Mini-ITX"},
		"RAM":          {"DDR4", "DDR5"},
		"Storage":      {"SSD NVMe", "SSD SATA", "HDD"},
		"VGA":          {"NVIDIA", "AMD Radeon"},
		"PSU":          {},
		"Casing":       {},
		"Cooler":       {"Air Cooler", "Liquid Cooler"},
		"Monitor":      {},
		"Peripherals":  {"Keyboard", "Mouse", "Headset"},
	}
	for categoryName, subs := range categories {
		category := productModel.Category{
			CategoryName:     categoryName,
			CategorySlug:     helper.GenerateSlug(categoryName),
			CategoryIsActive: true,
		}
		if err := db.Where("category_name = ?", categoryName).
			FirstOrCreate(&category).Error; err != nil {
			return err
		}
		for _, subName := range subs {
			sub := productModel.SubCategory{
				SubCategoryCategoryID: category.CategoryID,
				SubCategoryName:       subName,
				SubCategorySlug:       helper.GenerateSlug(categoryName + " " + subName),
				SubCategoryIsActive:   true,
			}
			if err := db.Where("sub_category_category_id = ? AND sub_category_name = ?", category.CategoryID, subName).
				FirstOrCreate(&sub).Error; err != nil {
				return err
			}
		}
	}

	brands := []string{"ASUS", "MSI", "Gigabyte", "Corsair", "Kingston", "Samsung", "Western Digital", "Logitech"}
	for _, name := range brands {
		brand := productModel.Brand{
			BrandName:     name,
			BrandSlug:     helper.GenerateSlug(name),
			BrandIsActive: true,
		}
		if err := db.Where("brand_name = ?", name).
			FirstOrCreate(&brand).Error; err != nil {
			return err
		}
	}
	return nil
}
