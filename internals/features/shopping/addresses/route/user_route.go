package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	addressController "tokorakit_backend/internals/features/shopping/addresses/controller"
)

func AddressRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := addressController.NewAddressController(db)

	addresses := api.Group("/addresses")
	addresses.Get("/", ctrl.ListMyAddresses)
	addresses.Post("/", ctrl.CreateAddress)
	addresses.Patch("/:id", ctrl.UpdateAddress)
	addresses.Delete("/:id", ctrl.DeleteAddress)
}

// RegionPublicRoutes: referensi wilayah untuk form alamat
func RegionPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := addressController.NewAddressController(db)

	api.Get("/provinces", ctrl.ListProvinces)
	api.Get("/provinces/:id/cities", ctrl.ListCities)
}
