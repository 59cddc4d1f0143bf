package constants

import "fmt"

// Role yang dikenal sistem
const (
	RoleCustomer   = "customer"
	RoleAdmin      = "admin"
	RoleSuperadmin = "superadmin"
)

// Template pesan error role
const (
	ErrOnlyAdminsCanAccess     = "❌ Hanya admin yang boleh mengakses fitur %s."
	ErrOnlySuperadminCanAccess = "❌ Hanya superadmin yang boleh mengakses fitur %s."
	ErrOnlyCustomerCanAccess   = "❌ Fitur %s hanya untuk pelanggan."
)

// Fungsi helper untuk menghasilkan pesan error dinamis
func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorSuperadmin(feature string) string {
	return fmt.Sprintf(ErrOnlySuperadminCanAccess, feature)
}

func RoleErrorCustomer(feature string) string {
	return fmt.Sprintf(ErrOnlyCustomerCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleCustomer,
		RoleAdmin,
		RoleSuperadmin,
	}

	StaffRoles = []string{
		RoleAdmin,
		RoleSuperadmin,
	}

	AdminOnly = []string{
		RoleAdmin,
	}

	SuperadminOnly = []string{
		RoleSuperadmin,
	}
)
