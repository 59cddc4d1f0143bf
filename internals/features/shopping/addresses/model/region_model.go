package model

import "github.com/google/uuid"

// Data referensi wilayah, diisi lewat seeder.
type Province struct {
	ProvinceID   uuid.UUID `gorm:"column:province_id;type:uuid;default:gen_random_uuid();primaryKey" json:"province_id"`
	ProvinceName string    `gorm:"column:province_name;type:varchar(100);not null;unique" json:"province_name"`
}

func (Province) TableName() string {
	return "provinces"
}

type City struct {
	CityID         uuid.UUID `gorm:"column:city_id;type:uuid;default:gen_random_uuid();primaryKey" json:"city_id"`
	CityProvinceID uuid.UUID `gorm:"column:city_province_id;type:uuid;not null;index" json:"city_province_id"`
	CityName       string    `gorm:"column:city_name;type:varchar(100);not null" json:"city_name"`

	Province *Province `gorm:"foreignKey:CityProvinceID;references:ProvinceID;constraint:OnDelete:RESTRICT" json:"province,omitempty"`
}

func (City) TableName() string {
	return "cities"
}
