package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Brand struct {
	BrandID   uuid.UUID `gorm:"column:brand_id;type:uuid;default:gen_random_uuid();primaryKey" json:"brand_id"`
	BrandName string    `gorm:"column:brand_name;type:varchar(100);not null" json:"brand_name"`
	BrandSlug string    `gorm:"column:brand_slug;type:varchar(120);not null;unique" json:"brand_slug"`
	BrandLogo *string   `gorm:"column:brand_logo;type:text" json:"brand_logo,omitempty"`

	BrandIsActive bool `gorm:"column:brand_is_active;not null;default:true" json:"brand_is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Brand) TableName() string {
	return "brands"
}
