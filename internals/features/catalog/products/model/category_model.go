package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Category struct {
	CategoryID   uuid.UUID `gorm:"column:category_id;type:uuid;default:gen_random_uuid();primaryKey" json:"category_id"`
	CategoryName string    `gorm:"column:category_name;type:varchar(100);not null" json:"category_name"`
	CategorySlug string    `gorm:"column:category_slug;type:varchar(120);not null;unique" json:"category_slug"`

	CategoryIsActive bool `gorm:"column:category_is_active;not null;default:true" json:"category_is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`
}

func (Category) TableName() string {
	return "categories"
}

type SubCategory struct {
	SubCategoryID         uuid.UUID `gorm:"column:sub_category_id;type:uuid;default:gen_random_uuid();primaryKey" json:"sub_category_id"`
	SubCategoryCategoryID uuid.UUID `gorm:"column:sub_category_category_id;type:uuid;not null;index" json:"sub_category_category_id"`
	SubCategoryName       string    `gorm:"column:sub_category_name;type:varchar(100);not null" json:"sub_category_name"`
	SubCategorySlug       string    `gorm:"column:sub_category_slug;type:varchar(120);not null;unique" json:"sub_category_slug"`

	SubCategoryIsActive bool `gorm:"column:sub_category_is_active;not null;default:true" json:"sub_category_is_active"`

	CreatedAt time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"column:deleted_at;index" json:"deleted_at,omitempty"`

	Category *Category `gorm:"foreignKey:SubCategoryCategoryID;references:CategoryID" json:"category,omitempty"`
}

func (SubCategory) TableName() string {
	return "sub_categories"
}
