package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	productModel "tokorakit_backend/internals/features/catalog/products/model"
)

type CreateProductRequest struct {
	CategoryID    string   `json:"category_id" validate:"required,uuid"`
	SubCategoryID string   `json:"sub_category_id" validate:"omitempty,uuid"`
	BrandID       string   `json:"brand_id" validate:"required,uuid"`
	Name          string   `json:"name" validate:"required,min=3,max=200"`
	Description   *string  `json:"description"`
	Highlights    []string `json:"highlights" validate:"omitempty,dive,max=200"`
	Price         int64    `json:"price" validate:"required,gt=0"`
	Weight        int      `json:"weight" validate:"omitempty,gte=0"`
}

type UpdateProductRequest struct {
	CategoryID    *string  `json:"category_id" validate:"omitempty,uuid"`
	SubCategoryID *string  `json:"sub_category_id" validate:"omitempty,uuid"`
	BrandID       *string  `json:"brand_id" validate:"omitempty,uuid"`
	Name          *string  `json:"name" validate:"omitempty,min=3,max=200"`
	Description   *string  `json:"description"`
	Highlights    []string `json:"highlights" validate:"omitempty,dive,max=200"`
	Price         *int64   `json:"price" validate:"omitempty,gt=0"`
	Weight        *int     `json:"weight" validate:"omitempty,gte=0"`
	IsActive      *bool    `json:"is_active"`
}

// SetPreOrderRequest: aksi eksplisit admin keluar/masuk status pre_order.
type SetPreOrderRequest struct {
	PreOrder bool `json:"pre_order"`
}

func (r CreateProductRequest) ToModel() productModel.Product {
	catID, _ := uuid.Parse(r.CategoryID)
	brandID, _ := uuid.Parse(r.BrandID)
	m := productModel.Product{
		ProductCategoryID:  catID,
		ProductBrandID:     brandID,
		ProductName:        r.Name,
		ProductDescription: r.Description,
		ProductHighlights:  pq.StringArray(r.Highlights),
		ProductPrice:       r.Price,
		ProductWeight:      r.Weight,
		ProductStatusStock: productModel.StockEmpty,
		ProductIsActive:    true,
	}
	if r.SubCategoryID != "" {
		if subID, err := uuid.Parse(r.SubCategoryID); err == nil {
			m.ProductSubCategoryID = &subID
		}
	}
	return m
}

type ProductResponse struct {
	ProductID   string                  `json:"product_id"`
	Name        string                  `json:"name"`
	Slug        string                  `json:"slug"`
	Description *string                 `json:"description,omitempty"`
	Highlights  []string                `json:"highlights,omitempty"`
	Image       *string                 `json:"image,omitempty"`
	Price       int64                   `json:"price"`
	Weight      int                     `json:"weight"`
	Stock       int                     `json:"stock"`
	StatusStock productModel.StockStatus `json:"status_stock"`
	IsActive    bool                    `json:"is_active"`
	Category    *string                 `json:"category,omitempty"`
	SubCategory *string                 `json:"sub_category,omitempty"`
	Brand       *string                 `json:"brand,omitempty"`
	CreatedAt   time.Time               `json:"created_at"`
}

func ToProductResponse(m productModel.Product) ProductResponse {
	resp := ProductResponse{
		ProductID:   m.ProductID.String(),
		Name:        m.ProductName,
		Slug:        m.ProductSlug,
		Description: m.ProductDescription,
		Highlights:  m.ProductHighlights,
		Image:       m.ProductImage,
		Price:       m.ProductPrice,
		Weight:      m.ProductWeight,
		Stock:       m.ProductStock,
		StatusStock: m.ProductStatusStock,
		IsActive:    m.ProductIsActive,
		CreatedAt:   m.CreatedAt,
	}
	if m.Category != nil {
		resp.Category = &m.Category.CategoryName
	}
	if m.SubCategory != nil {
		resp.SubCategory = &m.SubCategory.SubCategoryName
	}
	if m.Brand != nil {
		resp.Brand = &m.Brand.BrandName
	}
	return resp
}
