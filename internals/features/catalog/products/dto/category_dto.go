package dto

type CreateCategoryRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}

type CreateSubCategoryRequest struct {
	CategoryID string `json:"category_id" validate:"required,uuid"`
	Name       string `json:"name" validate:"required,min=2,max=100"`
}

type CreateBrandRequest struct {
	Name string `json:"name" validate:"required,min=2,max=100"`
}
