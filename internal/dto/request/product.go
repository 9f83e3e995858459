package request

type CreateProductRequest struct {
	Name        string  `json:"name" validate:"required,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	Price       string  `json:"price" validate:"required"`
	Stock       int     `json:"stock" validate:"gte=0"`
	Image       *string `json:"image,omitempty"`
	Status      string  `json:"status" validate:"omitempty,oneof=active draft archived"`
}

type UpdateProductRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty"`
	Price       *string `json:"price,omitempty"`
	Stock       *int    `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Image       *string `json:"image,omitempty"`
	Status      *string `json:"status,omitempty" validate:"omitempty,oneof=active draft archived"`
}
