package request

type CreateShopRequest struct {
	Name          string            `json:"name" validate:"required,min=1,max=200"`
	Phone         *string           `json:"phone,omitempty"`
	Email         *string           `json:"email,omitempty" validate:"omitempty,email"`
	Address       *string           `json:"address,omitempty"`
	Description   *string           `json:"description,omitempty"`
	Banner        *string           `json:"banner,omitempty"`
	BusinessHours map[string]string `json:"businessHours,omitempty"`
}

type UpdateShopRequest struct {
	Name          *string           `json:"name,omitempty" validate:"omitempty,min=1,max=200"`
	Phone         *string           `json:"phone,omitempty"`
	Email         *string           `json:"email,omitempty" validate:"omitempty,email"`
	Address       *string           `json:"address,omitempty"`
	Description   *string           `json:"description,omitempty"`
	Banner        *string           `json:"banner,omitempty"`
	BusinessHours map[string]string `json:"businessHours,omitempty"`
}
