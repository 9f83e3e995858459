package response

import (
	"kubra-market/internal/data/entity"
)

type ShopResponse struct {
	ID            int64             `json:"id"`
	MerchantID    int64             `json:"merchantId"`
	Name          string            `json:"name"`
	Phone         *string           `json:"phone,omitempty"`
	Email         *string           `json:"email,omitempty"`
	Address       *string           `json:"address,omitempty"`
	Description   *string           `json:"description,omitempty"`
	Banner        *string           `json:"banner,omitempty"`
	BusinessHours map[string]string `json:"businessHours,omitempty"`
}

func ShopToResponse(shop *entity.Shop) ShopResponse {
	return ShopResponse{
		ID:            shop.ID,
		MerchantID:    shop.MerchantID,
		Name:          shop.Name,
		Phone:         shop.Phone,
		Email:         shop.Email,
		Address:       shop.Address,
		Description:   shop.Description,
		Banner:        shop.Banner,
		BusinessHours: shop.BusinessHours,
	}
}
