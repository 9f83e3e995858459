package request

type SubmitRentalPaymentRequest struct {
	Amount string `json:"amount" validate:"required"`
	Method string `json:"method" validate:"required,oneof=card bank_transfer cash mobile"`
}
