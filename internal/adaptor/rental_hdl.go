package adaptor

import (
	"encoding/json"
	"net/http"

	"kubra-market/internal/dto/request"
	"kubra-market/internal/usecase"
	"kubra-market/pkg/utils"

	"go.uber.org/zap"
)

type RentalHandler struct {
	service usecase.RentalService
	log     *zap.Logger
}

func NewRentalHandler(service usecase.RentalService, log *zap.Logger) *RentalHandler {
	return &RentalHandler{
		service: service,
		log:     log.With(zap.String("handler", "rental")),
	}
}

// GetRental handles GET /api/rental
func (h *RentalHandler) GetRental(w http.ResponseWriter, r *http.Request) {
	merchantID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	rental, err := h.service.Get(r.Context(), merchantID)
	if err != nil {
		handleServiceError(w, h.log, err, "get rental")
		return
	}

	utils.ResponseSuccess(w, "Rental retrieved successfully", rental)
}

// GetRentalPayments handles GET /api/rental/payments
func (h *RentalHandler) GetRentalPayments(w http.ResponseWriter, r *http.Request) {
	merchantID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	payments, err := h.service.GetPayments(r.Context(), merchantID)
	if err != nil {
		handleServiceError(w, h.log, err, "get rental payments")
		return
	}

	utils.ResponseSuccess(w, "Rental payments retrieved successfully", payments)
}

// SubmitRentalPayment handles POST /api/rental/payment
func (h *RentalHandler) SubmitRentalPayment(w http.ResponseWriter, r *http.Request) {
	merchantID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	var req request.SubmitRentalPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	payment, err := h.service.SubmitPayment(r.Context(), merchantID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "submit rental payment")
		return
	}

	utils.ResponseCreated(w, "Rental payment submitted successfully", payment)
}
