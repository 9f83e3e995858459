package adaptor

import (
	"encoding/json"
	"net/http"

	"kubra-market/internal/dto/request"
	"kubra-market/internal/usecase"
	"kubra-market/pkg/utils"

	"go.uber.org/zap"
)

type ShopHandler struct {
	service usecase.ShopService
	log     *zap.Logger
}

func NewShopHandler(service usecase.ShopService, log *zap.Logger) *ShopHandler {
	return &ShopHandler{
		service: service,
		log:     log.With(zap.String("handler", "shop")),
	}
}

// GetShop handles GET /api/shop
func (h *ShopHandler) GetShop(w http.ResponseWriter, r *http.Request) {
	merchantID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	shop, err := h.service.Get(r.Context(), merchantID)
	if err != nil {
		handleServiceError(w, h.log, err, "get shop")
		return
	}

	utils.ResponseSuccess(w, "Shop retrieved successfully", shop)
}

// CreateShop handles POST /api/shop
func (h *ShopHandler) CreateShop(w http.ResponseWriter, r *http.Request) {
	merchantID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	var req request.CreateShopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	shop, err := h.service.Create(r.Context(), merchantID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create shop")
		return
	}

	utils.ResponseCreated(w, "Shop created successfully", shop)
}

// UpdateShop handles PUT /api/shop
func (h *ShopHandler) UpdateShop(w http.ResponseWriter, r *http.Request) {
	merchantID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	var req request.UpdateShopRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseBadRequest(w, "Invalid request body", nil)
		return
	}

	shop, err := h.service.Update(r.Context(), merchantID, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update shop")
		return
	}

	utils.ResponseSuccess(w, "Shop updated successfully", shop)
}
