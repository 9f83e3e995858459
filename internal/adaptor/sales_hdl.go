package adaptor

import (
	"net/http"
	"time"

	"kubra-market/internal/usecase"
	"kubra-market/pkg/utils"

	"go.uber.org/zap"
)

type SalesHandler struct {
	service usecase.SalesService
	log     *zap.Logger
}

func NewSalesHandler(service usecase.SalesService, log *zap.Logger) *SalesHandler {
	return &SalesHandler{
		service: service,
		log:     log.With(zap.String("handler", "sales")),
	}
}

// GetDailySales handles GET /api/sales/daily?date=YYYY-MM-DD (defaults to today)
func (h *SalesHandler) GetDailySales(w http.ResponseWriter, r *http.Request) {
	merchantID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	date, err := utils.ParseDate(r.URL.Query().Get("date"), time.Now())
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid date, expected YYYY-MM-DD", nil)
		return
	}

	sales, err := h.service.Daily(r.Context(), merchantID, date)
	if err != nil {
		handleServiceError(w, h.log, err, "get daily sales")
		return
	}

	utils.ResponseSuccess(w, "Daily sales retrieved successfully", sales)
}

// GetTotalSales handles GET /api/sales/total?startDate=...&endDate=...
// Defaults to the current month so far.
func (h *SalesHandler) GetTotalSales(w http.ResponseWriter, r *http.Request) {
	merchantID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	now := time.Now()
	startDate, err := utils.ParseDate(r.URL.Query().Get("startDate"), utils.StartOfMonth(now))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid startDate, expected YYYY-MM-DD", nil)
		return
	}
	endDate, err := utils.ParseDate(r.URL.Query().Get("endDate"), now)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid endDate, expected YYYY-MM-DD", nil)
		return
	}

	sales, err := h.service.Total(r.Context(), merchantID, startDate, endDate)
	if err != nil {
		handleServiceError(w, h.log, err, "get total sales")
		return
	}

	utils.ResponseSuccess(w, "Total sales retrieved successfully", sales)
}

// GetSales handles GET /api/sales/range?startDate=...&endDate=...
// Defaults to the current month so far.
func (h *SalesHandler) GetSales(w http.ResponseWriter, r *http.Request) {
	merchantID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok {
		utils.ResponseUnauthorized(w, "Unauthorized")
		return
	}

	now := time.Now()
	startDate, err := utils.ParseDate(r.URL.Query().Get("startDate"), utils.StartOfMonth(now))
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid startDate, expected YYYY-MM-DD", nil)
		return
	}
	endDate, err := utils.ParseDate(r.URL.Query().Get("endDate"), now)
	if err != nil {
		utils.ResponseBadRequest(w, "Invalid endDate, expected YYYY-MM-DD", nil)
		return
	}

	sales, err := h.service.ByDateRange(r.Context(), merchantID, startDate, endDate)
	if err != nil {
		handleServiceError(w, h.log, err, "get sales")
		return
	}

	utils.ResponseSuccess(w, "Sales retrieved successfully", sales)
}
