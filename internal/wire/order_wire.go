package wire

import (
	"kubra-market/internal/adaptor"
	"kubra-market/internal/data/repository"
	"kubra-market/pkg/middleware"
	"kubra-market/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireOrder(
	r chi.Router,
	orderHandler *adaptor.OrderHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.With(middleware.Auth(repo.User, config.JWT.Secret, log)).Route("/api/orders", func(r chi.Router) {
		r.Get("/", orderHandler.GetOrders)
		r.Get("/{id}", orderHandler.GetOrder)
		r.Get("/{id}/items", orderHandler.GetOrderItems)
		r.Put("/{id}/status", orderHandler.UpdateOrderStatus)
	})
}
