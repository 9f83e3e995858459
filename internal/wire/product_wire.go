package wire

import (
	"kubra-market/internal/adaptor"
	"kubra-market/internal/data/repository"
	"kubra-market/pkg/middleware"
	"kubra-market/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireProduct(
	r chi.Router,
	productHandler *adaptor.ProductHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.With(middleware.Auth(repo.User, config.JWT.Secret, log)).Route("/api/products", func(r chi.Router) {
		r.Get("/", productHandler.GetProducts)
		r.Post("/", productHandler.CreateProduct)
		// Registered before /{id} so the literal path wins
		r.Get("/low-stock", productHandler.GetLowStockProducts)
		r.Get("/{id}", productHandler.GetProduct)
		r.Put("/{id}", productHandler.UpdateProduct)
		r.Delete("/{id}", productHandler.DeleteProduct)
	})
}
