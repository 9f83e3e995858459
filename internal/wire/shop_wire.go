package wire

import (
	"kubra-market/internal/adaptor"
	"kubra-market/internal/data/repository"
	"kubra-market/pkg/middleware"
	"kubra-market/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireShop(
	r chi.Router,
	shopHandler *adaptor.ShopHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.With(middleware.Auth(repo.User, config.JWT.Secret, log)).Route("/api/shop", func(r chi.Router) {
		r.Get("/", shopHandler.GetShop)
		r.Post("/", shopHandler.CreateShop)
		r.Put("/", shopHandler.UpdateShop)
	})
}
