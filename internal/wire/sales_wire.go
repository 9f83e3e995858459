package wire

import (
	"kubra-market/internal/adaptor"
	"kubra-market/internal/data/repository"
	"kubra-market/pkg/middleware"
	"kubra-market/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireSales(
	r chi.Router,
	salesHandler *adaptor.SalesHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.With(middleware.Auth(repo.User, config.JWT.Secret, log)).Route("/api/sales", func(r chi.Router) {
		r.Get("/daily", salesHandler.GetDailySales)
		r.Get("/total", salesHandler.GetTotalSales)
		r.Get("/range", salesHandler.GetSales)
	})
}
