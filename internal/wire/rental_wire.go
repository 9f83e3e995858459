package wire

import (
	"kubra-market/internal/adaptor"
	"kubra-market/internal/data/repository"
	"kubra-market/pkg/middleware"
	"kubra-market/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireRental(
	r chi.Router,
	rentalHandler *adaptor.RentalHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	r.With(middleware.Auth(repo.User, config.JWT.Secret, log)).Route("/api/rental", func(r chi.Router) {
		r.Get("/", rentalHandler.GetRental)
		r.Get("/payments", rentalHandler.GetRentalPayments)
		r.Post("/payment", rentalHandler.SubmitRentalPayment)
	})
}
