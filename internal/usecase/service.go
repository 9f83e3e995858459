package usecase

import (
	"kubra-market/internal/data/repository"
	"kubra-market/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Product ProductService
	Order   OrderService
	Shop    ShopService
	Rental  RentalService
	Sales   SalesService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, log),
		User:    NewUserService(repo.User, log),
		Product: NewProductService(repo.Product, log),
		Order:   NewOrderService(repo, log),
		Shop:    NewShopService(repo.Shop, log),
		Rental:  NewRentalService(repo.Rental, log),
		Sales:   NewSalesService(repo.Sale, log),
	}
}
