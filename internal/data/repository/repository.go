package repository

import (
	"kubra-market/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User    UserRepository
	Product ProductRepository
	Order   OrderRepository
	Shop    ShopRepository
	Rental  RentalRepository
	Sale    SaleRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:    NewUserRepository(db, log),
		Product: NewProductRepository(db, log),
		Order:   NewOrderRepository(db, log),
		Shop:    NewShopRepository(db, log),
		Rental:  NewRentalRepository(db, log),
		Sale:    NewSaleRepository(db, log),
	}
}
