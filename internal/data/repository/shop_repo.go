package repository

import (
	"context"
	"fmt"

	"kubra-market/internal/data/entity"
	"kubra-market/pkg/apperrors"
	"kubra-market/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type ShopRepository interface {
	Create(ctx context.Context, shop *entity.Shop) error
	FindByMerchant(ctx context.Context, merchantID int64) (*entity.Shop, error)
	Update(ctx context.Context, shop *entity.Shop) error
}

type shopRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewShopRepository(db database.PgxIface, log *zap.Logger) ShopRepository {
	return &shopRepository{
		db:  db,
		log: log.With(zap.String("repository", "shop")),
	}
}

// Create inserts the merchant's shop. merchant_id is unique, so a second
// shop for the same merchant surfaces as ErrConflict.
func (r *shopRepository) Create(ctx context.Context, shop *entity.Shop) error {
	query := `
		INSERT INTO shops (merchant_id, name, phone, email, address, description, banner, business_hours)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		shop.MerchantID,
		shop.Name,
		shop.Phone,
		shop.Email,
		shop.Address,
		shop.Description,
		shop.Banner,
		shop.BusinessHours,
	).Scan(&shop.ID)

	if err != nil {
		if database.IsUniqueViolation(err) {
			return fmt.Errorf("shop for merchant %d: %w", shop.MerchantID, apperrors.ErrConflict)
		}
		r.log.Error("Failed to create shop",
			zap.Error(err),
			zap.Int64("merchant_id", shop.MerchantID),
		)
		return fmt.Errorf("create shop for merchant %d: %w", shop.MerchantID, err)
	}

	return nil
}

func (r *shopRepository) FindByMerchant(ctx context.Context, merchantID int64) (*entity.Shop, error) {
	query := `
		SELECT id, merchant_id, name, phone, email, address, description, banner, business_hours
		FROM shops
		WHERE merchant_id = $1
	`

	var shop entity.Shop
	err := r.db.QueryRow(ctx, query, merchantID).Scan(
		&shop.ID,
		&shop.MerchantID,
		&shop.Name,
		&shop.Phone,
		&shop.Email,
		&shop.Address,
		&shop.Description,
		&shop.Banner,
		&shop.BusinessHours,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find shop by merchant",
			zap.Error(err),
			zap.Int64("merchant_id", merchantID),
		)
		return nil, fmt.Errorf("find shop by merchant %d: %w", merchantID, err)
	}

	return &shop, nil
}

func (r *shopRepository) Update(ctx context.Context, shop *entity.Shop) error {
	query := `
		UPDATE shops
		SET name = $2, phone = $3, email = $4, address = $5,
		    description = $6, banner = $7, business_hours = $8
		WHERE merchant_id = $1
	`

	result, err := r.db.Exec(ctx, query,
		shop.MerchantID,
		shop.Name,
		shop.Phone,
		shop.Email,
		shop.Address,
		shop.Description,
		shop.Banner,
		shop.BusinessHours,
	)

	if err != nil {
		r.log.Error("Failed to update shop",
			zap.Error(err),
			zap.Int64("merchant_id", shop.MerchantID),
		)
		return fmt.Errorf("update shop for merchant %d: %w", shop.MerchantID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("shop for merchant %d: %w", shop.MerchantID, apperrors.ErrNotFound)
	}

	return nil
}
