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

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id int64) (*entity.Product, error)
	FindByMerchant(ctx context.Context, merchantID int64) ([]*entity.Product, error)
	FindLowStock(ctx context.Context, merchantID int64, threshold int) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id int64) error
}

type productRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewProductRepository(db database.PgxIface, log *zap.Logger) ProductRepository {
	return &productRepository{
		db:  db,
		log: log.With(zap.String("repository", "product")),
	}
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (name, description, price, stock, image, status, merchant_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		product.Name,
		product.Description,
		product.Price,
		product.Stock,
		product.Image,
		product.Status,
		product.MerchantID,
	).Scan(&product.ID)

	if err != nil {
		r.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
			zap.Int64("merchant_id", product.MerchantID),
		)
		return fmt.Errorf("create product %s: %w", product.Name, err)
	}

	return nil
}

func (r *productRepository) FindByID(ctx context.Context, id int64) (*entity.Product, error) {
	query := `
		SELECT id, name, description, price, stock, image, status, merchant_id
		FROM products
		WHERE id = $1
	`

	var product entity.Product
	err := r.db.QueryRow(ctx, query, id).Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.Stock,
		&product.Image,
		&product.Status,
		&product.MerchantID,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.Int64("product_id", id),
		)
		return nil, fmt.Errorf("find product by ID %d: %w", id, err)
	}

	return &product, nil
}

func (r *productRepository) FindByMerchant(ctx context.Context, merchantID int64) ([]*entity.Product, error) {
	query := `
		SELECT id, name, description, price, stock, image, status, merchant_id
		FROM products
		WHERE merchant_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, merchantID)
	if err != nil {
		r.log.Error("Failed to find products by merchant",
			zap.Error(err),
			zap.Int64("merchant_id", merchantID),
		)
		return nil, fmt.Errorf("find products by merchant %d: %w", merchantID, err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

// FindLowStock returns products at or below threshold, lowest stock first.
// Ties break on id, which matches insertion order.
func (r *productRepository) FindLowStock(ctx context.Context, merchantID int64, threshold int) ([]*entity.Product, error) {
	query := `
		SELECT id, name, description, price, stock, image, status, merchant_id
		FROM products
		WHERE merchant_id = $1 AND stock <= $2
		ORDER BY stock ASC, id ASC
	`

	rows, err := r.db.Query(ctx, query, merchantID, threshold)
	if err != nil {
		r.log.Error("Failed to find low stock products",
			zap.Error(err),
			zap.Int64("merchant_id", merchantID),
			zap.Int("threshold", threshold),
		)
		return nil, fmt.Errorf("find low stock products for merchant %d: %w", merchantID, err)
	}
	defer rows.Close()

	return scanProducts(rows)
}

func scanProducts(rows pgx.Rows) ([]*entity.Product, error) {
	var products []*entity.Product
	for rows.Next() {
		var product entity.Product
		err := rows.Scan(
			&product.ID,
			&product.Name,
			&product.Description,
			&product.Price,
			&product.Stock,
			&product.Image,
			&product.Status,
			&product.MerchantID,
		)
		if err != nil {
			return nil, fmt.Errorf("scan product row: %w", err)
		}
		products = append(products, &product)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate product rows: %w", err)
	}

	return products, nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	query := `
		UPDATE products
		SET name = $2, description = $3, price = $4, stock = $5, image = $6, status = $7
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		product.ID,
		product.Name,
		product.Description,
		product.Price,
		product.Stock,
		product.Image,
		product.Status,
	)

	if err != nil {
		r.log.Error("Failed to update product",
			zap.Error(err),
			zap.Int64("product_id", product.ID),
		)
		return fmt.Errorf("update product %d: %w", product.ID, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %d: %w", product.ID, apperrors.ErrNotFound)
	}

	return nil
}

func (r *productRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM products WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete product",
			zap.Error(err),
			zap.Int64("product_id", id),
		)
		return fmt.Errorf("delete product %d: %w", id, err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("product %d: %w", id, apperrors.ErrNotFound)
	}

	r.log.Info("Product deleted", zap.Int64("product_id", id))
	return nil
}
