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

type OrderRepository interface {
	// Create persists the order and all its items atomically.
	Create(ctx context.Context, order *entity.Order, items []*entity.OrderItem) error
	FindByID(ctx context.Context, merchantID, id int64) (*entity.Order, error)
	FindByMerchant(ctx context.Context, merchantID int64) ([]*entity.Order, error)
	FindItems(ctx context.Context, orderID int64) ([]*entity.OrderItem, error)
	UpdateStatus(ctx context.Context, merchantID, id int64, status entity.OrderStatus) error
}

type orderRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewOrderRepository(db database.PgxIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log.With(zap.String("repository", "order")),
	}
}

// Orders are merchant-scoped through their items: a merchant sees an order
// iff one of its items references a product the merchant owns. The scope
// lives in the query so no caller can forget it.
const orderMerchantScope = `
	EXISTS (
		SELECT 1
		FROM order_items oi
		JOIN products p ON p.id = oi.product_id
		WHERE oi.order_id = o.id AND p.merchant_id = $1
	)`

func (r *orderRepository) Create(ctx context.Context, order *entity.Order, items []*entity.OrderItem) error {
	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		query := `
			INSERT INTO orders (order_number, customer_id, customer_name, total, status, created_at)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`

		err := tx.QueryRow(ctx, query,
			order.OrderNumber,
			order.CustomerID,
			order.CustomerName,
			order.Total,
			order.Status,
			order.CreatedAt,
		).Scan(&order.ID)
		if err != nil {
			if database.IsUniqueViolation(err) {
				return fmt.Errorf("order %s: %w", order.OrderNumber, apperrors.ErrConflict)
			}
			return fmt.Errorf("create order %s: %w", order.OrderNumber, err)
		}

		itemQuery := `
			INSERT INTO order_items (order_id, product_id, name, price, quantity, subtotal)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`

		for _, item := range items {
			item.OrderID = order.ID
			err := tx.QueryRow(ctx, itemQuery,
				item.OrderID,
				item.ProductID,
				item.Name,
				item.Price,
				item.Quantity,
				item.Subtotal,
			).Scan(&item.ID)
			if err != nil {
				return fmt.Errorf("create order item for product %d: %w", item.ProductID, err)
			}
		}

		return nil
	})

	if err != nil {
		r.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("order_number", order.OrderNumber),
			zap.Int("items", len(items)),
		)
		return err
	}

	return nil
}

func (r *orderRepository) FindByID(ctx context.Context, merchantID, id int64) (*entity.Order, error) {
	query := `
		SELECT o.id, o.order_number, o.customer_id, o.customer_name, o.total, o.status, o.created_at
		FROM orders o
		WHERE o.id = $2 AND ` + orderMerchantScope

	var order entity.Order
	err := r.db.QueryRow(ctx, query, merchantID, id).Scan(
		&order.ID,
		&order.OrderNumber,
		&order.CustomerID,
		&order.CustomerName,
		&order.Total,
		&order.Status,
		&order.CreatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.Int64("order_id", id),
			zap.Int64("merchant_id", merchantID),
		)
		return nil, fmt.Errorf("find order by ID %d: %w", id, err)
	}

	return &order, nil
}

func (r *orderRepository) FindByMerchant(ctx context.Context, merchantID int64) ([]*entity.Order, error) {
	query := `
		SELECT o.id, o.order_number, o.customer_id, o.customer_name, o.total, o.status, o.created_at
		FROM orders o
		WHERE ` + orderMerchantScope + `
		ORDER BY o.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, merchantID)
	if err != nil {
		r.log.Error("Failed to find orders by merchant",
			zap.Error(err),
			zap.Int64("merchant_id", merchantID),
		)
		return nil, fmt.Errorf("find orders by merchant %d: %w", merchantID, err)
	}
	defer rows.Close()

	var orders []*entity.Order
	for rows.Next() {
		var order entity.Order
		err := rows.Scan(
			&order.ID,
			&order.OrderNumber,
			&order.CustomerID,
			&order.CustomerName,
			&order.Total,
			&order.Status,
			&order.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan order row", zap.Error(err))
			return nil, fmt.Errorf("scan order row: %w", err)
		}
		orders = append(orders, &order)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order rows: %w", err)
	}

	return orders, nil
}

func (r *orderRepository) FindItems(ctx context.Context, orderID int64) ([]*entity.OrderItem, error) {
	query := `
		SELECT id, order_id, product_id, name, price, quantity, subtotal
		FROM order_items
		WHERE order_id = $1
		ORDER BY id
	`

	rows, err := r.db.Query(ctx, query, orderID)
	if err != nil {
		r.log.Error("Failed to find order items",
			zap.Error(err),
			zap.Int64("order_id", orderID),
		)
		return nil, fmt.Errorf("find items for order %d: %w", orderID, err)
	}
	defer rows.Close()

	var items []*entity.OrderItem
	for rows.Next() {
		var item entity.OrderItem
		err := rows.Scan(
			&item.ID,
			&item.OrderID,
			&item.ProductID,
			&item.Name,
			&item.Price,
			&item.Quantity,
			&item.Subtotal,
		)
		if err != nil {
			r.log.Error("Failed to scan order item row", zap.Error(err))
			return nil, fmt.Errorf("scan order item row: %w", err)
		}
		items = append(items, &item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate order item rows: %w", err)
	}

	return items, nil
}

func (r *orderRepository) UpdateStatus(ctx context.Context, merchantID, id int64, status entity.OrderStatus) error {
	query := `
		UPDATE orders o
		SET status = $3
		WHERE o.id = $2 AND ` + orderMerchantScope

	result, err := r.db.Exec(ctx, query, merchantID, id, status)
	if err != nil {
		r.log.Error("Failed to update order status",
			zap.Error(err),
			zap.Int64("order_id", id),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update order %d status to %s: %w", id, string(status), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("order %d: %w", id, apperrors.ErrNotFound)
	}

	return nil
}
