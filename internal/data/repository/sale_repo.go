package repository

import (
	"context"
	"fmt"
	"time"

	"kubra-market/internal/data/entity"
	"kubra-market/pkg/database"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type SaleRepository interface {
	Create(ctx context.Context, sale *entity.Sale) error
	// SumByDate totals amounts for one exact calendar day.
	SumByDate(ctx context.Context, merchantID int64, date time.Time) (decimal.Decimal, error)
	// SumByDateRange totals amounts where startDate <= date <= endDate.
	SumByDateRange(ctx context.Context, merchantID int64, startDate, endDate time.Time) (decimal.Decimal, error)
	FindByDateRange(ctx context.Context, merchantID int64, startDate, endDate time.Time) ([]*entity.Sale, error)
}

type saleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewSaleRepository(db database.PgxIface, log *zap.Logger) SaleRepository {
	return &saleRepository{
		db:  db,
		log: log.With(zap.String("repository", "sale")),
	}
}

func (r *saleRepository) Create(ctx context.Context, sale *entity.Sale) error {
	query := `
		INSERT INTO sales (merchant_id, date, amount)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		sale.MerchantID,
		sale.Date,
		sale.Amount,
	).Scan(&sale.ID)

	if err != nil {
		r.log.Error("Failed to create sale",
			zap.Error(err),
			zap.Int64("merchant_id", sale.MerchantID),
		)
		return fmt.Errorf("create sale for merchant %d: %w", sale.MerchantID, err)
	}

	return nil
}

// Summation happens in SQL over the numeric column, so currency never passes
// through floating point.
func (r *saleRepository) SumByDate(ctx context.Context, merchantID int64, date time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM sales
		WHERE merchant_id = $1 AND date = $2
	`

	var total decimal.Decimal
	err := r.db.QueryRow(ctx, query, merchantID, date).Scan(&total)
	if err != nil {
		r.log.Error("Failed to sum daily sales",
			zap.Error(err),
			zap.Int64("merchant_id", merchantID),
			zap.Time("date", date),
		)
		return decimal.Zero, fmt.Errorf("sum daily sales for merchant %d: %w", merchantID, err)
	}

	return total, nil
}

func (r *saleRepository) SumByDateRange(ctx context.Context, merchantID int64, startDate, endDate time.Time) (decimal.Decimal, error) {
	query := `
		SELECT COALESCE(SUM(amount), 0)
		FROM sales
		WHERE merchant_id = $1 AND date >= $2 AND date <= $3
	`

	var total decimal.Decimal
	err := r.db.QueryRow(ctx, query, merchantID, startDate, endDate).Scan(&total)
	if err != nil {
		r.log.Error("Failed to sum sales by date range",
			zap.Error(err),
			zap.Int64("merchant_id", merchantID),
			zap.Time("start_date", startDate),
			zap.Time("end_date", endDate),
		)
		return decimal.Zero, fmt.Errorf("sum sales for merchant %d: %w", merchantID, err)
	}

	return total, nil
}

func (r *saleRepository) FindByDateRange(ctx context.Context, merchantID int64, startDate, endDate time.Time) ([]*entity.Sale, error) {
	query := `
		SELECT id, merchant_id, date, amount
		FROM sales
		WHERE merchant_id = $1 AND date >= $2 AND date <= $3
		ORDER BY date
	`

	rows, err := r.db.Query(ctx, query, merchantID, startDate, endDate)
	if err != nil {
		r.log.Error("Failed to find sales by date range",
			zap.Error(err),
			zap.Int64("merchant_id", merchantID),
			zap.Time("start_date", startDate),
			zap.Time("end_date", endDate),
		)
		return nil, fmt.Errorf("find sales for merchant %d: %w", merchantID, err)
	}
	defer rows.Close()

	var sales []*entity.Sale
	for rows.Next() {
		var sale entity.Sale
		err := rows.Scan(
			&sale.ID,
			&sale.MerchantID,
			&sale.Date,
			&sale.Amount,
		)
		if err != nil {
			r.log.Error("Failed to scan sale row", zap.Error(err))
			return nil, fmt.Errorf("scan sale row: %w", err)
		}
		sales = append(sales, &sale)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sale rows: %w", err)
	}

	return sales, nil
}
