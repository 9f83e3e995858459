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

type RentalRepository interface {
	Create(ctx context.Context, rental *entity.Rental) error
	FindByMerchant(ctx context.Context, merchantID int64) (*entity.Rental, error)
	FindPayments(ctx context.Context, rentalID int64) ([]*entity.RentalPayment, error)
	// SubmitPayment records the payment and marks the rental paid as one unit.
	SubmitPayment(ctx context.Context, payment *entity.RentalPayment) error
}

type rentalRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRentalRepository(db database.PgxIface, log *zap.Logger) RentalRepository {
	return &rentalRepository{
		db:  db,
		log: log.With(zap.String("repository", "rental")),
	}
}

func (r *rentalRepository) Create(ctx context.Context, rental *entity.Rental) error {
	query := `
		INSERT INTO rentals (merchant_id, amount, due_date, status,
		                    lease_start_date, lease_end_date, security_deposit)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query,
		rental.MerchantID,
		rental.Amount,
		rental.DueDate,
		rental.Status,
		rental.LeaseStartDate,
		rental.LeaseEndDate,
		rental.SecurityDeposit,
	).Scan(&rental.ID)

	if err != nil {
		r.log.Error("Failed to create rental",
			zap.Error(err),
			zap.Int64("merchant_id", rental.MerchantID),
		)
		return fmt.Errorf("create rental for merchant %d: %w", rental.MerchantID, err)
	}

	return nil
}

func (r *rentalRepository) FindByMerchant(ctx context.Context, merchantID int64) (*entity.Rental, error) {
	query := `
		SELECT id, merchant_id, amount, due_date, status,
		       lease_start_date, lease_end_date, security_deposit
		FROM rentals
		WHERE merchant_id = $1
		ORDER BY due_date DESC
		LIMIT 1
	`

	var rental entity.Rental
	err := r.db.QueryRow(ctx, query, merchantID).Scan(
		&rental.ID,
		&rental.MerchantID,
		&rental.Amount,
		&rental.DueDate,
		&rental.Status,
		&rental.LeaseStartDate,
		&rental.LeaseEndDate,
		&rental.SecurityDeposit,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find rental by merchant",
			zap.Error(err),
			zap.Int64("merchant_id", merchantID),
		)
		return nil, fmt.Errorf("find rental by merchant %d: %w", merchantID, err)
	}

	return &rental, nil
}

func (r *rentalRepository) FindPayments(ctx context.Context, rentalID int64) ([]*entity.RentalPayment, error) {
	query := `
		SELECT id, rental_id, payment_id, amount, method, status, date
		FROM rental_payments
		WHERE rental_id = $1
		ORDER BY date DESC
	`

	rows, err := r.db.Query(ctx, query, rentalID)
	if err != nil {
		r.log.Error("Failed to find rental payments",
			zap.Error(err),
			zap.Int64("rental_id", rentalID),
		)
		return nil, fmt.Errorf("find payments for rental %d: %w", rentalID, err)
	}
	defer rows.Close()

	var payments []*entity.RentalPayment
	for rows.Next() {
		var payment entity.RentalPayment
		err := rows.Scan(
			&payment.ID,
			&payment.RentalID,
			&payment.PaymentID,
			&payment.Amount,
			&payment.Method,
			&payment.Status,
			&payment.Date,
		)
		if err != nil {
			r.log.Error("Failed to scan rental payment row", zap.Error(err))
			return nil, fmt.Errorf("scan rental payment row: %w", err)
		}
		payments = append(payments, &payment)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate rental payment rows: %w", err)
	}

	return payments, nil
}

// SubmitPayment inserts the payment and flips the rental status to paid in
// one transaction. Neither write is observable without the other.
func (r *rentalRepository) SubmitPayment(ctx context.Context, payment *entity.RentalPayment) error {
	err := database.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		insertQuery := `
			INSERT INTO rental_payments (rental_id, payment_id, amount, method, status, date)
			VALUES ($1, $2, $3, $4, $5, $6)
			RETURNING id
		`

		err := tx.QueryRow(ctx, insertQuery,
			payment.RentalID,
			payment.PaymentID,
			payment.Amount,
			payment.Method,
			payment.Status,
			payment.Date,
		).Scan(&payment.ID)
		if err != nil {
			if database.IsUniqueViolation(err) {
				return fmt.Errorf("payment %s: %w", payment.PaymentID, apperrors.ErrConflict)
			}
			return fmt.Errorf("create rental payment %s: %w", payment.PaymentID, err)
		}

		updateQuery := `UPDATE rentals SET status = $2 WHERE id = $1`

		result, err := tx.Exec(ctx, updateQuery, payment.RentalID, entity.RentalStatusPaid)
		if err != nil {
			return fmt.Errorf("mark rental %d paid: %w", payment.RentalID, err)
		}
		if result.RowsAffected() == 0 {
			return fmt.Errorf("rental %d: %w", payment.RentalID, apperrors.ErrNotFound)
		}

		return nil
	})

	if err != nil {
		r.log.Error("Failed to submit rental payment",
			zap.Error(err),
			zap.Int64("rental_id", payment.RentalID),
			zap.String("payment_id", payment.PaymentID),
		)
		return err
	}

	return nil
}
