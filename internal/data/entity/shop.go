package entity

// Shop profile, one per merchant. BusinessHours maps day name to free-text
// opening hours and is stored as jsonb.
type Shop struct {
	ID            int64             `db:"id"`
	MerchantID    int64             `db:"merchant_id"`
	Name          string            `db:"name"`
	Phone         *string           `db:"phone"`
	Email         *string           `db:"email"`
	Address       *string           `db:"address"`
	Description   *string           `db:"description"`
	Banner        *string           `db:"banner"`
	BusinessHours map[string]string `db:"business_hours"`
}
