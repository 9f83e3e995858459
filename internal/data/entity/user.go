package entity

import (
	"time"
)

// User is a merchant account. PasswordHash never leaves the storage and
// service layers; response DTOs carry no password field.
type User struct {
	ID           int64     `db:"id"`
	Username     string    `db:"username"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password"`
	Name         string    `db:"name"`
	Phone        *string   `db:"phone"`
	CreatedAt    time.Time `db:"created_at"`
}
