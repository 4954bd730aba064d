// Package entity defines the domain entities for the auth feature.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account represents a registered user and their simulated cash balance.
type Account struct {
	// ID is the unique identifier for the account.
	ID uint `gorm:"primaryKey"`

	// Username is the login name. It must be unique across all accounts.
	Username string `gorm:"uniqueIndex;size:64;not null"`

	// PasswordHash is the bcrypt hash of the account's password.
	// Plaintext passwords are never stored.
	PasswordHash string `gorm:"size:255;not null"`

	// Cash is the current simulated cash balance. It always equals the
	// resulting balance of the account's latest ledger entry, or the
	// registration seed if no entries exist.
	Cash decimal.Decimal `gorm:"type:decimal(20,4);not null"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time

	// UpdatedAt is the timestamp when the account was last updated.
	UpdatedAt time.Time
}
