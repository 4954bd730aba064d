// Package entity defines the domain entities for the trading feature.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryType classifies a ledger entry.
type EntryType string

// Ledger entry types. Buys and sells move both shares and cash,
// the cash types move cash only.
const (
	EntryBuy        EntryType = "buy"
	EntrySell       EntryType = "sell"
	EntryCashAdd    EntryType = "cash_add"
	EntryCashRemove EntryType = "cash_remove"
)

// Outflow reports whether entries of this type reduce the cash balance.
// History rendering shows outflows with a minus sign.
func (t EntryType) Outflow() bool {
	return t == EntryBuy || t == EntryCashRemove
}

// LedgerEntry is one immutable record of a cash or share-affecting event.
// The ledger is append-only; holdings and balances are always derived from
// it, never stored as mutable position rows.
type LedgerEntry struct {
	// ID is the auto-incremented primary key. Date is a calendar value,
	// so ID carries the true ordering of the ledger.
	ID uint `gorm:"primaryKey" json:"id"`

	// AccountID is the account this entry belongs to.
	AccountID uint `gorm:"index;not null" json:"-"`

	// Date is the calendar date the entry was recorded, not a precise
	// timestamp.
	Date time.Time `gorm:"type:date;not null" json:"date"`

	// Symbol is the ticker symbol for buys and sells, nil for pure cash
	// movements.
	Symbol *string `gorm:"size:16" json:"symbol,omitempty"`

	// UnitPrice is the per-share price at execution time. Zero for cash
	// movements.
	UnitPrice decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"unit_price"`

	// ShareDelta is the signed share movement: positive for buys,
	// negative for sells, zero for cash movements. The derived position
	// for a symbol is the sum of its deltas.
	ShareDelta int64 `gorm:"not null" json:"shares"`

	// TotalAmount is the cash moved by this entry, always positive.
	TotalAmount decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"total"`

	// ResultingBalance is the account's cash balance after this entry.
	ResultingBalance decimal.Decimal `gorm:"type:decimal(20,4);not null" json:"resulting_balance"`

	// EntryType classifies the entry.
	EntryType EntryType `gorm:"size:16;not null" json:"type"`
}
