// Package adapters provides repository implementations for the trading
// feature.
package adapters

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	authentity "github.com/amyzliao/finance/internal/feature/auth/domain/entity"
	"github.com/amyzliao/finance/internal/feature/trading/domain/entity"
	"github.com/amyzliao/finance/internal/feature/trading/usecase"
)

// ledgerGorm is the GORM implementation of the LedgerRepository interface.
type ledgerGorm struct {
	db *gorm.DB
}

// Compile-time check that ledgerGorm implements LedgerRepository.
var _ usecase.LedgerRepository = (*ledgerGorm)(nil)

// NewLedgerGorm creates a new instance of ledgerGorm with the given
// gorm.DB connection.
func NewLedgerGorm(db *gorm.DB) *ledgerGorm {
	return &ledgerGorm{db: db}
}

// Record appends one ledger entry and writes the account's new balance in
// a single transaction. The account row is locked for the duration so the
// balance and position the build callback sees cannot change underneath
// it; any error from the callback rolls everything back.
func (r *ledgerGorm) Record(ctx context.Context, accountID uint, build usecase.BuildFunc) (*entity.LedgerEntry, error) {
	var out *entity.LedgerEntry

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		q := tx
		// SQLite has no row locks; its writes serialize on the whole
		// database, so the clause is only needed on Postgres.
		if tx.Dialector.Name() == "postgres" {
			q = tx.Clauses(clause.Locking{Strength: "UPDATE"})
		}

		var acct authentity.Account
		if err := q.First(&acct, accountID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return usecase.ErrAccountNotFound
			}
			return err
		}

		position := func(symbol string) (int64, error) {
			return sumShareDelta(tx, accountID, symbol)
		}

		entry, err := build(acct.Cash, position)
		if err != nil {
			return err
		}

		if err := tx.Create(entry).Error; err != nil {
			return err
		}
		if err := tx.Model(&authentity.Account{}).
			Where("id = ?", accountID).
			Update("cash", entry.ResultingBalance).Error; err != nil {
			return err
		}

		out = entry
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// Entries returns all ledger entries for the account ordered by primary
// key, which is the insertion order.
func (r *ledgerGorm) Entries(ctx context.Context, accountID uint) ([]entity.LedgerEntry, error) {
	var entries []entity.LedgerEntry
	err := r.db.WithContext(ctx).
		Where("account_id = ?", accountID).
		Order("id ASC").
		Find(&entries).Error
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// Positions returns the derived position per symbol by summing share
// deltas, dropping symbols whose position has returned to zero.
func (r *ledgerGorm) Positions(ctx context.Context, accountID uint) (map[string]int64, error) {
	var rows []struct {
		Symbol string
		Shares int64
	}
	err := r.db.WithContext(ctx).
		Model(&entity.LedgerEntry{}).
		Select("symbol, SUM(share_delta) AS shares").
		Where("account_id = ? AND symbol IS NOT NULL", accountID).
		Group("symbol").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	positions := make(map[string]int64, len(rows))
	for _, row := range rows {
		if row.Shares != 0 {
			positions[row.Symbol] = row.Shares
		}
	}
	return positions, nil
}

// sumShareDelta computes one symbol's derived position inside tx.
func sumShareDelta(tx *gorm.DB, accountID uint, symbol string) (int64, error) {
	var total int64
	err := tx.Model(&entity.LedgerEntry{}).
		Select("COALESCE(SUM(share_delta), 0)").
		Where("account_id = ? AND symbol = ?", accountID, symbol).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
