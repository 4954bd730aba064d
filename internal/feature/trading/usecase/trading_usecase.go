package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	quoteentity "github.com/amyzliao/finance/internal/feature/quote/domain/entity"
	"github.com/amyzliao/finance/internal/feature/trading/domain/entity"
)

// PositionFunc returns the derived position (sum of share deltas) for a
// symbol, read inside the same transaction as the pending write.
type PositionFunc func(symbol string) (int64, error)

// BuildFunc decides a mutation given the transactional view of the account.
// It receives the current cash balance and a position lookup, and returns
// the single ledger entry to append, or an error to abort the whole
// operation with nothing written.
type BuildFunc func(cash decimal.Decimal, position PositionFunc) (*entity.LedgerEntry, error)

// LedgerRepository abstracts the append-only transaction ledger.
// Following Go convention, the interface is defined by the consumer
// (usecase) rather than the provider (adapters).
type LedgerRepository interface {
	// Record runs build inside one database transaction with the account
	// row locked. On success the returned entry has been appended and the
	// account balance updated to the entry's resulting balance; on error
	// neither happened.
	Record(ctx context.Context, accountID uint, build BuildFunc) (*entity.LedgerEntry, error)

	// Entries returns every ledger entry for the account in insertion
	// order.
	Entries(ctx context.Context, accountID uint) ([]entity.LedgerEntry, error)

	// Positions returns the nonzero derived positions for the account,
	// keyed by symbol.
	Positions(ctx context.Context, accountID uint) (map[string]int64, error)
}

// QuoteProvider resolves ticker symbols to live quotes.
type QuoteProvider interface {
	Lookup(ctx context.Context, symbol string) (*quoteentity.Quote, error)
}

// Receipt summarizes a completed mutating operation for rendering.
type Receipt struct {
	Date       time.Time        `json:"date"`
	EntryType  entity.EntryType `json:"type"`
	Symbol     string           `json:"symbol,omitempty"`
	Name       string           `json:"name,omitempty"`
	UnitPrice  decimal.Decimal  `json:"unit_price"`
	Shares     int64            `json:"shares"`
	Total      decimal.Decimal  `json:"total"`
	NewBalance decimal.Decimal  `json:"new_balance"`
}

// HistoryItem is a ledger entry annotated with a display sign: "-" for
// outflows (buy, cash remove), "+" for inflows (sell, cash add). The sign
// is a presentation concern, not part of the stored entry.
type HistoryItem struct {
	entity.LedgerEntry
	Sign string `json:"sign"`
}

// tradingUsecase implements buy, sell, cash adjustment and history on top
// of the ledger.
type tradingUsecase struct {
	ledger LedgerRepository
	quotes QuoteProvider
}

// NewTradingUsecase creates a new instance of tradingUsecase.
func NewTradingUsecase(ledger LedgerRepository, quotes QuoteProvider) *tradingUsecase {
	return &tradingUsecase{ledger: ledger, quotes: quotes}
}

// today returns the current calendar date. Ledger dates carry no time of
// day; insertion order is the authoritative ordering.
func today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Buy purchases shares of a symbol at the current quoted price.
// Preconditions: shares must be positive, the symbol must resolve to a
// quote, and the total cost must not exceed the cash balance. On success
// one buy entry is appended and the balance reduced, atomically.
func (u *tradingUsecase) Buy(ctx context.Context, accountID uint, symbol string, shares int64) (*Receipt, error) {
	if shares < 1 {
		return nil, ErrInvalidShares
	}

	q, err := u.quotes.Lookup(ctx, strings.ToUpper(strings.TrimSpace(symbol)))
	if err != nil {
		return nil, err
	}
	cost := q.Price.Mul(decimal.NewFromInt(shares))

	entry, err := u.ledger.Record(ctx, accountID, func(cash decimal.Decimal, _ PositionFunc) (*entity.LedgerEntry, error) {
		if cost.GreaterThan(cash) {
			return nil, ErrInsufficientFunds
		}
		sym := q.Symbol
		return &entity.LedgerEntry{
			AccountID:        accountID,
			Date:             today(),
			Symbol:           &sym,
			UnitPrice:        q.Price,
			ShareDelta:       shares,
			TotalAmount:      cost,
			ResultingBalance: cash.Sub(cost),
			EntryType:        entity.EntryBuy,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return receiptFrom(entry, q.Name), nil
}

// Sell sells shares of a currently held symbol at the current quoted
// price. The derived position is pre-checked for early, distinct errors
// and re-checked inside the transaction, which is authoritative.
func (u *tradingUsecase) Sell(ctx context.Context, accountID uint, symbol string, shares int64) (*Receipt, error) {
	if shares < 1 {
		return nil, ErrInvalidShares
	}
	sym := strings.ToUpper(strings.TrimSpace(symbol))

	positions, err := u.ledger.Positions(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if positions[sym] <= 0 {
		return nil, ErrSymbolNotHeld
	}
	if positions[sym] < shares {
		return nil, ErrInsufficientShares
	}

	q, err := u.quotes.Lookup(ctx, sym)
	if err != nil {
		return nil, err
	}
	proceeds := q.Price.Mul(decimal.NewFromInt(shares))

	entry, err := u.ledger.Record(ctx, accountID, func(cash decimal.Decimal, position PositionFunc) (*entity.LedgerEntry, error) {
		held, err := position(sym)
		if err != nil {
			return nil, err
		}
		if held <= 0 {
			return nil, ErrSymbolNotHeld
		}
		if held < shares {
			return nil, ErrInsufficientShares
		}
		return &entity.LedgerEntry{
			AccountID:        accountID,
			Date:             today(),
			Symbol:           &sym,
			UnitPrice:        q.Price,
			ShareDelta:       -shares,
			TotalAmount:      proceeds,
			ResultingBalance: cash.Add(proceeds),
			EntryType:        entity.EntrySell,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return receiptFrom(entry, q.Name), nil
}

// Deposit adds cash to the account.
func (u *tradingUsecase) Deposit(ctx context.Context, accountID uint, amount decimal.Decimal) (*Receipt, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	entry, err := u.ledger.Record(ctx, accountID, func(cash decimal.Decimal, _ PositionFunc) (*entity.LedgerEntry, error) {
		return &entity.LedgerEntry{
			AccountID:        accountID,
			Date:             today(),
			TotalAmount:      amount,
			ResultingBalance: cash.Add(amount),
			EntryType:        entity.EntryCashAdd,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return receiptFrom(entry, ""), nil
}

// Withdraw removes cash from the account, rejecting amounts above the
// current balance.
func (u *tradingUsecase) Withdraw(ctx context.Context, accountID uint, amount decimal.Decimal) (*Receipt, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	entry, err := u.ledger.Record(ctx, accountID, func(cash decimal.Decimal, _ PositionFunc) (*entity.LedgerEntry, error) {
		if amount.GreaterThan(cash) {
			return nil, ErrInsufficientCash
		}
		return &entity.LedgerEntry{
			AccountID:        accountID,
			Date:             today(),
			TotalAmount:      amount,
			ResultingBalance: cash.Sub(amount),
			EntryType:        entity.EntryCashRemove,
		}, nil
	})
	if err != nil {
		return nil, err
	}
	return receiptFrom(entry, ""), nil
}

// History returns the account's full ledger in insertion order, each entry
// annotated with its display sign.
func (u *tradingUsecase) History(ctx context.Context, accountID uint) ([]HistoryItem, error) {
	entries, err := u.ledger.Entries(ctx, accountID)
	if err != nil {
		return nil, err
	}

	items := make([]HistoryItem, 0, len(entries))
	for _, e := range entries {
		sign := "+"
		if e.EntryType.Outflow() {
			sign = "-"
		}
		items = append(items, HistoryItem{LedgerEntry: e, Sign: sign})
	}
	return items, nil
}

// receiptFrom converts an appended ledger entry into a receipt.
func receiptFrom(e *entity.LedgerEntry, name string) *Receipt {
	r := &Receipt{
		Date:       e.Date,
		EntryType:  e.EntryType,
		Name:       name,
		UnitPrice:  e.UnitPrice,
		Total:      e.TotalAmount,
		NewBalance: e.ResultingBalance,
	}
	if e.Symbol != nil {
		r.Symbol = *e.Symbol
	}
	if e.ShareDelta < 0 {
		r.Shares = -e.ShareDelta
	} else {
		r.Shares = e.ShareDelta
	}
	return r
}
