// Package usecase implements the business logic for the portfolio feature.
package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	authentity "github.com/amyzliao/finance/internal/feature/auth/domain/entity"
	quoteentity "github.com/amyzliao/finance/internal/feature/quote/domain/entity"
)

// PositionSource exposes the nonzero derived positions of an account.
// Following Go convention, the interface is defined by the consumer
// (usecase) rather than the provider (the trading adapters).
type PositionSource interface {
	Positions(ctx context.Context, accountID uint) (map[string]int64, error)
}

// AccountRepository reads account state for valuation.
type AccountRepository interface {
	FindByID(ctx context.Context, id uint) (*authentity.Account, error)
}

// QuoteProvider resolves ticker symbols to live quotes.
type QuoteProvider interface {
	Lookup(ctx context.Context, symbol string) (*quoteentity.Quote, error)
}

// Holding is one valued position.
type Holding struct {
	Symbol string          `json:"symbol"`
	Name   string          `json:"name"`
	Shares int64           `json:"shares"`
	Price  decimal.Decimal `json:"price"`
	Value  decimal.Decimal `json:"value"`
}

// Valuation is the full portfolio view: every held position valued at the
// live price, plus cash.
type Valuation struct {
	Holdings    []Holding       `json:"holdings"`
	StockTotal  decimal.Decimal `json:"stock_total"`
	Cash        decimal.Decimal `json:"cash"`
	TotalAssets decimal.Decimal `json:"total_assets"`
}

// portfolioUsecase values an account's ledger-derived holdings.
type portfolioUsecase struct {
	positions PositionSource
	accounts  AccountRepository
	quotes    QuoteProvider
}

// NewPortfolioUsecase creates a new instance of portfolioUsecase.
func NewPortfolioUsecase(positions PositionSource, accounts AccountRepository, quotes QuoteProvider) *portfolioUsecase {
	return &portfolioUsecase{positions: positions, accounts: accounts, quotes: quotes}
}

// Valuation computes the portfolio view for an account: derived positions
// with zero-share symbols dropped, each valued at the live quote, summed
// with the cash balance. A failed quote lookup fails the whole request;
// no price is ever guessed.
func (u *portfolioUsecase) Valuation(ctx context.Context, accountID uint) (*Valuation, error) {
	acct, err := u.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	positions, err := u.positions.Positions(ctx, accountID)
	if err != nil {
		return nil, err
	}

	symbols := make([]string, 0, len(positions))
	for sym := range positions {
		symbols = append(symbols, sym)
	}
	sort.Strings(symbols)

	holdings := make([]Holding, 0, len(symbols))
	stockTotal := decimal.Zero
	for _, sym := range symbols {
		q, err := u.quotes.Lookup(ctx, sym)
		if err != nil {
			return nil, fmt.Errorf("quote %s: %w", sym, err)
		}
		shares := positions[sym]
		value := q.Price.Mul(decimal.NewFromInt(shares))
		holdings = append(holdings, Holding{
			Symbol: sym,
			Name:   q.Name,
			Shares: shares,
			Price:  q.Price,
			Value:  value,
		})
		stockTotal = stockTotal.Add(value)
	}

	return &Valuation{
		Holdings:    holdings,
		StockTotal:  stockTotal,
		Cash:        acct.Cash,
		TotalAssets: stockTotal.Add(acct.Cash),
	}, nil
}
