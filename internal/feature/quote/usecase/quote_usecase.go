// Package usecase implements the business logic for the quote feature.
package usecase

import (
	"context"
	"strings"

	"github.com/amyzliao/finance/internal/feature/quote/domain"
	"github.com/amyzliao/finance/internal/feature/quote/domain/entity"
)

// QuoteProvider abstracts the external price source.
// Following Go convention, the interface is defined by the consumer
// (usecase) rather than the provider (adapters).
type QuoteProvider interface {
	// Lookup returns the current quote for a ticker symbol.
	// It returns domain.ErrUnknownSymbol if the provider cannot resolve it.
	Lookup(ctx context.Context, symbol string) (*entity.Quote, error)
}

// quoteUsecase normalizes symbols and delegates lookups to the provider.
type quoteUsecase struct {
	provider QuoteProvider
}

// NewQuoteUsecase creates a new instance of quoteUsecase.
func NewQuoteUsecase(provider QuoteProvider) *quoteUsecase {
	return &quoteUsecase{provider: provider}
}

// Lookup resolves a ticker symbol to a quote. Symbols are trimmed and
// upper-cased before hitting the provider, and an empty symbol is treated
// as unresolvable rather than sent out.
func (u *quoteUsecase) Lookup(ctx context.Context, symbol string) (*entity.Quote, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, domain.ErrUnknownSymbol
	}
	return u.provider.Lookup(ctx, symbol)
}
