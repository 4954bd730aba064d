// Package handler provides HTTP handlers for the quote feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amyzliao/finance/internal/feature/quote/domain"
	"github.com/amyzliao/finance/internal/feature/quote/domain/entity"
)

// QuoteUsecase defines the quote lookup operation.
// Following Go convention, the interface is defined by the consumer
// (handler) rather than the provider (usecase).
type QuoteUsecase interface {
	Lookup(ctx context.Context, symbol string) (*entity.Quote, error)
}

// QuoteHandler handles HTTP requests for quote lookups.
type QuoteHandler struct {
	quotes QuoteUsecase
}

// NewQuoteHandler creates a new instance of QuoteHandler.
func NewQuoteHandler(quotes QuoteUsecase) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

// Get handles GET /quote/:symbol.
// - 422 when the symbol cannot be resolved
// - 502 when the quote provider fails
// - 200 with {symbol, name, price} on success
func (h *QuoteHandler) Get(c *gin.Context) {
	symbol := c.Param("symbol")

	q, err := h.quotes.Lookup(c.Request.Context(), symbol)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownSymbol) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "that is not a valid stock symbol"})
			return
		}
		slog.Error("quote lookup failed", "symbol", symbol, "error", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "quote lookup failed"})
		return
	}

	c.JSON(http.StatusOK, q)
}
