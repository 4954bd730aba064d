// Package handler provides HTTP handlers for the trading feature.
package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	quotedomain "github.com/amyzliao/finance/internal/feature/quote/domain"
	"github.com/amyzliao/finance/internal/feature/trading/transport/http/dto"
	"github.com/amyzliao/finance/internal/feature/trading/usecase"
	jwtmw "github.com/amyzliao/finance/internal/platform/jwt"
)

// TradingUsecase defines the trading operations used by the handler.
// Following Go convention, the interface is defined by the consumer
// (handler) rather than the provider (usecase).
type TradingUsecase interface {
	Buy(ctx context.Context, accountID uint, symbol string, shares int64) (*usecase.Receipt, error)
	Sell(ctx context.Context, accountID uint, symbol string, shares int64) (*usecase.Receipt, error)
	Deposit(ctx context.Context, accountID uint, amount decimal.Decimal) (*usecase.Receipt, error)
	Withdraw(ctx context.Context, accountID uint, amount decimal.Decimal) (*usecase.Receipt, error)
	History(ctx context.Context, accountID uint) ([]usecase.HistoryItem, error)
}

// TradingHandler handles HTTP requests for buy, sell, cash adjustment and
// history.
type TradingHandler struct {
	trading TradingUsecase
}

// NewTradingHandler creates a new instance of TradingHandler.
func NewTradingHandler(trading TradingUsecase) *TradingHandler {
	return &TradingHandler{trading: trading}
}

// Buy handles POST /buy.
// - binds {symbol, shares}, 400 on missing fields
// - 422 with a distinct message per violated business rule
// - 200 with a trade receipt on success
func (h *TradingHandler) Buy(c *gin.Context) {
	var req dto.TradeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "must enter a symbol and number of shares"})
		return
	}

	receipt, err := h.trading.Buy(c.Request.Context(), c.GetUint(jwtmw.ContextUserID), req.Symbol, req.Shares)
	if err != nil {
		respondTradingError(c, "buy", err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// Sell handles POST /sell.
func (h *TradingHandler) Sell(c *gin.Context) {
	var req dto.TradeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "must enter a symbol and number of shares"})
		return
	}

	receipt, err := h.trading.Sell(c.Request.Context(), c.GetUint(jwtmw.ContextUserID), req.Symbol, req.Shares)
	if err != nil {
		respondTradingError(c, "sell", err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// Cash handles POST /cash, dispatching on the add/remove action like the
// two buttons on the cash form.
func (h *TradingHandler) Cash(c *gin.Context) {
	var req dto.CashReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "action must be add or remove"})
		return
	}

	accountID := c.GetUint(jwtmw.ContextUserID)
	var (
		receipt *usecase.Receipt
		err     error
	)
	if req.Action == "add" {
		receipt, err = h.trading.Deposit(c.Request.Context(), accountID, req.Amount)
	} else {
		receipt, err = h.trading.Withdraw(c.Request.Context(), accountID, req.Amount)
	}
	if err != nil {
		respondTradingError(c, "cash", err)
		return
	}
	c.JSON(http.StatusOK, receipt)
}

// History handles GET /history, returning the account's full ledger in
// insertion order with display signs.
func (h *TradingHandler) History(c *gin.Context) {
	items, err := h.trading.History(c.Request.Context(), c.GetUint(jwtmw.ContextUserID))
	if err != nil {
		respondTradingError(c, "history", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"transactions": items})
}

// respondTradingError maps usecase errors to HTTP responses, with one
// distinct user-facing message per business rule.
func respondTradingError(c *gin.Context, op string, err error) {
	var msg string
	switch {
	case errors.Is(err, quotedomain.ErrUnknownSymbol):
		msg = "that is not a valid stock symbol"
	case errors.Is(err, usecase.ErrInvalidShares):
		msg = "you cannot trade that number of shares"
	case errors.Is(err, usecase.ErrInsufficientFunds):
		msg = "you can't afford it"
	case errors.Is(err, usecase.ErrSymbolNotHeld):
		msg = "you don't own that stock"
	case errors.Is(err, usecase.ErrInsufficientShares):
		msg = "you don't own enough shares"
	case errors.Is(err, usecase.ErrInvalidAmount):
		msg = "amount must be a positive number"
	case errors.Is(err, usecase.ErrInsufficientCash):
		msg = "you do not have enough cash"
	case errors.Is(err, usecase.ErrAccountNotFound):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unknown account"})
		return
	default:
		slog.Error("trading operation failed", "op", op, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "operation failed"})
		return
	}
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": msg})
}
